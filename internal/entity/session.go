package entity

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
)

type SessionStatus string

const (
	StatusInProgress SessionStatus = "IN_PROGRESS"
	StatusWin        SessionStatus = "WIN"
	StatusLose       SessionStatus = "LOSE"
	StatusDraw       SessionStatus = "DRAW"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty accepts a tier name in any letter case.
func ParseDifficulty(raw string) (Difficulty, error) {
	difficulty := Difficulty(strings.ToLower(strings.TrimSpace(raw)))
	if !difficulty.IsValid() {
		return "", fmt.Errorf("%w: unknown difficulty %q", apperror.ErrValidation, raw)
	}

	return difficulty, nil
}

func (that Difficulty) IsValid() bool {
	switch that {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	default:
		return false
	}
}

type Move struct {
	Mark tictactoe.Mark `json:"mark"`
	Cell int            `json:"cell"`
	At   time.Time      `json:"at"`
}

type Session struct {
	ID         string                  `json:"id"`
	Board      tictactoe.Board         `json:"board"`
	Status     SessionStatus           `json:"status"`
	Difficulty Difficulty              `json:"difficulty"`
	History    []Move                  `json:"history,omitempty"`
	Rewards    map[RewardReason]string `json:"rewards,omitempty"`

	WinNotified  bool `json:"win_notified,omitempty"`
	LoseNotified bool `json:"lose_notified,omitempty"`

	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`

	// Version is bumped on every write and used for compare-and-set.
	Version int64 `json:"version"`
}

func NewSession(id string, difficulty Difficulty, now time.Time) *Session {
	return &Session{
		ID:         id,
		Board:      tictactoe.NewBoard(),
		Status:     StatusInProgress,
		Difficulty: difficulty,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (that *Session) IsFinished() bool {
	return that.Status != StatusInProgress
}

// Play applies a move for mark and moves the session to a terminal status when the board ends.
func (that *Session) Play(mark tictactoe.Mark, cell int, now time.Time) error {
	if that.IsFinished() {
		return apperror.ErrGameAlreadyOver
	}

	board, err := tictactoe.Apply(that.Board, cell, mark)
	if err != nil {
		return fmt.Errorf("%s could not play cell %d: %w", mark, cell, err)
	}

	that.Board = board
	that.History = append(that.History, Move{Mark: mark, Cell: cell, At: now})
	that.UpdatedAt = now

	that.Status = StatusFor(tictactoe.Evaluate(board))
	if that.IsFinished() {
		finishedAt := now
		that.FinishedAt = &finishedAt
	}

	return nil
}

// PlayerMoves counts the moves made by the human player.
func (that *Session) PlayerMoves() int {
	count := 0
	for _, move := range that.History {
		if move.Mark == tictactoe.PlayerX {
			count++
		}
	}

	return count
}

func (that *Session) Reward(reason RewardReason) (string, bool) {
	code, ok := that.Rewards[reason]
	return code, ok
}

func (that *Session) SetReward(reason RewardReason, code string) {
	if that.Rewards == nil {
		that.Rewards = make(map[RewardReason]string)
	}
	that.Rewards[reason] = code
}

// Clone returns a deep copy so a move can be computed without touching the stored snapshot.
func (that *Session) Clone() *Session {
	clone := *that
	clone.History = slices.Clone(that.History)
	clone.Rewards = maps.Clone(that.Rewards)

	if that.FinishedAt != nil {
		finishedAt := *that.FinishedAt
		clone.FinishedAt = &finishedAt
	}

	return &clone
}

// StatusFor maps a board outcome to the session status from the human player's point of view.
func StatusFor(outcome tictactoe.Outcome) SessionStatus {
	switch {
	case outcome.Winner == tictactoe.PlayerX:
		return StatusWin
	case outcome.Winner == tictactoe.PlayerO:
		return StatusLose
	case outcome.Draw:
		return StatusDraw
	default:
		return StatusInProgress
	}
}
