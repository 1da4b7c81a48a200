package bot

import (
	"sync"

	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
)

const winScore = 10

// preferenceOrder breaks ties between equally scored cells: center, corners, edges.
var preferenceOrder = [tictactoe.BoardSize]int{4, 0, 2, 6, 8, 1, 3, 5, 7}

type optimal struct {
	mu     sync.RWMutex
	scores map[tictactoe.Board]int
}

// NewOptimal returns the hard tier: exhaustive minimax, never loses.
func NewOptimal() Policy {
	return &optimal{scores: make(map[tictactoe.Board]int)}
}

func (that *optimal) SelectMove(board tictactoe.Board) (int, error) {
	if _, err := availableCells(board); err != nil {
		return 0, err
	}

	bestCell, bestScore := -1, 0
	for _, cell := range preferenceOrder {
		if !board.IsEmpty(cell) {
			continue
		}

		next := board
		next[cell] = Mark

		score := that.score(next, Mark.Opponent())
		if bestCell == -1 || score > bestScore {
			bestCell, bestScore = cell, score
		}
	}

	return bestCell, nil
}

// score evaluates board with toMove next, from the opponent's point of view.
// A win k plies away is worth winScore-k, so faster wins and slower losses score higher.
func (that *optimal) score(board tictactoe.Board, toMove tictactoe.Mark) int {
	that.mu.RLock()
	cached, ok := that.scores[board]
	that.mu.RUnlock()

	if ok {
		return cached
	}

	var result int

	outcome := tictactoe.Evaluate(board)
	switch {
	case outcome.Winner == Mark:
		result = winScore
	case outcome.Winner == Mark.Opponent():
		result = -winScore
	case outcome.Draw:
		result = 0
	default:
		first := true
		for _, cell := range board.EmptyCells() {
			next := board
			next[cell] = toMove

			childScore := that.score(next, toMove.Opponent())
			if first || (toMove == Mark && childScore > result) || (toMove != Mark && childScore < result) {
				result, first = childScore, false
			}
		}
		result = decay(result)
	}

	that.mu.Lock()
	that.scores[board] = result
	that.mu.Unlock()

	return result
}

// decay moves a score one step toward zero for every ply between the position and the result.
func decay(score int) int {
	switch {
	case score > 0:
		return score - 1
	case score < 0:
		return score + 1
	default:
		return 0
	}
}
