package tictactoe

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
)

// Mark is the content of a single cell.
type Mark string

const (
	EmptyCell Mark = "."
	PlayerX   Mark = "X" // human player, always moves first
	PlayerO   Mark = "O" // computer opponent
)

const BoardSize = 9

// WinCombos lists every line of three cells in row-major indexing.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid stored row-major.
type Board [BoardSize]Mark

func NewBoard() Board {
	var board Board
	for i := range board {
		board[i] = EmptyCell
	}

	return board
}

// ParseBoard decodes the compact nine-symbol form produced by Board.String.
func ParseBoard(raw string) (Board, error) {
	var board Board

	if len(raw) != BoardSize {
		return board, fmt.Errorf("%w: board must have %d cells, got %d", apperror.ErrValidation, BoardSize, len(raw))
	}

	for i, r := range raw {
		mark := Mark(string(r))
		if !mark.IsValid() {
			return board, fmt.Errorf("%w: unknown symbol %q at cell %d", apperror.ErrValidation, r, i)
		}
		board[i] = mark
	}

	return board, nil
}

func (that Mark) IsValid() bool {
	return that == EmptyCell || that == PlayerX || that == PlayerO
}

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize)

	for _, mark := range that {
		if mark == "" {
			mark = EmptyCell
		}
		sb.WriteString(string(mark))
	}

	return sb.String()
}

func (that Board) MarshalJSON() ([]byte, error) {
	cells := make([]string, BoardSize)
	for i, mark := range that {
		if mark == "" {
			mark = EmptyCell
		}
		cells[i] = string(mark)
	}

	return json.Marshal(cells)
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var cells []string
	if err := json.Unmarshal(data, &cells); err != nil {
		return fmt.Errorf("could not decode board: %w", err)
	}

	if len(cells) != BoardSize {
		return fmt.Errorf("%w: board must have %d cells, got %d", apperror.ErrValidation, BoardSize, len(cells))
	}

	for i, cell := range cells {
		mark := Mark(cell)
		if !mark.IsValid() {
			return fmt.Errorf("%w: unknown symbol %q at cell %d", apperror.ErrValidation, cell, i)
		}
		that[i] = mark
	}

	return nil
}

func (that Board) IsEmpty(cell int) bool {
	return that[cell] == EmptyCell || that[cell] == ""
}

// EmptyCells returns the indices of all empty cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i := range that {
		if that.IsEmpty(i) {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) Count(mark Mark) int {
	count := 0
	for _, m := range that {
		if m == mark {
			count++
		}
	}

	return count
}

func (that Board) IsFull() bool {
	return len(that.EmptyCells()) == 0
}
