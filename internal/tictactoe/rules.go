package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
)

// Outcome is the classification of a board. The zero value means the game is in progress.
type Outcome struct {
	Winner Mark
	Draw   bool
}

func (that Outcome) HasWinner() bool {
	return that.Winner == PlayerX || that.Winner == PlayerO
}

func (that Outcome) IsTerminal() bool {
	return that.HasWinner() || that.Draw
}

// Apply places mark on cell and returns the new board. The input board is never modified.
func Apply(board Board, cell int, mark Mark) (Board, error) {
	if err := validateMove(board, cell, mark); err != nil {
		return board, fmt.Errorf("could not apply move: %w", err)
	}

	board[cell] = mark

	return board, nil
}

// validateMove - checks if the move is valid.
func validateMove(board Board, cell int, mark Mark) error {
	if mark != PlayerX && mark != PlayerO {
		return fmt.Errorf("%w: invalid mark %q", apperror.ErrIllegalMove, mark)
	}

	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrIllegalMove, cell)
	}

	if Evaluate(board).IsTerminal() {
		return fmt.Errorf("%w: board is terminal", apperror.ErrIllegalMove)
	}

	if !board.IsEmpty(cell) {
		return fmt.Errorf("%w: cell %d is occupied", apperror.ErrIllegalMove, cell)
	}

	return nil
}

// Evaluate reports a winner if any line is complete, a draw if the board is full, otherwise an in-progress outcome.
func Evaluate(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if (a == PlayerX || a == PlayerO) && a == b && b == c {
			return Outcome{Winner: a}
		}
	}

	if board.IsFull() {
		return Outcome{Draw: true}
	}

	return Outcome{}
}

// WinningMove returns the lowest empty cell that completes a line for mark.
func WinningMove(board Board, mark Mark) (int, bool) {
	for _, cell := range board.EmptyCells() {
		next := board
		next[cell] = mark
		if Evaluate(next).Winner == mark {
			return cell, true
		}
	}

	return 0, false
}
