package bot

import (
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
)

// WeakWinBias is the probability that the weak opponent takes an immediate win when one exists.
const WeakWinBias = 0.7

type weak struct {
	rnd Randomizer
}

// NewWeak returns the easy tier: mostly random, occasionally sees a winning cell.
func NewWeak(rnd Randomizer) Policy {
	return &weak{rnd: rnd}
}

func (that *weak) SelectMove(board tictactoe.Board) (int, error) {
	cells, err := availableCells(board)
	if err != nil {
		return 0, err
	}

	if cell, ok := tictactoe.WinningMove(board, Mark); ok && that.rnd.Float64() < WeakWinBias {
		return cell, nil
	}

	return cells[that.rnd.IntN(len(cells))], nil
}
