package bot

import (
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
)

const (
	centerWeight = 3
	cornerWeight = 2
	edgeWeight   = 1
)

type competent struct {
	rnd Randomizer
}

// NewCompetent returns the medium tier: wins, blocks, then prefers strong cells at random.
func NewCompetent(rnd Randomizer) Policy {
	return &competent{rnd: rnd}
}

func (that *competent) SelectMove(board tictactoe.Board) (int, error) {
	cells, err := availableCells(board)
	if err != nil {
		return 0, err
	}

	if cell, ok := tictactoe.WinningMove(board, Mark); ok {
		return cell, nil
	}

	if cell, ok := tictactoe.WinningMove(board, Mark.Opponent()); ok {
		return cell, nil
	}

	return that.weightedPick(cells), nil
}

func (that *competent) weightedPick(cells []int) int {
	total := 0
	for _, cell := range cells {
		total += cellWeight(cell)
	}

	pick := that.rnd.IntN(total)
	for _, cell := range cells {
		pick -= cellWeight(cell)
		if pick < 0 {
			return cell
		}
	}

	return cells[len(cells)-1]
}

func cellWeight(cell int) int {
	switch cell {
	case 4:
		return centerWeight
	case 0, 2, 6, 8:
		return cornerWeight
	default:
		return edgeWeight
	}
}
