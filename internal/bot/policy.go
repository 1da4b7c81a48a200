package bot

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
)

// Mark is the mark the computer opponent plays.
const Mark = tictactoe.PlayerO

// Policy selects the opponent's next cell. Implementations never modify the board.
type Policy interface {
	SelectMove(board tictactoe.Board) (int, error)
}

// Randomizer is the source of randomness for the non-deterministic tiers.
type Randomizer interface {
	IntN(n int) int
	Float64() float64
}

type globalRandomizer struct{}

func (globalRandomizer) IntN(n int) int {
	return rand.IntN(n) //nolint: gosec // move selection does not need a CSPRNG
}

func (globalRandomizer) Float64() float64 {
	return rand.Float64() //nolint: gosec // move selection does not need a CSPRNG
}

// DefaultRandomizer is safe for concurrent use.
func DefaultRandomizer() Randomizer {
	return globalRandomizer{}
}

// ForDifficulty returns the policy for a difficulty tier.
func ForDifficulty(difficulty entity.Difficulty, rnd Randomizer) (Policy, error) {
	if rnd == nil {
		rnd = DefaultRandomizer()
	}

	switch difficulty {
	case entity.DifficultyEasy:
		return NewWeak(rnd), nil
	case entity.DifficultyMedium:
		return NewCompetent(rnd), nil
	case entity.DifficultyHard:
		return NewOptimal(), nil
	default:
		return nil, fmt.Errorf("%w: unknown difficulty %q", apperror.ErrValidation, difficulty)
	}
}

// Registry holds one policy per difficulty so the optimal tier keeps its score cache between games.
type Registry struct {
	policies map[entity.Difficulty]Policy
}

func NewRegistry(rnd Randomizer) *Registry {
	policies := make(map[entity.Difficulty]Policy, 3)
	for _, difficulty := range []entity.Difficulty{entity.DifficultyEasy, entity.DifficultyMedium, entity.DifficultyHard} {
		policies[difficulty], _ = ForDifficulty(difficulty, rnd)
	}

	return &Registry{policies: policies}
}

func (that *Registry) For(difficulty entity.Difficulty) (Policy, error) {
	policy, ok := that.policies[difficulty]
	if !ok {
		return nil, fmt.Errorf("%w: unknown difficulty %q", apperror.ErrValidation, difficulty)
	}

	return policy, nil
}

// availableCells returns the empty cells or ErrNoLegalMove when the game cannot continue.
func availableCells(board tictactoe.Board) ([]int, error) {
	if tictactoe.Evaluate(board).IsTerminal() {
		return nil, apperror.ErrNoLegalMove
	}

	cells := board.EmptyCells()
	if len(cells) == 0 {
		return nil, apperror.ErrNoLegalMove
	}

	return cells, nil
}
