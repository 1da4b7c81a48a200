package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/service"
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-promo/mocks/usecase"
	"github.com/rocketscienceinc/tictactoe-promo/testing/suite"
)

var (
	errRedisDown = errors.New("redis down")
	testNow      = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

type gameMocks struct {
	sessions *mockedUseCase.MocksessionServiceDep
	rewards  *mockedUseCase.MockrewardServiceDep
	notifier *mockedUseCase.MocknotifierDep
}

func newGameUseCase(t *testing.T) (GameUseCase, *gameMocks) {
	t.Helper()

	mocks := &gameMocks{
		sessions: mockedUseCase.NewMocksessionServiceDep(t),
		rewards:  mockedUseCase.NewMockrewardServiceDep(t),
		notifier: mockedUseCase.NewMocknotifierDep(t),
	}

	return NewGameUseCase(suite.NewLogger(), mocks.sessions, mocks.rewards, mocks.notifier), mocks
}

func sessionWithBoard(t *testing.T, raw string, status entity.SessionStatus) *entity.Session {
	t.Helper()

	board, err := tictactoe.ParseBoard(raw)
	require.NoError(t, err)

	session := entity.NewSession("6f1c2a4e-8a55-4d1c-9a61-0c8a1e0d2b11", entity.DifficultyMedium, testNow)
	session.Board = board
	session.Status = status
	for i, mark := range board {
		if mark != tictactoe.EmptyCell {
			session.History = append(session.History, entity.Move{Mark: mark, Cell: i, At: testNow})
		}
	}

	return session
}

func newPromo(session *entity.Session, reason entity.RewardReason) *entity.PromoCode {
	return &entity.PromoCode{
		Code:      "ABCD2345",
		SessionID: session.ID,
		Reason:    reason,
		CreatedAt: testNow,
		ExpiresAt: testNow.Add(72 * time.Hour),
	}
}

func TestGameUseCase_NewGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates game with requested difficulty", func(t *testing.T) {
		// Given: a session service that creates a hard session
		useCase, mocks := newGameUseCase(t)
		session := entity.NewSession("id", entity.DifficultyHard, testNow)

		mocks.sessions.EXPECT().
			Create(ctx, entity.DifficultyHard).
			Return(session, nil).
			Once()

		// When: NewGame is called with a mixed-case difficulty
		actual, err := useCase.NewGame(ctx, "HARD")

		// Then: the created session is returned
		require.NoError(t, err)
		assert.Equal(t, session, actual)
	})

	t.Run("Empty difficulty defers to default", func(t *testing.T) {
		useCase, mocks := newGameUseCase(t)
		session := entity.NewSession("id", entity.DifficultyMedium, testNow)

		mocks.sessions.EXPECT().
			Create(ctx, entity.Difficulty("")).
			Return(session, nil).
			Once()

		actual, err := useCase.NewGame(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, entity.DifficultyMedium, actual.Difficulty)
	})

	t.Run("Rejects unknown difficulty", func(t *testing.T) {
		useCase, _ := newGameUseCase(t)

		_, err := useCase.NewGame(ctx, "nightmare")

		require.ErrorIs(t, err, apperror.ErrValidation)
	})
}

func TestGameUseCase_MakeMove(t *testing.T) {
	ctx := context.Background()

	t.Run("Game goes on without reward or notification", func(t *testing.T) {
		// Given: a move that keeps the game running
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, "X...O....", entity.StatusInProgress)
		botMove := 4

		mocks.sessions.EXPECT().
			ApplyPlayerMove(ctx, session.ID, 0).
			Return(&service.MoveResult{Session: session, PlayerMove: 0, BotMove: &botMove}, nil).
			Once()

		// When: the player moves
		outcome, err := useCase.MakeMove(ctx, session.ID, 0)

		// Then: both moves are reported and nothing else happens
		require.NoError(t, err)
		assert.Equal(t, 0, outcome.PlayerMove)
		require.NotNil(t, outcome.BotMove)
		assert.Equal(t, 4, *outcome.BotMove)
		assert.Nil(t, outcome.Promo)
		assert.NoError(t, outcome.PromoErr)
	})

	t.Run("Win issues promo, notifies once and annotates session", func(t *testing.T) {
		// Given: the player's move wins the game
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, "XXXOO....", entity.StatusWin)
		promo := newPromo(session, entity.ReasonGameWin)

		mocks.sessions.EXPECT().
			ApplyPlayerMove(ctx, session.ID, 2).
			Return(&service.MoveResult{Session: session, PlayerMove: 2}, nil).
			Once()
		mocks.rewards.EXPECT().
			Issue(mock.Anything, session, entity.ReasonGameWin).
			Return(promo, nil).
			Once()
		mocks.notifier.EXPECT().
			NotifyReward(mock.Anything, promo).
			Return().
			Once()
		mocks.sessions.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
				code, ok := s.Reward(entity.ReasonGameWin)
				return ok && code == promo.Code && s.WinNotified
			})).
			Return(nil).
			Once()

		// When: the player moves
		outcome, err := useCase.MakeMove(ctx, session.ID, 2)

		// Then: the code is part of the outcome and no bot move is reported
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWin, outcome.Session.Status)
		assert.Nil(t, outcome.BotMove)
		assert.Equal(t, promo, outcome.Promo)
	})

	t.Run("Win without available promo still succeeds", func(t *testing.T) {
		// Given: the daily limit is exhausted
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, "XXXOO....", entity.StatusWin)

		mocks.sessions.EXPECT().
			ApplyPlayerMove(ctx, session.ID, 2).
			Return(&service.MoveResult{Session: session, PlayerMove: 2}, nil).
			Once()
		mocks.rewards.EXPECT().
			Issue(mock.Anything, session, entity.ReasonGameWin).
			Return((*entity.PromoCode)(nil), apperror.ErrDailyLimitExceeded).
			Once()

		// When: the player moves
		outcome, err := useCase.MakeMove(ctx, session.ID, 2)

		// Then: the win stands and the reason is reported separately
		require.NoError(t, err)
		assert.Equal(t, entity.StatusWin, outcome.Session.Status)
		assert.Nil(t, outcome.Promo)
		require.ErrorIs(t, outcome.PromoErr, apperror.ErrDailyLimitExceeded)
	})

	t.Run("Loss notifies once", func(t *testing.T) {
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, "OOOXX.X..", entity.StatusLose)
		botMove := 2

		mocks.sessions.EXPECT().
			ApplyPlayerMove(ctx, session.ID, 6).
			Return(&service.MoveResult{Session: session, PlayerMove: 6, BotMove: &botMove}, nil).
			Once()
		mocks.notifier.EXPECT().
			NotifyLose(mock.Anything, session.ID).
			Return().
			Once()
		mocks.sessions.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(s *entity.Session) bool { return s.LoseNotified })).
			Return(nil).
			Once()

		outcome, err := useCase.MakeMove(ctx, session.ID, 6)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusLose, outcome.Session.Status)
	})

	t.Run("Draw has no side effects", func(t *testing.T) {
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, "XOXXOOOXX", entity.StatusDraw)

		mocks.sessions.EXPECT().
			ApplyPlayerMove(ctx, session.ID, 8).
			Return(&service.MoveResult{Session: session, PlayerMove: 8}, nil).
			Once()

		outcome, err := useCase.MakeMove(ctx, session.ID, 8)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusDraw, outcome.Session.Status)
	})

	t.Run("Annotation failure does not fail the move", func(t *testing.T) {
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, "XXXOO....", entity.StatusWin)
		promo := newPromo(session, entity.ReasonGameWin)

		mocks.sessions.EXPECT().
			ApplyPlayerMove(ctx, session.ID, 2).
			Return(&service.MoveResult{Session: session, PlayerMove: 2}, nil).
			Once()
		mocks.rewards.EXPECT().
			Issue(mock.Anything, session, entity.ReasonGameWin).
			Return(promo, nil).
			Once()
		mocks.notifier.EXPECT().NotifyReward(mock.Anything, promo).Return().Once()
		mocks.sessions.EXPECT().Save(mock.Anything, session).Return(errRedisDown).Once()

		outcome, err := useCase.MakeMove(ctx, session.ID, 2)

		require.NoError(t, err)
		assert.Equal(t, promo, outcome.Promo)
	})

	t.Run("Propagates move errors", func(t *testing.T) {
		tests := []error{
			apperror.ErrInvalidSession,
			apperror.ErrIllegalMove,
			apperror.ErrGameAlreadyOver,
			apperror.ErrNoLegalMove,
		}

		for _, expected := range tests {
			useCase, mocks := newGameUseCase(t)

			mocks.sessions.EXPECT().
				ApplyPlayerMove(ctx, "id", 3).
				Return((*service.MoveResult)(nil), expected).
				Once()

			outcome, err := useCase.MakeMove(ctx, "id", 3)

			require.ErrorIs(t, err, expected)
			assert.Nil(t, outcome)
		}
	})

	t.Run("Cancelled request still issues the reward", func(t *testing.T) {
		// Given: the client cancels right after the move is committed
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, "XXXOO....", entity.StatusWin)
		promo := newPromo(session, entity.ReasonGameWin)
		cancelled, cancel := context.WithCancel(ctx)

		mocks.sessions.EXPECT().
			ApplyPlayerMove(cancelled, session.ID, 2).
			RunAndReturn(func(context.Context, string, int) (*service.MoveResult, error) {
				cancel()
				return &service.MoveResult{Session: session, PlayerMove: 2}, nil
			}).
			Once()
		mocks.rewards.EXPECT().
			Issue(mock.MatchedBy(func(c context.Context) bool { return c.Err() == nil }), session, entity.ReasonGameWin).
			Return(promo, nil).
			Once()
		mocks.notifier.EXPECT().NotifyReward(mock.Anything, promo).Return().Once()
		mocks.sessions.EXPECT().Save(mock.Anything, session).Return(nil).Once()

		// When: the move completes
		outcome, err := useCase.MakeMove(cancelled, session.ID, 2)

		// Then: post-commit work ran on a live context
		require.NoError(t, err)
		assert.Equal(t, promo, outcome.Promo)
	})
}

func TestGameUseCase_MakeMove_SerializesPerSession(t *testing.T) {
	ctx := context.Background()
	useCase, mocks := newGameUseCase(t)
	session := sessionWithBoard(t, "X...O....", entity.StatusInProgress)

	var (
		inFlight    atomic.Int32
		maxInFlight atomic.Int32
	)

	mocks.sessions.EXPECT().
		ApplyPlayerMove(ctx, session.ID, mock.Anything).
		RunAndReturn(func(context.Context, string, int) (*service.MoveResult, error) {
			current := inFlight.Add(1)
			if current > maxInFlight.Load() {
				maxInFlight.Store(current)
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)

			return &service.MoveResult{Session: session}, nil
		}).
		Times(10)

	// When: ten moves for the same session arrive at once
	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := useCase.MakeMove(ctx, session.ID, i%9)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	// Then: they never overlap
	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestGameUseCase_GetGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Includes the issued game promo", func(t *testing.T) {
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, "XXXOO....", entity.StatusWin)
		promo := newPromo(session, entity.ReasonGameWin)
		session.SetReward(entity.ReasonGameWin, promo.Code)

		mocks.sessions.EXPECT().Get(ctx, session.ID).Return(session, nil).Once()
		mocks.rewards.EXPECT().GetPromo(ctx, promo.Code).Return(promo, nil).Once()

		state, err := useCase.GetGame(ctx, session.ID)

		require.NoError(t, err)
		assert.Equal(t, session, state.Session)
		assert.Equal(t, promo, state.Promo)
	})

	t.Run("Missing promo record is tolerated", func(t *testing.T) {
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, "XXXOO....", entity.StatusWin)
		session.SetReward(entity.ReasonGameWin, "GONE2345")

		mocks.sessions.EXPECT().Get(ctx, session.ID).Return(session, nil).Once()
		mocks.rewards.EXPECT().GetPromo(ctx, "GONE2345").Return((*entity.PromoCode)(nil), apperror.ErrNotFound).Once()

		state, err := useCase.GetGame(ctx, session.ID)

		require.NoError(t, err)
		assert.Nil(t, state.Promo)
	})

	t.Run("Unknown session", func(t *testing.T) {
		useCase, mocks := newGameUseCase(t)

		mocks.sessions.EXPECT().Get(ctx, "nope").Return((*entity.Session)(nil), apperror.ErrInvalidSession).Once()

		_, err := useCase.GetGame(ctx, "nope")

		require.ErrorIs(t, err, apperror.ErrInvalidSession)
	})
}

func TestGameUseCase_ClaimGiftPromo(t *testing.T) {
	ctx := context.Background()

	t.Run("Issues gift promo for a played session", func(t *testing.T) {
		// Given: a session where the player has moved
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, "X...O....", entity.StatusInProgress)
		promo := newPromo(session, entity.ReasonGiftWin)

		mocks.sessions.EXPECT().Get(ctx, session.ID).Return(session, nil).Once()
		mocks.rewards.EXPECT().
			Issue(ctx, session, entity.ReasonGiftWin).
			Return(promo, nil).
			Once()
		mocks.notifier.EXPECT().NotifyReward(mock.Anything, promo).Return().Once()
		mocks.sessions.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
				_, ok := s.Reward(entity.ReasonGiftWin)
				return ok
			})).
			Return(nil).
			Once()

		// When: the gift promo is claimed
		actual, err := useCase.ClaimGiftPromo(ctx, session.ID)

		// Then: the code is returned
		require.NoError(t, err)
		assert.Equal(t, promo, actual)
	})

	t.Run("Rejects session without moves", func(t *testing.T) {
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, ".........", entity.StatusInProgress)

		mocks.sessions.EXPECT().Get(ctx, session.ID).Return(session, nil).Once()

		_, err := useCase.ClaimGiftPromo(ctx, session.ID)

		require.ErrorIs(t, err, apperror.ErrNotEligible)
	})

	t.Run("Rejects second claim", func(t *testing.T) {
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, "X...O....", entity.StatusInProgress)
		session.SetReward(entity.ReasonGiftWin, "ABCD2345")

		mocks.sessions.EXPECT().Get(ctx, session.ID).Return(session, nil).Once()

		_, err := useCase.ClaimGiftPromo(ctx, session.ID)

		require.ErrorIs(t, err, apperror.ErrAlreadyIssued)
	})

	t.Run("Gift and game rewards are independent", func(t *testing.T) {
		// Given: the session already holds a game-win code
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, "XXXOO....", entity.StatusWin)
		session.SetReward(entity.ReasonGameWin, "GAME2345")
		promo := newPromo(session, entity.ReasonGiftWin)

		mocks.sessions.EXPECT().Get(ctx, session.ID).Return(session, nil).Once()
		mocks.rewards.EXPECT().Issue(ctx, session, entity.ReasonGiftWin).Return(promo, nil).Once()
		mocks.notifier.EXPECT().NotifyReward(mock.Anything, promo).Return().Once()
		mocks.sessions.EXPECT().Save(mock.Anything, session).Return(nil).Once()

		actual, err := useCase.ClaimGiftPromo(ctx, session.ID)

		require.NoError(t, err)
		assert.Equal(t, promo, actual)
	})

	t.Run("Propagates issuance errors", func(t *testing.T) {
		useCase, mocks := newGameUseCase(t)
		session := sessionWithBoard(t, "X...O....", entity.StatusInProgress)

		mocks.sessions.EXPECT().Get(ctx, session.ID).Return(session, nil).Once()
		mocks.rewards.EXPECT().
			Issue(ctx, session, entity.ReasonGiftWin).
			Return((*entity.PromoCode)(nil), apperror.ErrDailyLimitExceeded).
			Once()

		_, err := useCase.ClaimGiftPromo(ctx, session.ID)

		require.ErrorIs(t, err, apperror.ErrDailyLimitExceeded)
	})

	t.Run("Unknown session", func(t *testing.T) {
		useCase, mocks := newGameUseCase(t)

		mocks.sessions.EXPECT().Get(ctx, "nope").Return((*entity.Session)(nil), apperror.ErrInvalidSession).Once()

		_, err := useCase.ClaimGiftPromo(ctx, "nope")

		require.ErrorIs(t, err, apperror.ErrInvalidSession)
	})
}

func TestSessionLocks(t *testing.T) {
	locks := newSessionLocks()

	unlockA := locks.Lock("a")
	unlockB := locks.Lock("b")
	assert.Equal(t, 2, locks.size())

	unlockA()
	unlockB()

	// entries are dropped once released
	assert.Equal(t, 0, locks.size())
}
