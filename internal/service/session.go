package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/bot"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
)

type SessionService interface {
	Create(ctx context.Context, difficulty entity.Difficulty) (*entity.Session, error)
	Get(ctx context.Context, id string) (*entity.Session, error)
	ApplyPlayerMove(ctx context.Context, id string, cell int) (*MoveResult, error)
	Save(ctx context.Context, session *entity.Session) error
}

// MoveResult is the session after one player turn. BotMove is nil when the player's move ended the game.
type MoveResult struct {
	Session    *entity.Session
	PlayerMove int
	BotMove    *int
}

type sessionRepo interface {
	Create(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	Update(ctx context.Context, session *entity.Session) error
}

type policyProvider interface {
	For(difficulty entity.Difficulty) (bot.Policy, error)
}

type settingsProvider interface {
	Get(ctx context.Context) (*entity.Settings, error)
}

type sessionService struct {
	logger *slog.Logger

	sessionRepo sessionRepo
	policies    policyProvider
	settings    settingsProvider

	now func() time.Time
}

func NewSessionService(logger *slog.Logger, sessionRepo sessionRepo, policies policyProvider, settings settingsProvider) SessionService {
	return &sessionService{
		logger:      logger.With("component", "session_service"),
		sessionRepo: sessionRepo,
		policies:    policies,
		settings:    settings,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Create starts a new game. An empty difficulty falls back to the configured default.
func (that *sessionService) Create(ctx context.Context, difficulty entity.Difficulty) (*entity.Session, error) {
	if difficulty == "" {
		settings, err := that.settings.Get(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get settings: %w", err)
		}
		difficulty = settings.DefaultDifficulty
	}

	if !difficulty.IsValid() {
		return nil, fmt.Errorf("%w: unknown difficulty %q", apperror.ErrValidation, difficulty)
	}

	session := entity.NewSession(uuid.NewString(), difficulty, that.now())
	if err := that.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session in storage: %w", err)
	}

	that.logger.Info("session created", "session_id", session.ID, "difficulty", difficulty)

	return session, nil
}

func (that *sessionService) Get(ctx context.Context, id string) (*entity.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperror.ErrInvalidSession
	}

	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve session from storage: %w", err)
	}

	return session, nil
}

// ApplyPlayerMove plays the player's cell and, if the game goes on, the opponent's reply.
// Both moves are computed on a copy and committed with a single write.
func (that *sessionService) ApplyPlayerMove(ctx context.Context, id string, cell int) (*MoveResult, error) {
	log := that.logger.With("method", "ApplyPlayerMove", "session_id", id)

	session, err := that.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.IsFinished() {
		return nil, apperror.ErrGameAlreadyOver
	}

	next := session.Clone()
	now := that.now()

	if err = next.Play(tictactoe.PlayerX, cell, now); err != nil {
		return nil, fmt.Errorf("failed to make player move: %w", err)
	}

	result := &MoveResult{Session: next, PlayerMove: cell}

	if !next.IsFinished() {
		botCell, err := that.selectBotMove(next)
		if err != nil {
			return nil, err
		}

		if err = next.Play(bot.Mark, botCell, now); err != nil {
			return nil, fmt.Errorf("bot failed to make move: %w", err)
		}
		result.BotMove = &botCell
	}

	if err = that.sessionRepo.Update(ctx, next); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if next.IsFinished() {
		log.Info("game finished", "status", next.Status, "board", next.Board.String())
	}

	return result, nil
}

func (that *sessionService) selectBotMove(session *entity.Session) (int, error) {
	policy, err := that.policies.For(session.Difficulty)
	if err != nil {
		return 0, fmt.Errorf("failed to get bot policy: %w", err)
	}

	cell, err := policy.SelectMove(session.Board)
	if err != nil {
		return 0, fmt.Errorf("bot failed to select move: %w", err)
	}

	return cell, nil
}

func (that *sessionService) Save(ctx context.Context, session *entity.Session) error {
	if err := that.sessionRepo.Update(ctx, session); err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}
