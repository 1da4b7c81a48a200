package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/service"
)

type GameUseCase interface {
	NewGame(ctx context.Context, difficulty string) (*entity.Session, error)
	GetGame(ctx context.Context, sessionID string) (*GameState, error)

	MakeMove(ctx context.Context, sessionID string, cell int) (*MoveOutcome, error)
	ClaimGiftPromo(ctx context.Context, sessionID string) (*entity.PromoCode, error)
}

// MoveOutcome is what one player turn produced. PromoErr is set when the game was won
// but no code could be issued; the move itself still stands.
type MoveOutcome struct {
	Session    *entity.Session
	PlayerMove int
	BotMove    *int
	Promo      *entity.PromoCode
	PromoErr   error
}

type GameState struct {
	Session *entity.Session
	Promo   *entity.PromoCode
}

type sessionServiceDep interface {
	Create(ctx context.Context, difficulty entity.Difficulty) (*entity.Session, error)
	Get(ctx context.Context, id string) (*entity.Session, error)
	ApplyPlayerMove(ctx context.Context, id string, cell int) (*service.MoveResult, error)
	Save(ctx context.Context, session *entity.Session) error
}

type rewardServiceDep interface {
	Issue(ctx context.Context, session *entity.Session, reason entity.RewardReason) (*entity.PromoCode, error)
	GetPromo(ctx context.Context, code string) (*entity.PromoCode, error)
}

type notifierDep interface {
	NotifyReward(ctx context.Context, promo *entity.PromoCode)
	NotifyLose(ctx context.Context, sessionID string)
}

type gameUseCase struct {
	logger *slog.Logger

	sessions sessionServiceDep
	rewards  rewardServiceDep
	notifier notifierDep

	locks *sessionLocks
}

func NewGameUseCase(logger *slog.Logger, sessions sessionServiceDep, rewards rewardServiceDep, notifier notifierDep) GameUseCase {
	return &gameUseCase{
		logger:   logger.With("component", "game_usecase"),
		sessions: sessions,
		rewards:  rewards,
		notifier: notifier,
		locks:    newSessionLocks(),
	}
}

func (that *gameUseCase) NewGame(ctx context.Context, difficulty string) (*entity.Session, error) {
	var level entity.Difficulty
	if difficulty != "" {
		parsed, err := entity.ParseDifficulty(difficulty)
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	session, err := that.sessions.Create(ctx, level)
	if err != nil {
		return nil, fmt.Errorf("could not create game: %w", err)
	}

	return session, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, sessionID string) (*GameState, error) {
	session, err := that.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	state := &GameState{Session: session}

	if code, ok := session.Reward(entity.ReasonGameWin); ok {
		promo, err := that.rewards.GetPromo(ctx, code)
		if err != nil {
			that.logger.Warn("could not load issued promo", "session_id", sessionID, "code", code, "error", err)
		} else {
			state.Promo = promo
		}
	}

	return state, nil
}

func (that *gameUseCase) MakeMove(ctx context.Context, sessionID string, cell int) (*MoveOutcome, error) {
	log := that.logger.With("method", "MakeMove", "session_id", sessionID)

	unlock := that.locks.Lock(sessionID)
	defer unlock()

	result, err := that.sessions.ApplyPlayerMove(ctx, sessionID, cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make move: %w", err)
	}

	outcome := &MoveOutcome{
		Session:    result.Session,
		PlayerMove: result.PlayerMove,
		BotMove:    result.BotMove,
	}

	// the move is committed; what follows must finish even if the client goes away
	ctx = context.WithoutCancel(ctx)

	switch result.Session.Status {
	case entity.StatusWin:
		that.rewardWin(ctx, log, outcome)
	case entity.StatusLose:
		that.notifyLose(ctx, log, result.Session)
	case entity.StatusInProgress, entity.StatusDraw:
	}

	return outcome, nil
}

func (that *gameUseCase) rewardWin(ctx context.Context, log *slog.Logger, outcome *MoveOutcome) {
	session := outcome.Session

	promo, err := that.rewards.Issue(ctx, session, entity.ReasonGameWin)
	if err != nil {
		log.Warn("game won but promo code was not issued", "error", err)
		outcome.PromoErr = err
		return
	}

	outcome.Promo = promo
	session.SetReward(entity.ReasonGameWin, promo.Code)

	if !session.WinNotified {
		that.notifier.NotifyReward(ctx, promo)
		session.WinNotified = true
	}

	that.annotate(ctx, log, session)
}

func (that *gameUseCase) notifyLose(ctx context.Context, log *slog.Logger, session *entity.Session) {
	if session.LoseNotified {
		return
	}

	that.notifier.NotifyLose(ctx, session.ID)
	session.LoseNotified = true

	that.annotate(ctx, log, session)
}

// annotate stores reward and notification markers. Failures only cost a possible duplicate message;
// the reward itself is guarded by the issuance claim.
func (that *gameUseCase) annotate(ctx context.Context, log *slog.Logger, session *entity.Session) {
	if err := that.sessions.Save(ctx, session); err != nil {
		log.Error("could not annotate session", "error", err)
	}
}

// ClaimGiftPromo grants the gift reward. The session must exist and show at least one player move.
func (that *gameUseCase) ClaimGiftPromo(ctx context.Context, sessionID string) (*entity.PromoCode, error) {
	log := that.logger.With("method", "ClaimGiftPromo", "session_id", sessionID)

	unlock := that.locks.Lock(sessionID)
	defer unlock()

	session, err := that.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	if _, ok := session.Reward(entity.ReasonGiftWin); ok {
		return nil, apperror.ErrAlreadyIssued
	}

	if session.PlayerMoves() == 0 {
		return nil, fmt.Errorf("%w: no moves played", apperror.ErrNotEligible)
	}

	promo, err := that.rewards.Issue(ctx, session, entity.ReasonGiftWin)
	if err != nil {
		return nil, fmt.Errorf("failed to issue gift promo: %w", err)
	}

	ctx = context.WithoutCancel(ctx)

	session.SetReward(entity.ReasonGiftWin, promo.Code)
	that.notifier.NotifyReward(ctx, promo)
	that.annotate(ctx, log, session)

	return promo, nil
}
