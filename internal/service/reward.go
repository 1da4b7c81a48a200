package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/repository"
)

const (
	maxCodeAttempts = 30

	MinPromoListLimit = 1
	MaxPromoListLimit = 500

	dayLayout = "2006-01-02"
)

type RewardService interface {
	// Issue grants a code to session for reason. It does not modify session.
	Issue(ctx context.Context, session *entity.Session, reason entity.RewardReason) (*entity.PromoCode, error)
	GetPromo(ctx context.Context, code string) (*entity.PromoCode, error)
	ListPromos(ctx context.Context, limit int) ([]*entity.PromoCode, error)
	IssuedToday(ctx context.Context) (int, error)
}

type promoRepo interface {
	Save(ctx context.Context, promo *entity.PromoCode) error
	GetByCode(ctx context.Context, code string) (*entity.PromoCode, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.PromoCode, error)

	ClaimReward(ctx context.Context, sessionID string, reason entity.RewardReason) (bool, error)
	BindReward(ctx context.Context, sessionID string, reason entity.RewardReason, code string) error
	ReleaseReward(ctx context.Context, sessionID string, reason entity.RewardReason) error
}

type dailyCounter interface {
	Reserve(ctx context.Context, day string, limit int) (bool, error)
	Release(ctx context.Context, day string) error
	Count(ctx context.Context, day string) (int, error)
}

type rewardService struct {
	logger *slog.Logger

	promoRepo promoRepo
	counter   dailyCounter
	settings  settingsProvider
	codes     CodeGenerator

	location *time.Location
	now      func() time.Time
}

// NewRewardService counts the daily limit per calendar day in location.
func NewRewardService(
	logger *slog.Logger,
	promoRepo promoRepo,
	counter dailyCounter,
	settings settingsProvider,
	codes CodeGenerator,
	location *time.Location,
) RewardService {
	return &rewardService{
		logger:    logger.With("component", "reward_service"),
		promoRepo: promoRepo,
		counter:   counter,
		settings:  settings,
		codes:     codes,
		location:  location,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (that *rewardService) Issue(ctx context.Context, session *entity.Session, reason entity.RewardReason) (*entity.PromoCode, error) {
	log := that.logger.With("method", "Issue", "session_id", session.ID, "reason", reason)

	if !reason.IsValid() {
		return nil, fmt.Errorf("%w: unknown reward reason %q", apperror.ErrValidation, reason)
	}

	if _, ok := session.Reward(reason); ok {
		return nil, apperror.ErrAlreadyIssued
	}

	settings, err := that.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	claimed, err := that.promoRepo.ClaimReward(ctx, session.ID, reason)
	if err != nil {
		return nil, fmt.Errorf("failed to claim reward: %w", err)
	}

	if !claimed {
		return nil, apperror.ErrAlreadyIssued
	}

	now := that.now()
	day := now.In(that.location).Format(dayLayout)

	reserved, err := that.counter.Reserve(ctx, day, settings.PromoDailyLimit)
	if err != nil {
		that.releaseClaim(ctx, log, session.ID, reason)
		return nil, fmt.Errorf("failed to reserve daily slot: %w", err)
	}

	if !reserved {
		that.releaseClaim(ctx, log, session.ID, reason)
		log.Warn("daily promo limit reached", "day", day, "limit", settings.PromoDailyLimit)
		return nil, apperror.ErrDailyLimitExceeded
	}

	promo, err := that.saveUniqueCode(ctx, session.ID, reason, now, settings.PromoTTLHours)
	if err != nil {
		that.releaseDailySlot(ctx, log, day)
		that.releaseClaim(ctx, log, session.ID, reason)
		return nil, err
	}

	if err = that.promoRepo.BindReward(ctx, session.ID, reason, promo.Code); err != nil {
		log.Warn("could not bind reward claim to code", "code", promo.Code, "error", err)
	}

	log.Info("promo code issued", "code", promo.Code, "expires_at", promo.ExpiresAt)

	return promo, nil
}

func (that *rewardService) saveUniqueCode(
	ctx context.Context,
	sessionID string,
	reason entity.RewardReason,
	now time.Time,
	ttlHours int,
) (*entity.PromoCode, error) {
	for range maxCodeAttempts {
		code, err := that.codes.Generate()
		if err != nil {
			return nil, fmt.Errorf("failed to generate promo code: %w", err)
		}

		promo := &entity.PromoCode{
			Code:      code,
			SessionID: sessionID,
			Reason:    reason,
			CreatedAt: now,
			ExpiresAt: now.Add(time.Duration(ttlHours) * time.Hour),
		}

		err = that.promoRepo.Save(ctx, promo)
		if errors.Is(err, repository.ErrCodeTaken) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to save promo code: %w", err)
		}

		return promo, nil
	}

	return nil, apperror.ErrCodeSpaceExhausted
}

// rollback steps run detached so a cancelled request still returns its reservation.
func (that *rewardService) releaseClaim(ctx context.Context, log *slog.Logger, sessionID string, reason entity.RewardReason) {
	if err := that.promoRepo.ReleaseReward(context.WithoutCancel(ctx), sessionID, reason); err != nil {
		log.Error("could not release reward claim", "error", err)
	}
}

func (that *rewardService) releaseDailySlot(ctx context.Context, log *slog.Logger, day string) {
	if err := that.counter.Release(context.WithoutCancel(ctx), day); err != nil {
		log.Error("could not release daily slot", "day", day, "error", err)
	}
}

func (that *rewardService) GetPromo(ctx context.Context, code string) (*entity.PromoCode, error) {
	promo, err := that.promoRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get promo code: %w", err)
	}

	return promo, nil
}

// ListPromos returns the latest codes, newest first. limit is clamped to [1, 500].
func (that *rewardService) ListPromos(ctx context.Context, limit int) ([]*entity.PromoCode, error) {
	limit = min(max(limit, MinPromoListLimit), MaxPromoListLimit)

	promos, err := that.promoRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list promo codes: %w", err)
	}

	return promos, nil
}

func (that *rewardService) IssuedToday(ctx context.Context) (int, error) {
	count, err := that.counter.Count(ctx, that.now().In(that.location).Format(dayLayout))
	if err != nil {
		return 0, fmt.Errorf("failed to get daily count: %w", err)
	}

	return count, nil
}
