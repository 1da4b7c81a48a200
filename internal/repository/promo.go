package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

var ErrCodeTaken = errors.New("promo code already exists")

const (
	issuedIndexKey = "promos:issued"
	claimPending   = "pending"
)

type PromoRepository interface {
	// Save stores a new code. ErrCodeTaken means the code collides with an existing one.
	Save(ctx context.Context, promo *entity.PromoCode) error
	GetByCode(ctx context.Context, code string) (*entity.PromoCode, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.PromoCode, error)

	// ClaimReward reserves the (session, reason) slot. It returns false if the slot is already taken.
	ClaimReward(ctx context.Context, sessionID string, reason entity.RewardReason) (bool, error)
	BindReward(ctx context.Context, sessionID string, reason entity.RewardReason, code string) error
	ReleaseReward(ctx context.Context, sessionID string, reason entity.RewardReason) error
}

type dbPromo struct {
	client   *redis.Client
	claimTTL time.Duration
}

func NewPromoRepository(client *redis.Client, claimTTL time.Duration) PromoRepository {
	return &dbPromo{
		client:   client,
		claimTTL: claimTTL,
	}
}

func promoKey(code string) string {
	return "promo:" + code
}

func rewardKey(sessionID string, reason entity.RewardReason) string {
	return fmt.Sprintf("reward:%s:%s", sessionID, reason)
}

func (that *dbPromo) Save(ctx context.Context, promo *entity.PromoCode) error {
	promoJSON, err := json.Marshal(promo)
	if err != nil {
		return fmt.Errorf("could not marshal promo: %w", err)
	}

	created, err := that.client.SetNX(ctx, promoKey(promo.Code), promoJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to set promo: %w", err)
	}

	if !created {
		return ErrCodeTaken
	}

	err = that.client.ZAdd(ctx, issuedIndexKey, redis.Z{
		Score:  float64(promo.CreatedAt.UnixMilli()),
		Member: promo.Code,
	}).Err()
	if err != nil {
		// an unindexed code must not stay reserved
		if delErr := that.client.Del(context.WithoutCancel(ctx), promoKey(promo.Code)).Err(); delErr != nil {
			return fmt.Errorf("failed to index promo: %w (cleanup failed: %v)", err, delErr)
		}

		return fmt.Errorf("failed to index promo: %w", err)
	}

	return nil
}

func (that *dbPromo) GetByCode(ctx context.Context, code string) (*entity.PromoCode, error) {
	response, err := that.client.Get(ctx, promoKey(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get promo by code: %w", err)
	}

	var promo entity.PromoCode
	if err = json.Unmarshal(response, &promo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal promo: %w", err)
	}

	return &promo, nil
}

// ListRecent returns up to limit codes, newest first.
func (that *dbPromo) ListRecent(ctx context.Context, limit int) ([]*entity.PromoCode, error) {
	if limit <= 0 {
		return []*entity.PromoCode{}, nil
	}

	codes, err := that.client.ZRevRange(ctx, issuedIndexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read promo index: %w", err)
	}

	promos := make([]*entity.PromoCode, 0, len(codes))
	if len(codes) == 0 {
		return promos, nil
	}

	keys := make([]string, len(codes))
	for i, code := range codes {
		keys[i] = promoKey(code)
	}

	values, err := that.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get promos: %w", err)
	}

	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var promo entity.PromoCode
		if err = json.Unmarshal([]byte(raw), &promo); err != nil {
			return nil, fmt.Errorf("failed to unmarshal promo: %w", err)
		}
		promos = append(promos, &promo)
	}

	return promos, nil
}

func (that *dbPromo) ClaimReward(ctx context.Context, sessionID string, reason entity.RewardReason) (bool, error) {
	claimed, err := that.client.SetNX(ctx, rewardKey(sessionID, reason), claimPending, that.claimTTL).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim reward: %w", err)
	}

	return claimed, nil
}

func (that *dbPromo) BindReward(ctx context.Context, sessionID string, reason entity.RewardReason, code string) error {
	if err := that.client.Set(ctx, rewardKey(sessionID, reason), code, that.claimTTL).Err(); err != nil {
		return fmt.Errorf("failed to bind reward: %w", err)
	}

	return nil
}

func (that *dbPromo) ReleaseReward(ctx context.Context, sessionID string, reason entity.RewardReason) error {
	if err := that.client.Del(ctx, rewardKey(sessionID, reason)).Err(); err != nil {
		return fmt.Errorf("failed to release reward: %w", err)
	}

	return nil
}
