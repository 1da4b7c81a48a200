package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// reserveScript increments the counter unless the limit is already reached. A limit of 0 means unlimited.
// Returns the new count, or -1 when the limit was hit.
var reserveScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
local limit = tonumber(ARGV[1])
if limit > 0 and current >= limit then
	return -1
end
local count = redis.call('INCR', KEYS[1])
if redis.call('TTL', KEYS[1]) < 0 then
	redis.call('EXPIRE', KEYS[1], ARGV[2])
end
return count
`)

var releaseScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current <= 0 then
	return 0
end
return redis.call('DECR', KEYS[1])
`)

type DailyCounter interface {
	// Reserve takes one slot for day. It returns false when limit slots are already taken.
	Reserve(ctx context.Context, day string, limit int) (bool, error)
	Release(ctx context.Context, day string) error
	Count(ctx context.Context, day string) (int, error)
}

type dbCounter struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDailyCounter keeps one key per day; ttl must outlive the day it counts.
func NewDailyCounter(client *redis.Client, ttl time.Duration) DailyCounter {
	return &dbCounter{
		client: client,
		ttl:    ttl,
	}
}

func counterKey(day string) string {
	return "promo:daily:" + day
}

func (that *dbCounter) Reserve(ctx context.Context, day string, limit int) (bool, error) {
	result, err := reserveScript.Run(ctx, that.client, []string{counterKey(day)}, limit, int64(that.ttl.Seconds())).Int64()
	if err != nil {
		return false, fmt.Errorf("failed to reserve daily slot: %w", err)
	}

	return result >= 0, nil
}

func (that *dbCounter) Release(ctx context.Context, day string) error {
	if err := releaseScript.Run(ctx, that.client, []string{counterKey(day)}).Err(); err != nil {
		return fmt.Errorf("failed to release daily slot: %w", err)
	}

	return nil
}

func (that *dbCounter) Count(ctx context.Context, day string) (int, error) {
	count, err := that.client.Get(ctx, counterKey(day)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get daily count: %w", err)
	}

	return count, nil
}
