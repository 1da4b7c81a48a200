package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/testing/suite"
)

func newPromo(code string, createdAt time.Time) *entity.PromoCode {
	return &entity.PromoCode{
		Code:      code,
		SessionID: "session-" + code,
		Reason:    entity.ReasonGameWin,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(72 * time.Hour),
	}
}

func TestPromoRepository_Save(t *testing.T) {
	t.Run("Save_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		promoRepo := NewPromoRepository(st.Storage, time.Hour)
		promo := newPromo("ABCD2345", time.Now().UTC().Truncate(time.Millisecond))

		// When: a new code is saved
		err := promoRepo.Save(ctx, promo)

		// Then: it can be read back
		require.NoError(t, err)

		stored, err := promoRepo.GetByCode(ctx, "ABCD2345")
		require.NoError(t, err)
		assert.Equal(t, promo.SessionID, stored.SessionID)
		assert.Equal(t, promo.Reason, stored.Reason)
		assert.True(t, promo.ExpiresAt.Equal(stored.ExpiresAt))
	})

	t.Run("Save_Collision", func(t *testing.T) {
		ctx, st := suite.New(t)

		promoRepo := NewPromoRepository(st.Storage, time.Hour)
		require.NoError(t, promoRepo.Save(ctx, newPromo("ABCD2345", time.Now().UTC())))

		// When: the same code is saved for another session
		other := newPromo("ABCD2345", time.Now().UTC())
		other.SessionID = "other"
		err := promoRepo.Save(ctx, other)

		// Then: ErrCodeTaken is returned and the first record is kept
		require.ErrorIs(t, err, ErrCodeTaken)

		stored, err := promoRepo.GetByCode(ctx, "ABCD2345")
		require.NoError(t, err)
		assert.Equal(t, "session-ABCD2345", stored.SessionID)
	})

	t.Run("Save_IndexFailureRemovesCode", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: the index key holds a value of the wrong type, so indexing fails
		require.NoError(t, st.Storage.Set(ctx, issuedIndexKey, "broken", 0).Err())
		promoRepo := NewPromoRepository(st.Storage, time.Hour)

		// When: a code is saved
		err := promoRepo.Save(ctx, newPromo("ABCD2345", time.Now().UTC()))

		// Then: the save fails and the code is free again
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrCodeTaken)

		_, err = promoRepo.GetByCode(ctx, "ABCD2345")
		require.ErrorIs(t, err, apperror.ErrNotFound)

		require.NoError(t, st.Storage.Del(ctx, issuedIndexKey).Err())
		require.NoError(t, promoRepo.Save(ctx, newPromo("ABCD2345", time.Now().UTC())))
	})

	t.Run("GetByCode_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		promoRepo := NewPromoRepository(st.Storage, time.Hour)

		_, err := promoRepo.GetByCode(ctx, "NOPE")

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})
}

func TestPromoRepository_ListRecent(t *testing.T) {
	ctx, st := suite.New(t)

	promoRepo := NewPromoRepository(st.Storage, time.Hour)

	// Given: three codes issued a minute apart
	base := time.Now().UTC()
	for i, code := range []string{"AAAA2222", "BBBB3333", "CCCC4444"} {
		require.NoError(t, promoRepo.Save(ctx, newPromo(code, base.Add(time.Duration(i)*time.Minute))))
	}

	// When: the two most recent are listed
	promos, err := promoRepo.ListRecent(ctx, 2)

	// Then: they come newest first
	require.NoError(t, err)
	require.Len(t, promos, 2)
	assert.Equal(t, "CCCC4444", promos[0].Code)
	assert.Equal(t, "BBBB3333", promos[1].Code)

	empty, err := promoRepo.ListRecent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPromoRepository_ClaimReward(t *testing.T) {
	t.Run("Only one claim wins", func(t *testing.T) {
		ctx, st := suite.New(t)

		promoRepo := NewPromoRepository(st.Storage, time.Hour)

		// When: many callers claim the same slot concurrently
		var (
			wg     sync.WaitGroup
			mu     sync.Mutex
			claims int
		)
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()

				claimed, err := promoRepo.ClaimReward(ctx, "s1", entity.ReasonGameWin)
				assert.NoError(t, err)

				if claimed {
					mu.Lock()
					claims++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		// Then: exactly one succeeds
		assert.Equal(t, 1, claims)
	})

	t.Run("Reasons are independent and release frees the slot", func(t *testing.T) {
		ctx, st := suite.New(t)

		promoRepo := NewPromoRepository(st.Storage, time.Hour)

		claimed, err := promoRepo.ClaimReward(ctx, "s1", entity.ReasonGameWin)
		require.NoError(t, err)
		assert.True(t, claimed)

		claimed, err = promoRepo.ClaimReward(ctx, "s1", entity.ReasonGiftWin)
		require.NoError(t, err)
		assert.True(t, claimed)

		require.NoError(t, promoRepo.BindReward(ctx, "s1", entity.ReasonGameWin, "ABCD2345"))
		value, err := st.Storage.Get(ctx, rewardKey("s1", entity.ReasonGameWin)).Result()
		require.NoError(t, err)
		assert.Equal(t, "ABCD2345", value)

		require.NoError(t, promoRepo.ReleaseReward(ctx, "s1", entity.ReasonGiftWin))
		claimed, err = promoRepo.ClaimReward(ctx, "s1", entity.ReasonGiftWin)
		require.NoError(t, err)
		assert.True(t, claimed)
	})
}

func TestDailyCounter(t *testing.T) {
	t.Run("Never exceeds limit under concurrency", func(t *testing.T) {
		ctx, st := suite.New(t)

		counter := NewDailyCounter(st.Storage, 48*time.Hour)

		const limit = 5

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			reserved int
		)
		for range 30 {
			wg.Add(1)
			go func() {
				defer wg.Done()

				ok, err := counter.Reserve(ctx, "2026-03-01", limit)
				assert.NoError(t, err)

				if ok {
					mu.Lock()
					reserved++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, limit, reserved)

		count, err := counter.Count(ctx, "2026-03-01")
		require.NoError(t, err)
		assert.Equal(t, limit, count)

		ttl, err := st.Storage.TTL(ctx, counterKey("2026-03-01")).Result()
		require.NoError(t, err)
		assert.Positive(t, ttl)
	})

	t.Run("Zero limit is unlimited", func(t *testing.T) {
		ctx, st := suite.New(t)

		counter := NewDailyCounter(st.Storage, 48*time.Hour)

		for i := range 10 {
			ok, err := counter.Reserve(ctx, "2026-03-01", 0)
			require.NoError(t, err)
			assert.True(t, ok, fmt.Sprintf("reservation %d", i))
		}
	})

	t.Run("Release frees a slot and days are independent", func(t *testing.T) {
		ctx, st := suite.New(t)

		counter := NewDailyCounter(st.Storage, 48*time.Hour)

		ok, err := counter.Reserve(ctx, "2026-03-01", 1)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = counter.Reserve(ctx, "2026-03-01", 1)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = counter.Reserve(ctx, "2026-03-02", 1)
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, counter.Release(ctx, "2026-03-01"))
		require.NoError(t, counter.Release(ctx, "2026-03-01"))

		count, err := counter.Count(ctx, "2026-03-01")
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		ok, err = counter.Reserve(ctx, "2026-03-01", 1)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
