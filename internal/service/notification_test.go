package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	mockedService "github.com/rocketscienceinc/tictactoe-promo/mocks/service"
	"github.com/rocketscienceinc/tictactoe-promo/testing/suite"
)

func notificationSettings(enabled bool, chatID string) *entity.Settings {
	settings := testDefaults
	settings.TelegramEnabled = enabled
	settings.TelegramChatID = chatID

	return &settings
}

func TestNotificationService(t *testing.T) {
	promo := &entity.PromoCode{Code: "ABCD2345", SessionID: "session", Reason: entity.ReasonGameWin}

	t.Run("Reward renders the win template", func(t *testing.T) {
		// Given: telegram is enabled
		messenger := mockedService.NewMockmessenger(t)
		settings := mockedService.NewMocksettingsProvider(t)
		settings.EXPECT().Get(mock.Anything).Return(notificationSettings(true, "-100123"), nil).Once()
		messenger.EXPECT().
			SendMessage(mock.Anything, "-100123", "Победа! Промокод выдан: ABCD2345").
			Return(nil).
			Once()

		service := NewNotificationService(suite.NewLogger(), messenger, settings, time.Second)

		// When: a reward is announced and the service drains
		service.NotifyReward(context.Background(), promo)
		service.Close()

		// Then: the message was sent once
	})

	t.Run("Lose uses the lose template", func(t *testing.T) {
		messenger := mockedService.NewMockmessenger(t)
		settings := mockedService.NewMocksettingsProvider(t)
		settings.EXPECT().Get(mock.Anything).Return(notificationSettings(true, "@promo_group"), nil).Once()
		messenger.EXPECT().SendMessage(mock.Anything, "@promo_group", "Проигрыш").Return(nil).Once()

		service := NewNotificationService(suite.NewLogger(), messenger, settings, time.Second)
		service.NotifyLose(context.Background(), "session")
		service.Close()
	})

	t.Run("Disabled or unconfigured sends nothing", func(t *testing.T) {
		for _, configured := range []*entity.Settings{
			notificationSettings(false, "-100123"),
			notificationSettings(true, ""),
		} {
			messenger := mockedService.NewMockmessenger(t)
			settings := mockedService.NewMocksettingsProvider(t)
			settings.EXPECT().Get(mock.Anything).Return(configured, nil).Once()

			service := NewNotificationService(suite.NewLogger(), messenger, settings, time.Second)
			service.NotifyReward(context.Background(), promo)
			service.Close()
		}
	})

	t.Run("Send failure is swallowed", func(t *testing.T) {
		messenger := mockedService.NewMockmessenger(t)
		settings := mockedService.NewMocksettingsProvider(t)
		settings.EXPECT().Get(mock.Anything).Return(notificationSettings(true, "42"), nil).Once()
		messenger.EXPECT().SendMessage(mock.Anything, "42", mock.Anything).Return(errStorage).Once()

		service := NewNotificationService(suite.NewLogger(), messenger, settings, time.Second)
		service.NotifyReward(context.Background(), promo)
		service.Close()
	})

	t.Run("Survives a cancelled caller and bounds the send", func(t *testing.T) {
		// Given: the request context is already cancelled
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		messenger := mockedService.NewMockmessenger(t)
		settings := mockedService.NewMocksettingsProvider(t)
		settings.EXPECT().Get(mock.Anything).Return(notificationSettings(true, "42"), nil).Once()
		messenger.EXPECT().
			SendMessage(mock.MatchedBy(func(ctx context.Context) bool {
				_, hasDeadline := ctx.Deadline()
				return ctx.Err() == nil && hasDeadline
			}), "42", mock.Anything).
			Return(nil).
			Once()

		// When: a notification is dispatched
		service := NewNotificationService(suite.NewLogger(), messenger, settings, time.Second)
		service.NotifyReward(ctx, promo)
		service.Close()

		// Then: it still runs with its own deadline
	})
}
