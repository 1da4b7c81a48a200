package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

type NotificationService interface {
	// NotifyReward announces an issued code. It returns immediately.
	NotifyReward(ctx context.Context, promo *entity.PromoCode)
	// NotifyLose announces a lost game. It returns immediately.
	NotifyLose(ctx context.Context, sessionID string)
	// Close waits for messages that are still being sent.
	Close()
}

type messenger interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

type notificationService struct {
	logger *slog.Logger

	messenger messenger
	settings  settingsProvider
	timeout   time.Duration

	wg sync.WaitGroup
}

func NewNotificationService(logger *slog.Logger, messenger messenger, settings settingsProvider, timeout time.Duration) NotificationService {
	return &notificationService{
		logger:    logger.With("component", "notification_service"),
		messenger: messenger,
		settings:  settings,
		timeout:   timeout,
	}
}

func (that *notificationService) NotifyReward(ctx context.Context, promo *entity.PromoCode) {
	that.dispatch(ctx, "reward", promo.SessionID, func(settings *entity.Settings) string {
		return settings.RenderWin(promo.Code)
	})
}

func (that *notificationService) NotifyLose(ctx context.Context, sessionID string) {
	that.dispatch(ctx, "lose", sessionID, func(settings *entity.Settings) string {
		return settings.RenderLose()
	})
}

// dispatch sends in the background. Failures are logged and never reach the caller.
func (that *notificationService) dispatch(ctx context.Context, event, sessionID string, render func(*entity.Settings) string) {
	log := that.logger.With("event", event, "session_id", sessionID)

	ctx = context.WithoutCancel(ctx)

	that.wg.Add(1)
	go func() {
		defer that.wg.Done()

		ctx, cancel := context.WithTimeout(ctx, that.timeout)
		defer cancel()

		settings, err := that.settings.Get(ctx)
		if err != nil {
			log.Error("could not read notification settings", "error", err)
			return
		}

		if !settings.TelegramEnabled || settings.TelegramChatID == "" {
			log.Info("telegram notifications disabled, skipping")
			return
		}

		if err = that.messenger.SendMessage(ctx, settings.TelegramChatID, render(settings)); err != nil {
			log.Error("could not send telegram notification", "error", err)
			return
		}

		log.Info("telegram notification sent")
	}()
}

func (that *notificationService) Close() {
	that.wg.Wait()
}
