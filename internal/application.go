package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-promo/internal/bot"
	"github.com/rocketscienceinc/tictactoe-promo/internal/config"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/repository"
	"github.com/rocketscienceinc/tictactoe-promo/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-promo/internal/service"
	"github.com/rocketscienceinc/tictactoe-promo/internal/transport/telegram"
	"github.com/rocketscienceinc/tictactoe-promo/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-promo/transport/rest"
)

const (
	shutdownTimeout = 10 * time.Second

	// counters outlive their day so a late release still finds the key
	dailyCounterTTL = 48 * time.Hour
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	jwtSecretKey, err := conf.Admin.SigningKey()
	if err != nil {
		return err
	}

	location, err := conf.Location()
	if err != nil {
		return err
	}

	defaultDifficulty, err := entity.ParseDifficulty(conf.DefaultDifficulty)
	if err != nil {
		return fmt.Errorf("invalid default difficulty: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	if err = os.MkdirAll(filepath.Dir(conf.SQLiteStoragePath), 0o755); err != nil {
		return fmt.Errorf("could not create sqlite directory: %w", err)
	}

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	sessionRepo := repository.NewSessionRepository(redisStorage.Connection, conf.SessionTTL)
	promoRepo := repository.NewPromoRepository(redisStorage.Connection, conf.Promo.ClaimTTL)
	dailyCounter := repository.NewDailyCounter(redisStorage.Connection, dailyCounterTTL)
	settingsRepo := repository.NewSettingsRepository(sqliteStorage.Connection)
	adminRepo := repository.NewAdminRepository(sqliteStorage.Connection)

	settingsService := service.NewSettingsService(logger, settingsRepo, entity.Settings{
		TelegramEnabled:   conf.Telegram.Enabled,
		TelegramChatID:    conf.Telegram.ChatID,
		TemplateWin:       conf.Telegram.TemplateWin,
		TemplateLose:      conf.Telegram.TemplateLose,
		PromoTTLHours:     conf.Promo.TTLHours,
		PromoDailyLimit:   conf.Promo.DailyLimit,
		DefaultDifficulty: defaultDifficulty,
	})

	sessionService := service.NewSessionService(logger, sessionRepo, bot.NewRegistry(nil), settingsService)
	rewardService := service.NewRewardService(
		logger,
		promoRepo,
		dailyCounter,
		settingsService,
		service.NewCodeGenerator(conf.Promo.CodeLength),
		location,
	)

	telegramClient := telegram.New(logger, conf.Telegram.APIURL, conf.Telegram.BotToken, conf.Telegram.ChatUsername, conf.Telegram.Timeout)
	notificationService := service.NewNotificationService(logger, telegramClient, settingsService, conf.Telegram.Timeout)
	defer notificationService.Close()

	adminService := service.NewAdminService(logger, adminRepo, jwtSecretKey, conf.Admin.TokenTTL)
	if err = adminService.EnsureInitialAdmin(ctx, conf.Admin.Username, conf.Admin.InitialPassword); err != nil {
		return fmt.Errorf("could not create initial admin: %w", err)
	}

	gameUseCase := usecase.NewGameUseCase(logger, sessionService, rewardService, notificationService)
	adminUseCase := usecase.NewAdminUseCase(adminService, settingsService, rewardService)

	httpServer := rest.New(logger, conf, gameUseCase, adminUseCase)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := httpServer.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err = httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("could not shutdown HTTP server", "error", err)
	}

	return nil
}
