package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
)

const (
	keyTelegramEnabled   = "telegram_enabled"
	keyTelegramChatID    = "telegram_chat_id"
	keyTemplateWin       = "telegram_template_win"
	keyTemplateLose      = "telegram_template_lose"
	keyPromoTTLHours     = "promo_ttl_hours"
	keyPromoDailyLimit   = "promo_daily_limit"
	keyDefaultDifficulty = "default_difficulty"
)

type SettingsService interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, settings *entity.Settings) (*entity.Settings, error)
}

type settingsRepo interface {
	GetAll(ctx context.Context) (map[string]string, error)
	SetMany(ctx context.Context, values map[string]string) error
}

type settingsService struct {
	logger *slog.Logger

	settingsRepo settingsRepo
	defaults     entity.Settings
}

// NewSettingsService reads the store on every call; missing or malformed values fall back to defaults.
func NewSettingsService(logger *slog.Logger, settingsRepo settingsRepo, defaults entity.Settings) SettingsService {
	return &settingsService{
		logger:       logger.With("component", "settings_service"),
		settingsRepo: settingsRepo,
		defaults:     defaults,
	}
}

func (that *settingsService) Get(ctx context.Context) (*entity.Settings, error) {
	values, err := that.settingsRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings from storage: %w", err)
	}

	settings := that.defaults

	if raw, ok := values[keyTelegramEnabled]; ok {
		settings.TelegramEnabled = parseBool(raw)
	}

	if raw := values[keyTelegramChatID]; raw != "" {
		settings.TelegramChatID = raw
	}

	if raw := values[keyTemplateWin]; raw != "" {
		settings.TemplateWin = raw
	}

	if raw := values[keyTemplateLose]; raw != "" {
		settings.TemplateLose = raw
	}

	settings.PromoTTLHours = that.intValue(values, keyPromoTTLHours, that.defaults.PromoTTLHours, 1)
	settings.PromoDailyLimit = that.intValue(values, keyPromoDailyLimit, that.defaults.PromoDailyLimit, 0)

	if raw, ok := values[keyDefaultDifficulty]; ok {
		difficulty, err := entity.ParseDifficulty(raw)
		if err != nil {
			that.logger.Warn("ignoring stored setting", "key", keyDefaultDifficulty, "value", raw)
		} else {
			settings.DefaultDifficulty = difficulty
		}
	}

	return &settings, nil
}

func (that *settingsService) Update(ctx context.Context, settings *entity.Settings) (*entity.Settings, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	values := map[string]string{
		keyTelegramEnabled:   strconv.FormatBool(settings.TelegramEnabled),
		keyTelegramChatID:    settings.TelegramChatID,
		keyTemplateWin:       settings.TemplateWin,
		keyTemplateLose:      settings.TemplateLose,
		keyPromoTTLHours:     strconv.Itoa(settings.PromoTTLHours),
		keyPromoDailyLimit:   strconv.Itoa(settings.PromoDailyLimit),
		keyDefaultDifficulty: string(settings.DefaultDifficulty),
	}

	if err := that.settingsRepo.SetMany(ctx, values); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	that.logger.Info("settings updated",
		"telegram_enabled", settings.TelegramEnabled,
		"promo_ttl_hours", settings.PromoTTLHours,
		"promo_daily_limit", settings.PromoDailyLimit,
		"default_difficulty", settings.DefaultDifficulty,
	)

	return that.Get(ctx)
}

func (that *settingsService) intValue(values map[string]string, key string, fallback, minValue int) int {
	raw, ok := values[key]
	if !ok {
		return fallback
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value < minValue {
		that.logger.Warn("ignoring stored setting", "key", key, "value", raw)
		return fallback
	}

	return value
}

func parseBool(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
