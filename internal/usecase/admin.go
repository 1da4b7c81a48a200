package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/service"
)

type AdminUseCase interface {
	Login(ctx context.Context, username, password string) (*service.AdminToken, error)
	Authenticate(token string) (string, error)
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (*service.AdminToken, error)

	GetSettings(ctx context.Context) (*entity.Settings, error)
	UpdateSettings(ctx context.Context, patch *SettingsPatch) (*entity.Settings, error)

	ListPromos(ctx context.Context, limit int) (*PromoReport, error)
}

// SettingsPatch carries the fields an admin wants to change; nil fields keep their current value.
type SettingsPatch struct {
	TelegramEnabled   *bool
	TelegramChatID    *string
	TemplateWin       *string
	TemplateLose      *string
	PromoTTLHours     *int
	PromoDailyLimit   *int
	DefaultDifficulty *string
}

type PromoReport struct {
	Promos      []*entity.PromoCode
	IssuedToday int
	DailyLimit  int
}

type adminServiceDep interface {
	Login(ctx context.Context, username, password string) (*service.AdminToken, error)
	Authenticate(token string) (string, error)
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (*service.AdminToken, error)
}

type settingsServiceDep interface {
	Get(ctx context.Context) (*entity.Settings, error)
	Update(ctx context.Context, settings *entity.Settings) (*entity.Settings, error)
}

type promoReportDep interface {
	ListPromos(ctx context.Context, limit int) ([]*entity.PromoCode, error)
	IssuedToday(ctx context.Context) (int, error)
}

type adminUseCase struct {
	admins   adminServiceDep
	settings settingsServiceDep
	promos   promoReportDep
}

func NewAdminUseCase(admins adminServiceDep, settings settingsServiceDep, promos promoReportDep) AdminUseCase {
	return &adminUseCase{
		admins:   admins,
		settings: settings,
		promos:   promos,
	}
}

func (that *adminUseCase) Login(ctx context.Context, username, password string) (*service.AdminToken, error) {
	token, err := that.admins.Login(ctx, username, password)
	if err != nil {
		return nil, fmt.Errorf("failed to login: %w", err)
	}

	return token, nil
}

func (that *adminUseCase) Authenticate(token string) (string, error) {
	username, err := that.admins.Authenticate(token)
	if err != nil {
		return "", fmt.Errorf("failed to authenticate: %w", err)
	}

	return username, nil
}

func (that *adminUseCase) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (*service.AdminToken, error) {
	token, err := that.admins.ChangePassword(ctx, username, currentPassword, newPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to change password: %w", err)
	}

	return token, nil
}

func (that *adminUseCase) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := that.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

func (that *adminUseCase) UpdateSettings(ctx context.Context, patch *SettingsPatch) (*entity.Settings, error) {
	current, err := that.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	next := *current
	if err = patch.applyTo(&next); err != nil {
		return nil, err
	}

	updated, err := that.settings.Update(ctx, &next)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return updated, nil
}

func (that *SettingsPatch) applyTo(settings *entity.Settings) error {
	if that.TelegramEnabled != nil {
		settings.TelegramEnabled = *that.TelegramEnabled
	}
	if that.TelegramChatID != nil {
		settings.TelegramChatID = *that.TelegramChatID
	}
	if that.TemplateWin != nil {
		settings.TemplateWin = *that.TemplateWin
	}
	if that.TemplateLose != nil {
		settings.TemplateLose = *that.TemplateLose
	}
	if that.PromoTTLHours != nil {
		settings.PromoTTLHours = *that.PromoTTLHours
	}
	if that.PromoDailyLimit != nil {
		settings.PromoDailyLimit = *that.PromoDailyLimit
	}
	if that.DefaultDifficulty != nil {
		difficulty, err := entity.ParseDifficulty(*that.DefaultDifficulty)
		if err != nil {
			return err
		}
		settings.DefaultDifficulty = difficulty
	}

	return nil
}

func (that *adminUseCase) ListPromos(ctx context.Context, limit int) (*PromoReport, error) {
	promos, err := that.promos.ListPromos(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list promos: %w", err)
	}

	issuedToday, err := that.promos.IssuedToday(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count promos: %w", err)
	}

	settings, err := that.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &PromoReport{Promos: promos, IssuedToday: issuedToday, DailyLimit: settings.PromoDailyLimit}, nil
}
