package rest

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/usecase"
)

const defaultPromoListLimit = 50

type AdminHandler interface {
	GetSettings(ctx echo.Context) error
	UpdateSettings(ctx echo.Context) error
	ListPromos(ctx echo.Context) error
}

type settingsRequest struct {
	TelegramEnabled   *bool   `json:"telegram_enabled"`
	TelegramChatID    *string `json:"telegram_chat_id" validate:"omitempty,max=128"`
	TemplateWin       *string `json:"telegram_template_win" validate:"omitempty,max=4096"`
	TemplateLose      *string `json:"telegram_template_lose" validate:"omitempty,max=4096"`
	PromoTTLHours     *int    `json:"promo_ttl_hours" validate:"omitempty,min=1"`
	PromoDailyLimit   *int    `json:"promo_daily_limit" validate:"omitempty,min=0"`
	DefaultDifficulty *string `json:"default_difficulty"`
}

type promoItem struct {
	Code      string              `json:"code"`
	SessionID string              `json:"session_id"`
	Reason    entity.RewardReason `json:"reason"`
	CreatedAt time.Time           `json:"created_at"`
	ExpiresAt time.Time           `json:"expires_at"`
	Status    entity.PromoStatus  `json:"status"`
}

type promosResponse struct {
	Items       []promoItem `json:"items"`
	IssuedToday int         `json:"issued_today"`
	DailyLimit  int         `json:"daily_limit"`
}

type adminHandler struct {
	logger *slog.Logger

	admin adminUseCase
}

func NewAdminHandler(logger *slog.Logger, admin adminUseCase) AdminHandler {
	return &adminHandler{
		logger: logger.With("component", "admin_handler"),
		admin:  admin,
	}
}

func (that *adminHandler) GetSettings(ctx echo.Context) error {
	settings, err := that.admin.GetSettings(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, settings)
}

func (that *adminHandler) UpdateSettings(ctx echo.Context) error {
	var req settingsRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	settings, err := that.admin.UpdateSettings(ctx.Request().Context(), &usecase.SettingsPatch{
		TelegramEnabled:   req.TelegramEnabled,
		TelegramChatID:    req.TelegramChatID,
		TemplateWin:       req.TemplateWin,
		TemplateLose:      req.TemplateLose,
		PromoTTLHours:     req.PromoTTLHours,
		PromoDailyLimit:   req.PromoDailyLimit,
		DefaultDifficulty: req.DefaultDifficulty,
	})
	if err != nil {
		return err
	}

	that.logger.Info("settings saved", "admin", adminFrom(ctx))

	return ctx.JSON(http.StatusOK, settings)
}

func (that *adminHandler) ListPromos(ctx echo.Context) error {
	limit := defaultPromoListLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%w: limit must be an integer", apperror.ErrValidation)
		}
		limit = parsed
	}

	report, err := that.admin.ListPromos(ctx.Request().Context(), limit)
	if err != nil {
		return err
	}

	now := time.Now()
	items := make([]promoItem, 0, len(report.Promos))
	for _, promo := range report.Promos {
		items = append(items, promoItem{
			Code:      promo.Code,
			SessionID: promo.SessionID,
			Reason:    promo.Reason,
			CreatedAt: promo.CreatedAt,
			ExpiresAt: promo.ExpiresAt,
			Status:    promo.StatusAt(now),
		})
	}

	return ctx.JSON(http.StatusOK, &promosResponse{
		Items:       items,
		IssuedToday: report.IssuedToday,
		DailyLimit:  report.DailyLimit,
	})
}
