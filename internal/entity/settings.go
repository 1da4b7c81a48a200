package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
)

// CodePlaceholder is replaced with the issued promo code when a template is rendered.
const CodePlaceholder = "{code}"

type Settings struct {
	TelegramEnabled   bool       `json:"telegram_enabled"`
	TelegramChatID    string     `json:"telegram_chat_id"`
	TemplateWin       string     `json:"telegram_template_win"`
	TemplateLose      string     `json:"telegram_template_lose"`
	PromoTTLHours     int        `json:"promo_ttl_hours"`
	PromoDailyLimit   int        `json:"promo_daily_limit"`
	DefaultDifficulty Difficulty `json:"default_difficulty"`
}

func (that *Settings) Validate() error {
	if that.PromoTTLHours < 1 {
		return fmt.Errorf("%w: promo_ttl_hours must be at least 1", apperror.ErrValidation)
	}

	if that.PromoDailyLimit < 0 {
		return fmt.Errorf("%w: promo_daily_limit must not be negative", apperror.ErrValidation)
	}

	if !that.DefaultDifficulty.IsValid() {
		return fmt.Errorf("%w: unknown default_difficulty %q", apperror.ErrValidation, that.DefaultDifficulty)
	}

	return nil
}

// RenderWin fills the win template. Gift wins reuse it.
func (that *Settings) RenderWin(code string) string {
	return strings.ReplaceAll(that.TemplateWin, CodePlaceholder, code)
}

func (that *Settings) RenderLose() string {
	return that.TemplateLose
}
