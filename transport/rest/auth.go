package rest

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/config"
	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/service"
	"github.com/rocketscienceinc/tictactoe-promo/internal/usecase"
)

const (
	adminCookieName        = "admin_token"
	adminRouteSecretHeader = "X-Admin-Route-Secret"
	adminContextKey        = "admin_username"
)

type AuthHandler interface {
	Login(ctx echo.Context) error
	Logout(ctx echo.Context) error
	Me(ctx echo.Context) error
	ChangePassword(ctx echo.Context) error

	RequireRouteSecret(next echo.HandlerFunc) echo.HandlerFunc
	RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc
}

type adminUseCase interface {
	Login(ctx context.Context, username, password string) (*service.AdminToken, error)
	Authenticate(token string) (string, error)
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (*service.AdminToken, error)

	GetSettings(ctx context.Context) (*entity.Settings, error)
	UpdateSettings(ctx context.Context, patch *usecase.SettingsPatch) (*entity.Settings, error)

	ListPromos(ctx context.Context, limit int) (*usecase.PromoReport, error)
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=256"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required,max=256"`
	NewPassword     string `json:"new_password" validate:"required,max=256"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

type meResponse struct {
	Username string `json:"username"`
}

type authHandler struct {
	logger *slog.Logger

	routeSecret  string
	secureCookie bool

	admin adminUseCase
}

func NewAuth(logger *slog.Logger, conf *config.Admin, admin adminUseCase) AuthHandler {
	return &authHandler{
		logger:       logger.With("component", "auth_handler"),
		routeSecret:  conf.RouteSecret,
		secureCookie: conf.SecureCookie,
		admin:        admin,
	}
}

// RequireRouteSecret hides the admin API behind a shared header when a route secret is configured.
// CORS preflight requests pass through.
func (that *authHandler) RequireRouteSecret(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if that.routeSecret == "" || ctx.Request().Method == http.MethodOptions {
			return next(ctx)
		}

		provided := ctx.Request().Header.Get(adminRouteSecretHeader)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(that.routeSecret)) != 1 {
			return echo.ErrNotFound
		}

		return next(ctx)
	}
}

func (that *authHandler) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(adminCookieName)
		if err != nil || cookie.Value == "" {
			return apperror.ErrUnauthorized
		}

		username, err := that.admin.Authenticate(cookie.Value)
		if err != nil {
			return err
		}

		ctx.Set(adminContextKey, username)

		return next(ctx)
	}
}

func (that *authHandler) Login(ctx echo.Context) error {
	log := that.logger.With("method", "Login")

	var req loginRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	token, err := that.admin.Login(ctx.Request().Context(), req.Username, req.Password)
	if err != nil {
		log.Warn("admin login failed", "username", req.Username, "remote_ip", ctx.RealIP())
		return err
	}

	that.setTokenCookie(ctx, token)
	log.Info("admin logged in", "username", token.Username)

	return ctx.JSON(http.StatusOK, &okResponse{OK: true})
}

func (that *authHandler) Logout(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     adminCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   that.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, &okResponse{OK: true})
}

func (that *authHandler) Me(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &meResponse{Username: adminFrom(ctx)})
}

func (that *authHandler) ChangePassword(ctx echo.Context) error {
	var req changePasswordRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	token, err := that.admin.ChangePassword(ctx.Request().Context(), adminFrom(ctx), req.CurrentPassword, req.NewPassword)
	if err != nil {
		return err
	}

	that.setTokenCookie(ctx, token)

	return ctx.JSON(http.StatusOK, &okResponse{OK: true})
}

func (that *authHandler) setTokenCookie(ctx echo.Context, token *service.AdminToken) {
	ctx.SetCookie(&http.Cookie{
		Name:     adminCookieName,
		Value:    token.Value,
		Path:     "/",
		Expires:  token.ExpiresAt,
		MaxAge:   int(time.Until(token.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   that.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func adminFrom(ctx echo.Context) string {
	username, _ := ctx.Get(adminContextKey).(string)
	return username
}

// loginRateLimiter allows perMinute attempts per client IP.
func loginRateLimiter(perMinute int) echo.MiddlewareFunc {
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(perMinute) / time.Minute.Seconds()),
		Burst:     perMinute,
		ExpiresIn: 3 * time.Minute,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		DenyHandler: func(_ echo.Context, _ string, _ error) error {
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts, try again later")
		},
		ErrorHandler: func(_ echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusForbidden, "could not identify client").SetInternal(err)
		},
	})
}
