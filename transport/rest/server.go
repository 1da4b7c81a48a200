package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-promo/internal/config"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 30 * time.Second
)

type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
}

type requestValidator struct {
	validate *validator.Validate
}

func (that *requestValidator) Validate(i any) error {
	if err := that.validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrValidation, err)
	}

	return nil
}

// New builds the HTTP API: public game routes under /api/game and the admin console under /api/admin.
func New(logger *slog.Logger, conf *config.Config, game gameUseCase, admin adminUseCase) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}

	server := &Server{
		logger: logger.With("component", "http_server"),
		echo:   e,
	}

	e.HTTPErrorHandler = server.handleError

	e.Use(middleware.Recover())
	e.Use(server.requestLogger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     conf.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, adminRouteSecretHeader},
		AllowCredentials: true,
	}))

	ping := NewPingHandler()
	e.GET("/ping", ping.Ping)
	e.GET("/api/health", ping.Health)

	gameHandler := NewGameHandler(logger, game)
	gameGroup := e.Group("/api/game")
	gameGroup.POST("/new", gameHandler.NewGame)
	gameGroup.POST("/move", gameHandler.MakeMove)
	gameGroup.POST("/gift-promo", gameHandler.ClaimGiftPromo)
	gameGroup.GET("/:id", gameHandler.GetGame)

	auth := NewAuth(logger, &conf.Admin, admin)
	adminHandler := NewAdminHandler(logger, admin)

	// login and change-password draw from one budget per client
	credentialsLimiter := loginRateLimiter(conf.Admin.LoginPerMinute)

	adminGroup := e.Group("/api/admin", auth.RequireRouteSecret)
	adminGroup.POST("/login", auth.Login, credentialsLimiter)
	adminGroup.POST("/logout", auth.Logout)

	protected := adminGroup.Group("", auth.RequireAdmin)
	protected.GET("/me", auth.Me)
	protected.POST("/change-password", auth.ChangePassword, credentialsLimiter)
	protected.GET("/settings", adminHandler.GetSettings)
	protected.PUT("/settings", adminHandler.UpdateSettings)
	protected.GET("/promos", adminHandler.ListPromos)

	return server
}

// Start blocks until the server stops. A graceful Shutdown is not reported as an error.
func (that *Server) Start(port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	if err := that.echo.StartServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	that.echo.ServeHTTP(w, r)
}

func (that *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			that.logger.LogAttrs(context.Background(), level, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			)

			return nil
		},
	})
}

// bind decodes the JSON body into req and runs its validate tags.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return fmt.Errorf("%w: malformed request body", apperror.ErrValidation)
	}

	return ctx.Validate(req)
}
