package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-promo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-promo/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-promo/internal/usecase"
)

const giftPromoMessage = "Gift collection complete! Your promo code: "

type GameHandler interface {
	NewGame(ctx echo.Context) error
	MakeMove(ctx echo.Context) error
	GetGame(ctx echo.Context) error
	ClaimGiftPromo(ctx echo.Context) error
}

type gameUseCase interface {
	NewGame(ctx context.Context, difficulty string) (*entity.Session, error)
	GetGame(ctx context.Context, sessionID string) (*usecase.GameState, error)
	MakeMove(ctx context.Context, sessionID string, cell int) (*usecase.MoveOutcome, error)
	ClaimGiftPromo(ctx context.Context, sessionID string) (*entity.PromoCode, error)
}

type newGameRequest struct {
	Difficulty string `json:"difficulty" validate:"max=16"`
}

type moveRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Cell      *int   `json:"cell" validate:"required"`
}

type giftPromoRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type gameResponse struct {
	SessionID      string               `json:"session_id"`
	Board          tictactoe.Board      `json:"board"`
	Status         entity.SessionStatus `json:"status"`
	Difficulty     entity.Difficulty    `json:"difficulty"`
	Winner         *tictactoe.Mark      `json:"winner"`
	LastPlayerMove *int                 `json:"last_player_move"`
	LastBotMove    *int                 `json:"last_bot_move"`
	PromoCode      string               `json:"promo_code,omitempty"`
	PromoExpiresAt *time.Time           `json:"promo_expires_at,omitempty"`
	PromoError     string               `json:"promo_error,omitempty"`
}

type giftPromoResponse struct {
	PromoCode      string    `json:"promo_code"`
	PromoExpiresAt time.Time `json:"promo_expires_at"`
	Message        string    `json:"message"`
}

type gameHandler struct {
	logger *slog.Logger

	game gameUseCase
}

func NewGameHandler(logger *slog.Logger, game gameUseCase) GameHandler {
	return &gameHandler{
		logger: logger.With("component", "game_handler"),
		game:   game,
	}
}

func newGameResponse(session *entity.Session) *gameResponse {
	response := &gameResponse{
		SessionID:  session.ID,
		Board:      session.Board,
		Status:     session.Status,
		Difficulty: session.Difficulty,
	}

	if outcome := tictactoe.Evaluate(session.Board); outcome.HasWinner() {
		winner := outcome.Winner
		response.Winner = &winner
	}

	return response
}

func (that *gameResponse) withPromo(promo *entity.PromoCode) *gameResponse {
	if promo != nil {
		that.PromoCode = promo.Code
		expiresAt := promo.ExpiresAt
		that.PromoExpiresAt = &expiresAt
	}

	return that
}

func (that *gameHandler) NewGame(ctx echo.Context) error {
	var req newGameRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	session, err := that.game.NewGame(ctx.Request().Context(), req.Difficulty)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newGameResponse(session))
}

func (that *gameHandler) MakeMove(ctx echo.Context) error {
	var req moveRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	outcome, err := that.game.MakeMove(ctx.Request().Context(), req.SessionID, *req.Cell)
	if err != nil {
		return err
	}

	response := newGameResponse(outcome.Session).withPromo(outcome.Promo)
	playerMove := outcome.PlayerMove
	response.LastPlayerMove = &playerMove
	response.LastBotMove = outcome.BotMove

	if outcome.PromoErr != nil {
		_, body := describeError(outcome.PromoErr)
		response.PromoError = body.Error
	}

	return ctx.JSON(http.StatusOK, response)
}

func (that *gameHandler) GetGame(ctx echo.Context) error {
	state, err := that.game.GetGame(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, newGameResponse(state.Session).withPromo(state.Promo))
}

func (that *gameHandler) ClaimGiftPromo(ctx echo.Context) error {
	var req giftPromoRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	promo, err := that.game.ClaimGiftPromo(ctx.Request().Context(), req.SessionID)
	if err != nil {
		that.logger.Info("gift promo refused", "session_id", req.SessionID, "error", err)
		return err
	}

	return ctx.JSON(http.StatusOK, &giftPromoResponse{
		PromoCode:      promo.Code,
		PromoExpiresAt: promo.ExpiresAt,
		Message:        giftPromoMessage + promo.Code,
	})
}
