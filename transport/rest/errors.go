package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-promo/internal/apperror"
)

const (
	codeInvalidSession     = "INVALID_SESSION"
	codeIllegalMove        = "ILLEGAL_MOVE"
	codeGameAlreadyOver    = "GAME_ALREADY_OVER"
	codeAlreadyIssued      = "ALREADY_ISSUED"
	codeDailyLimitExceeded = "DAILY_LIMIT_EXCEEDED"
	codeNotEligible        = "NOT_ELIGIBLE"
	codeValidation         = "VALIDATION_ERROR"
	codeSessionConflict    = "SESSION_CONFLICT"
	codeUnauthorized       = "UNAUTHORIZED"
	codeNotFound           = "NOT_FOUND"
	codeRateLimited        = "RATE_LIMITED"
	codeInternal           = "INTERNAL_ERROR"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
}

// Order matters only where errors wrap each other; the first match wins.
var errorMappings = []errorMapping{
	{apperror.ErrInvalidSession, http.StatusNotFound, codeInvalidSession, "game session not found"},
	{apperror.ErrIllegalMove, http.StatusBadRequest, codeIllegalMove, "illegal move"},
	{apperror.ErrGameAlreadyOver, http.StatusConflict, codeGameAlreadyOver, "game is already over"},
	{apperror.ErrAlreadyIssued, http.StatusConflict, codeAlreadyIssued, "promo code already issued for this session"},
	{apperror.ErrDailyLimitExceeded, http.StatusTooManyRequests, codeDailyLimitExceeded, "daily promo limit reached, try again tomorrow"},
	{apperror.ErrNotEligible, http.StatusUnprocessableEntity, codeNotEligible, "session is not eligible for a promo code"},
	{apperror.ErrSessionConflict, http.StatusConflict, codeSessionConflict, "game was updated concurrently, reload and retry"},
	{apperror.ErrInvalidCredentials, http.StatusUnauthorized, codeUnauthorized, "invalid username or password"},
	{apperror.ErrUnauthorized, http.StatusUnauthorized, codeUnauthorized, "authentication required"},
	{apperror.ErrNotFound, http.StatusNotFound, codeNotFound, "not found"},
}

// describeError maps an application error to its HTTP status and public code.
// Validation errors keep their detail; anything unknown is an internal error.
func describeError(err error) (int, errorResponse) {
	for _, mapping := range errorMappings {
		if errors.Is(err, mapping.target) {
			return mapping.status, errorResponse{Error: mapping.code, Message: mapping.message}
		}
	}

	if errors.Is(err, apperror.ErrValidation) {
		return http.StatusBadRequest, errorResponse{Error: codeValidation, Message: err.Error()}
	}

	return http.StatusInternalServerError, errorResponse{Error: codeInternal, Message: "internal server error"}
}

func describeHTTPError(he *echo.HTTPError) (int, errorResponse) {
	message := fmt.Sprint(he.Message)

	switch he.Code {
	case http.StatusBadRequest:
		return he.Code, errorResponse{Error: codeValidation, Message: message}
	case http.StatusUnauthorized:
		return he.Code, errorResponse{Error: codeUnauthorized, Message: message}
	case http.StatusNotFound:
		return he.Code, errorResponse{Error: codeNotFound, Message: message}
	case http.StatusTooManyRequests:
		return he.Code, errorResponse{Error: codeRateLimited, Message: message}
	}

	if he.Code >= http.StatusInternalServerError {
		return he.Code, errorResponse{Error: codeInternal, Message: "internal server error"}
	}

	return he.Code, errorResponse{Error: http.StatusText(he.Code), Message: message}
}

func (that *Server) handleError(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var (
		status int
		body   errorResponse
		he     *echo.HTTPError
	)

	if errors.As(err, &he) {
		status, body = describeHTTPError(he)
	} else {
		status, body = describeError(err)
	}

	if status >= http.StatusInternalServerError {
		that.logger.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
	}

	if ctx.Request().Method == http.MethodHead {
		err = ctx.NoContent(status)
	} else {
		err = ctx.JSON(status, body)
	}

	if err != nil {
		that.logger.Error("could not write error response", "error", err)
	}
}
