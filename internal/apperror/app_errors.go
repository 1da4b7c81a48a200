package apperror

import "errors"

var (
	ErrInvalidSession     = errors.New("session not found")
	ErrIllegalMove        = errors.New("illegal move")
	ErrGameAlreadyOver    = errors.New("game is already over")
	ErrSessionConflict    = errors.New("session was modified concurrently")
	ErrNoLegalMove        = errors.New("no legal move available")
	ErrAlreadyIssued      = errors.New("promo code already issued for this session")
	ErrDailyLimitExceeded = errors.New("daily promo limit exceeded")
	ErrNotEligible        = errors.New("session is not eligible for a reward")
	ErrCodeSpaceExhausted = errors.New("could not generate a unique promo code")
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)
