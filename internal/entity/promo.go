package entity

import (
	"time"
)

type RewardReason string

const (
	ReasonGameWin RewardReason = "game_win"
	ReasonGiftWin RewardReason = "gift_win"
)

func (that RewardReason) IsValid() bool {
	return that == ReasonGameWin || that == ReasonGiftWin
}

type PromoStatus string

const (
	PromoActive   PromoStatus = "ACTIVE"
	PromoExpired  PromoStatus = "EXPIRED"
	PromoRedeemed PromoStatus = "REDEEMED"
)

type PromoCode struct {
	Code       string       `json:"code"`
	SessionID  string       `json:"session_id"`
	Reason     RewardReason `json:"reason"`
	CreatedAt  time.Time    `json:"created_at"`
	ExpiresAt  time.Time    `json:"expires_at"`
	RedeemedAt *time.Time   `json:"redeemed_at,omitempty"`
}

// StatusAt derives the status at the given instant. Expiry is never stored.
func (that *PromoCode) StatusAt(now time.Time) PromoStatus {
	switch {
	case that.RedeemedAt != nil:
		return PromoRedeemed
	case now.Before(that.ExpiresAt):
		return PromoActive
	default:
		return PromoExpired
	}
}
