package models

import "time"

// RefreshToken represents a row in the refresh_tokens ledger.
// TokenHash is a SHA256 digest of the signed token, never the token itself.
type RefreshToken struct {
	RefreshTokenID string    `json:"refreshTokenID" db:"refresh_token_id"`
	UserID         string    `json:"userID" db:"user_id"`
	TokenHash      string    `json:"-" db:"token_hash"`
	Expired        bool      `json:"expired" db:"expired"`
	ExpiresAt      time.Time `json:"expiresAt" db:"expires_at"`
	AuditFields
}
