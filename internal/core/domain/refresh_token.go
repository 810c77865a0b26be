package domain

import "time"

// RefreshToken is a ledger record of an issued refresh token. The record
// carries only a digest of the signed token; the token itself is write-only
// and is never serialized back to callers.
type RefreshToken struct {
	RefreshTokenID string    `json:"refreshTokenID"`
	UserID         string    `json:"userID"`
	TokenHash      string    `json:"-"`
	Expired        bool      `json:"expired"`
	ExpiresAt      time.Time `json:"expiresAt"`
	AuditFields
}
