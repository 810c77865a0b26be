package repositories

import (
	"context"

	"github.com/Hanifzan/auth_acl_app/internal/core/domain"
)

// RefreshTokenRepository is the renewal-credential ledger. Rows are inserted
// at login, read during refresh validation, and flagged expired on logout;
// they are never physically deleted by this subsystem.
type RefreshTokenRepository interface {
	// SaveRefreshToken inserts a new ledger entry with expired=false.
	SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error

	// FindRefreshTokenByHash looks up a ledger entry by token digest.
	// Returns apperrors.ErrNotFound when no entry matches.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)

	// MarkRefreshTokenExpired flips the expired flag for the entry matching
	// the token digest.
	MarkRefreshTokenExpired(ctx context.Context, tokenHash string) error
}
