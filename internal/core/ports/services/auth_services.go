package services

import (
	"context"
	"time"

	"github.com/Hanifzan/auth_acl_app/internal/core/domain"
	"github.com/Hanifzan/auth_acl_app/internal/dto"
)

// TokenSvcFacade defines the interface for token issuance and the renewal
// ledger.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a short-lived JWT access token for the user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// GenerateRefreshToken creates a long-lived JWT refresh token for the
	// user, signed with the refresh secret.
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// PersistRefreshToken records a digest of the signed refresh token in the
	// ledger with expired=false.
	PersistRefreshToken(ctx context.Context, userID string, refreshToken string, expiresAt time.Time) error

	// CheckRefreshTokenRevoked returns apperrors.ErrRefreshTokenRevoked when
	// the ledger entry for the token is flagged expired. A token with no
	// ledger entry passes: the login-time write is best-effort, so absence is
	// not evidence of revocation.
	CheckRefreshTokenRevoked(ctx context.Context, refreshToken string) error

	// RevokeRefreshToken marks the ledger entry for the token expired.
	RevokeRefreshToken(ctx context.Context, refreshToken string) error
}

// AuthSvcFacade defines the authentication service: registration, login,
// profile maintenance, and access-token renewal.
type AuthSvcFacade interface {
	// Register creates a new user with a hashed password and the default
	// role set when none is given. No tokens are issued on register.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// Login verifies the password for the user registered under the email
	// and mints an access/refresh token pair. The refresh token is recorded
	// in the ledger best-effort; a ledger write failure is logged and does
	// not fail the login.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// GetMe returns the user for an authenticated subject ID.
	GetMe(ctx context.Context, userID string) (*domain.User, error)

	// UpdateProfile updates fullName, password, and optionally the profile
	// picture. The password is re-hashed on every call.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)

	// RefreshIssuedToken mints a fresh access token for the subject of a
	// verified refresh token. The refresh token itself is not rotated.
	RefreshIssuedToken(ctx context.Context, userID string) (*dto.RefreshTokenResponse, error)

	// Logout revokes the presented refresh token in the ledger.
	Logout(ctx context.Context, refreshToken string) error
}
