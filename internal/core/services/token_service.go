package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/Hanifzan/auth_acl_app/internal/core/ports/repositories"
	portssvc "github.com/Hanifzan/auth_acl_app/internal/core/ports/services"

	"github.com/Hanifzan/auth_acl_app/internal/apperrors"
	"github.com/Hanifzan/auth_acl_app/internal/core/domain"
	"github.com/Hanifzan/auth_acl_app/internal/platform/config"
	"github.com/Hanifzan/auth_acl_app/internal/utils"
	"github.com/google/uuid"
)

// tokenService implements TokenSvcFacade: JWT issuance plus the renewal
// ledger. Access and refresh tokens share a claim shape but are signed with
// distinct secrets from the process-wide config.
type tokenService struct {
	cfg              *config.Config
	refreshTokenRepo portsrepo.RefreshTokenRepository
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, refreshTokenRepo portsrepo.RefreshTokenRepository) portssvc.TokenSvcFacade {
	return &tokenService{
		cfg:              cfg,
		refreshTokenRepo: refreshTokenRepo,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.AccessTokenExpiryDuration)

	accessToken, err := utils.GenerateToken(user.UserID, user.Roles, s.cfg.AccessTokenSecret, s.cfg.AccessTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

// GenerateRefreshToken creates a new JWT refresh token for the given user,
// signed with the refresh secret.
func (s *tokenService) GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)

	refreshToken, err := utils.GenerateToken(user.UserID, user.Roles, s.cfg.RefreshTokenSecret, s.cfg.RefreshTokenExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return refreshToken, expiryTime, nil
}

// PersistRefreshToken records a digest of the signed refresh token in the ledger.
func (s *tokenService) PersistRefreshToken(ctx context.Context, userID string, refreshToken string, expiresAt time.Time) error {
	now := time.Now()
	entry := domain.RefreshToken{
		RefreshTokenID: uuid.NewString(),
		UserID:         userID,
		TokenHash:      utils.HashRefreshToken(refreshToken),
		Expired:        false,
		ExpiresAt:      expiresAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.refreshTokenRepo.SaveRefreshToken(ctx, entry); err != nil {
		return fmt.Errorf("failed to persist refresh token: %w", err)
	}
	return nil
}

// CheckRefreshTokenRevoked rejects tokens whose ledger entry is flagged
// expired. A token with no ledger entry is honored: the login-time write is
// best-effort, so only a known revocation can invalidate a token here.
func (s *tokenService) CheckRefreshTokenRevoked(ctx context.Context, refreshToken string) error {
	entry, err := s.refreshTokenRepo.FindRefreshTokenByHash(ctx, utils.HashRefreshToken(refreshToken))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to look up refresh token in ledger: %w", err)
	}
	if entry.Expired {
		return apperrors.ErrRefreshTokenRevoked
	}
	return nil
}

// RevokeRefreshToken marks the ledger entry for the token expired.
func (s *tokenService) RevokeRefreshToken(ctx context.Context, refreshToken string) error {
	if err := s.refreshTokenRepo.MarkRefreshTokenExpired(ctx, utils.HashRefreshToken(refreshToken)); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
