package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/Hanifzan/auth_acl_app/internal/core/ports/services"

	"github.com/Hanifzan/auth_acl_app/internal/apperrors"
	"github.com/Hanifzan/auth_acl_app/internal/core/domain"
	"github.com/Hanifzan/auth_acl_app/internal/dto"
	"github.com/Hanifzan/auth_acl_app/internal/utils"
	"github.com/google/uuid"
)

// authService orchestrates registration, login, profile updates, and
// access-token renewal on top of the user and token services.
type authService struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
	logger       *slog.Logger
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userService portssvc.UserSvcFacade, tokenService portssvc.TokenSvcFacade, logger *slog.Logger) portssvc.AuthSvcFacade {
	if logger == nil {
		logger = slog.Default()
	}
	return &authService{
		userService:  userService,
		tokenService: tokenService,
		logger:       logger,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Register creates a new user. The request arrives already shape-validated
// by the handler; uniqueness is re-checked here and ultimately enforced by
// the repository's unique constraints.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	if existing, err := s.userService.GetUserByEmail(ctx, req.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("email %q: %w", req.Email, apperrors.ErrDuplicate)
	} else if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	roles := req.Roles
	if len(roles) == 0 {
		roles = []string{domain.DefaultRole}
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		FullName:     req.FullName,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Roles:        roles,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userService.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login verifies the password and mints an access/refresh token pair.
// The caller-visible failure is uniform for unknown email and password
// mismatch so the response does not disclose which check failed.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userService.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}

	accessToken, _, err := s.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiry, err := s.tokenService.GenerateRefreshToken(ctx, user)
	if err != nil {
		return nil, err
	}

	// Ledger persistence is best-effort: the tokens are already signed and
	// the login must not fail because the audit trail is unavailable.
	if err := s.tokenService.PersistRefreshToken(ctx, user.UserID, refreshToken, refreshExpiry); err != nil {
		s.logger.ErrorContext(ctx, "Failed to persist refresh token",
			slog.String("user_id", user.UserID),
			slog.String("error", err.Error()))
	}

	return &dto.LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// GetMe returns the user for an authenticated subject ID.
func (s *authService) GetMe(ctx context.Context, userID string) (*domain.User, error) {
	return s.userService.GetUserByID(ctx, userID)
}

// UpdateProfile updates fullName, password, and optionally the profile
// picture. The password is re-hashed unconditionally on every call.
func (s *authService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.FullName = req.FullName
	user.PasswordHash = passwordHash
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}
	user.LastUpdatedAt = time.Now()

	if err := s.userService.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

// RefreshIssuedToken mints a fresh access token for the subject of a verified
// refresh token. No new refresh token and no new ledger entry.
func (s *authService) RefreshIssuedToken(ctx context.Context, userID string) (*dto.RefreshTokenResponse, error) {
	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	accessToken, _, err := s.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshTokenResponse{Token: accessToken}, nil
}

// Logout revokes the presented refresh token in the ledger.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenService.RevokeRefreshToken(ctx, refreshToken)
}
