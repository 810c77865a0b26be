package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Hanifzan/auth_acl_app/internal/apperrors"
	"github.com/Hanifzan/auth_acl_app/internal/core/domain"
	"github.com/Hanifzan/auth_acl_app/internal/core/services"
	"github.com/Hanifzan/auth_acl_app/internal/platform/config"
	"github.com/Hanifzan/auth_acl_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock RefreshTokenRepository ---
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) SaveRefreshToken(ctx context.Context, token domain.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockRefreshTokenRepository) FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	var token *domain.RefreshToken
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.RefreshToken)
	}
	return token, args.Error(1)
}

func (m *MockRefreshTokenRepository) MarkRefreshTokenExpired(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

// --- Suite ---
type TokenServiceTestSuite struct {
	suite.Suite
	cfg      *config.Config
	mockRepo *MockRefreshTokenRepository
	ctx      context.Context
	user     *domain.User
}

func (s *TokenServiceTestSuite) SetupTest() {
	s.cfg = &config.Config{
		AccessTokenSecret:          "access-secret",
		AccessTokenExpiryDuration:  time.Minute,
		RefreshTokenSecret:         "refresh-secret",
		RefreshTokenExpiryDuration: 30 * 24 * time.Hour,
		JWTIssuer:                  "auth-acl-app-test",
	}
	s.mockRepo = new(MockRefreshTokenRepository)
	s.ctx = context.Background()
	s.user = &domain.User{
		UserID: "user-123",
		Roles:  []string{"admin", "user"},
	}
}

func TestTokenServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_VerifiableWithAccessSecretOnly() {
	svc := services.NewTokenService(s.cfg, s.mockRepo)

	token, expiry, err := svc.GenerateAccessToken(s.ctx, s.user)
	s.Require().NoError(err)
	s.NotEmpty(token)
	s.WithinDuration(time.Now().Add(time.Minute), expiry, 5*time.Second)

	claims, err := utils.ParseAndValidateToken(token, s.cfg.AccessTokenSecret)
	s.Require().NoError(err)
	s.Equal("user-123", claims.Subject)
	s.Equal([]string{"admin", "user"}, claims.Roles)

	_, err = utils.ParseAndValidateToken(token, s.cfg.RefreshTokenSecret)
	s.Error(err, "access token must not verify under the refresh secret")
}

func (s *TokenServiceTestSuite) TestGenerateRefreshToken_VerifiableWithRefreshSecretOnly() {
	svc := services.NewTokenService(s.cfg, s.mockRepo)

	token, expiry, err := svc.GenerateRefreshToken(s.ctx, s.user)
	s.Require().NoError(err)
	s.WithinDuration(time.Now().Add(30*24*time.Hour), expiry, 5*time.Second)

	claims, err := utils.ParseAndValidateToken(token, s.cfg.RefreshTokenSecret)
	s.Require().NoError(err)
	s.Equal("user-123", claims.Subject)

	_, err = utils.ParseAndValidateToken(token, s.cfg.AccessTokenSecret)
	s.Error(err, "refresh token must not verify under the access secret")
}

func (s *TokenServiceTestSuite) TestPersistRefreshToken_StoresDigestNotToken() {
	svc := services.NewTokenService(s.cfg, s.mockRepo)
	expiresAt := time.Now().Add(30 * 24 * time.Hour)

	var saved domain.RefreshToken
	s.mockRepo.On("SaveRefreshToken", s.ctx, mock.AnythingOfType("domain.RefreshToken")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.RefreshToken) }).
		Return(nil)

	err := svc.PersistRefreshToken(s.ctx, "user-123", "the-signed-token", expiresAt)

	s.Require().NoError(err)
	s.Equal("user-123", saved.UserID)
	s.False(saved.Expired)
	s.Equal(utils.HashRefreshToken("the-signed-token"), saved.TokenHash)
	s.NotEqual("the-signed-token", saved.TokenHash)
	s.NotEmpty(saved.RefreshTokenID)
}

func (s *TokenServiceTestSuite) TestCheckRefreshTokenRevoked_ActiveEntry() {
	svc := services.NewTokenService(s.cfg, s.mockRepo)
	hash := utils.HashRefreshToken("the-signed-token")
	s.mockRepo.On("FindRefreshTokenByHash", s.ctx, hash).Return(&domain.RefreshToken{TokenHash: hash, Expired: false}, nil)

	s.NoError(svc.CheckRefreshTokenRevoked(s.ctx, "the-signed-token"))
}

func (s *TokenServiceTestSuite) TestCheckRefreshTokenRevoked_RevokedEntry() {
	svc := services.NewTokenService(s.cfg, s.mockRepo)
	hash := utils.HashRefreshToken("the-signed-token")
	s.mockRepo.On("FindRefreshTokenByHash", s.ctx, hash).Return(&domain.RefreshToken{TokenHash: hash, Expired: true}, nil)

	err := svc.CheckRefreshTokenRevoked(s.ctx, "the-signed-token")
	s.ErrorIs(err, apperrors.ErrRefreshTokenRevoked)
}

func (s *TokenServiceTestSuite) TestCheckRefreshTokenRevoked_NoLedgerEntry() {
	svc := services.NewTokenService(s.cfg, s.mockRepo)
	hash := utils.HashRefreshToken("the-signed-token")
	s.mockRepo.On("FindRefreshTokenByHash", s.ctx, hash).Return(nil, apperrors.ErrNotFound)

	// The login-time ledger write is best-effort, so an absent entry passes.
	s.NoError(svc.CheckRefreshTokenRevoked(s.ctx, "the-signed-token"))
}

func (s *TokenServiceTestSuite) TestRevokeRefreshToken() {
	svc := services.NewTokenService(s.cfg, s.mockRepo)
	hash := utils.HashRefreshToken("the-signed-token")
	s.mockRepo.On("MarkRefreshTokenExpired", s.ctx, hash).Return(nil)

	s.NoError(svc.RevokeRefreshToken(s.ctx, "the-signed-token"))
	s.mockRepo.AssertExpectations(s.T())
}
