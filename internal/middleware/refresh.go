package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	portssvc "github.com/Hanifzan/auth_acl_app/internal/core/ports/services"

	"github.com/Hanifzan/auth_acl_app/internal/apperrors"
	"github.com/Hanifzan/auth_acl_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// refreshTokenKey stores the raw refresh token for handlers that need to act
// on the credential itself (logout revocation).
const refreshTokenKey = contextKey("refreshToken")

// GetRefreshTokenFromContext retrieves the verified refresh token string from
// the request context.
func GetRefreshTokenFromContext(c *gin.Context) (string, bool) {
	token, ok := c.Request.Context().Value(refreshTokenKey).(string)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// RefreshTokenMiddleware creates a Gin middleware handler that validates
// refresh tokens against the refresh secret and the revocation ledger, then
// attaches the principal exactly as AuthMiddleware does. Tokens the ledger
// knows to be revoked are rejected; tokens absent from the ledger are honored
// because the login-time ledger write is best-effort.
func RefreshTokenMiddleware(refreshTokenSecret string, tokenService portssvc.TokenSvcFacade) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, failure := extractBearerToken(c)
		if failure != "" {
			logger.Warn(failure)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": invalidTokenMessage})
			return
		}

		claims, err := utils.ParseAndValidateToken(tokenString, refreshTokenSecret)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				logger.Warn("Refresh token expired")
			case errors.Is(err, jwt.ErrTokenSignatureInvalid):
				logger.Warn("Refresh token signature invalid")
			default:
				logger.Warn("Refresh token invalid", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": invalidTokenMessage})
			return
		}

		if claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid refresh token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": invalidTokenMessage})
			return
		}

		if err := tokenService.CheckRefreshTokenRevoked(c.Request.Context(), tokenString); err != nil {
			if errors.Is(err, apperrors.ErrRefreshTokenRevoked) {
				logger.Warn("Refresh token revoked", slog.String("user_id", claims.Subject))
			} else {
				logger.Error("Failed to check refresh token revocation", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": invalidTokenMessage})
			return
		}

		attachPrincipal(c, claims)
		ctx := context.WithValue(c.Request.Context(), refreshTokenKey, tokenString)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
