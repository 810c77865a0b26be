package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Hanifzan/auth_acl_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// invalidTokenMessage is the uniform caller-visible body for every token
// verification failure. The failure kind is only distinguished in logs.
const invalidTokenMessage = "Invalid or expired token"

// extractBearerToken pulls the token out of the Authorization header.
func extractBearerToken(c *gin.Context) (string, string) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", "Authorization header missing"
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", "Authorization header format invalid"
	}
	return parts[1], ""
}

// attachPrincipal stores the verified subject and role set in the request
// context and enriches the request logger with the user ID.
func attachPrincipal(c *gin.Context, claims *utils.AuthClaims) {
	logger := GetLoggerFromCtx(c.Request.Context())

	ctx := context.WithValue(c.Request.Context(), userIDKey, claims.Subject)
	ctx = context.WithValue(ctx, userRolesKey, claims.Roles)

	enrichedLogger := logger.With(slog.String("user_id", claims.Subject))
	ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)

	c.Request = c.Request.WithContext(ctx)
}

// AuthMiddleware creates a Gin middleware handler that validates access
// tokens. On success the principal (user ID + roles) is attached to the
// request context for downstream handlers.
func AuthMiddleware(accessTokenSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, failure := extractBearerToken(c)
		if failure != "" {
			logger.Warn(failure)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": invalidTokenMessage})
			return
		}

		claims, err := utils.ParseAndValidateToken(tokenString, accessTokenSecret)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				logger.Warn("Access token expired")
			case errors.Is(err, jwt.ErrTokenSignatureInvalid):
				logger.Warn("Access token signature invalid")
			default:
				logger.Warn("Access token invalid", slog.String("error", err.Error()))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": invalidTokenMessage})
			return
		}

		if claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": invalidTokenMessage})
			return
		}

		attachPrincipal(c, claims)
		c.Next()
	}
}
