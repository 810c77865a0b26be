package middleware

import (
	"net/http"

	"github.com/Hanifzan/auth_acl_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// RequireRoles creates a Gin middleware handler that admits the request iff
// the principal attached by AuthMiddleware holds at least one of the allowed
// roles. It must run after AuthMiddleware on the route chain.
func RequireRoles(allowed ...string) gin.HandlerFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		roles, ok := GetUserRolesFromContext(c)
		if !ok {
			logger.Error("Principal roles missing from context; is AuthMiddleware applied before RequireRoles?")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": invalidTokenMessage})
			return
		}

		for _, role := range roles {
			if _, ok := allowedSet[role]; ok {
				c.Next()
				return
			}
		}

		logger.Warn("Role admission denied")
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrForbidden.Error()})
	}
}
