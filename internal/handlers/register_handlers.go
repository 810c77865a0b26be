package handlers

import (
	portssvc "github.com/Hanifzan/auth_acl_app/internal/core/ports/services"

	"github.com/Hanifzan/auth_acl_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// service interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	authService portssvc.AuthSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) {
	// Root health check
	r.GET("/", GetHome)
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, authService, tokenService)
}
