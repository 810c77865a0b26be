package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hanifzan/auth_acl_app/internal/middleware"
	"github.com/Hanifzan/auth_acl_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newACLTestRouter(allowed ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/gated",
		middleware.AuthMiddleware(testAccessSecret),
		middleware.RequireRoles(allowed...),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	return r
}

func tokenWithRoles(t *testing.T, roles []string) string {
	t.Helper()
	token, err := utils.GenerateToken("user-123", roles, testAccessSecret, time.Minute, testIssuer)
	require.NoError(t, err)
	return token
}

func TestRequireRoles_AdmissionMatrix(t *testing.T) {
	tests := []struct {
		name       string
		roles      []string
		allowed    []string
		wantStatus int
	}{
		{"user denied on admin-only route", []string{"user"}, []string{"admin"}, http.StatusForbidden},
		{"admin admitted on admin-only route", []string{"admin"}, []string{"admin"}, http.StatusOK},
		{"admin+user admitted on admin,user route", []string{"admin", "user"}, []string{"admin", "user"}, http.StatusOK},
		{"user admitted on admin,user route", []string{"user"}, []string{"admin", "user"}, http.StatusOK},
		{"disjoint role sets denied", []string{"auditor"}, []string{"admin", "user"}, http.StatusForbidden},
		{"empty role set denied", []string{}, []string{"admin"}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newACLTestRouter(tt.allowed...)
			w := doRequest(r, http.MethodGet, "/gated", "Bearer "+tokenWithRoles(t, tt.roles))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequireRoles_WithoutAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// Misconfigured chain: no principal was attached upstream.
	r.GET("/gated", middleware.RequireRoles("admin"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/gated", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
