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

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
	testIssuer        = "auth-acl-app-test"
)

// newAuthTestRouter builds a router with the access-check middleware and a
// probe handler that echoes the principal from the request context.
func newAuthTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(testAccessSecret), func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		roles, _ := middleware.GetUserRolesFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID, "roles": roles})
	})
	return r
}

func doRequest(r *gin.Engine, method, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidTokenAttachesPrincipal(t *testing.T) {
	r := newAuthTestRouter()
	token, err := utils.GenerateToken("user-123", []string{"admin", "user"}, testAccessSecret, time.Minute, testIssuer)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/protected", "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-123")
	assert.Contains(t, w.Body.String(), "admin")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := newAuthTestRouter()

	w := doRequest(r, http.MethodGet, "/protected", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := newAuthTestRouter()

	for _, header := range []string{"Bearer", "Basic abc", "garbage"} {
		w := doRequest(r, http.MethodGet, "/protected", header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := newAuthTestRouter()
	token, err := utils.GenerateToken("user-123", []string{"user"}, testAccessSecret, -time.Minute, testIssuer)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/protected", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_RefreshTokenRejectedOnAccessPath(t *testing.T) {
	r := newAuthTestRouter()
	token, err := utils.GenerateToken("user-123", []string{"user"}, testRefreshSecret, time.Hour, testIssuer)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/protected", "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_UniformErrorBody(t *testing.T) {
	r := newAuthTestRouter()
	expired, err := utils.GenerateToken("user-123", []string{"user"}, testAccessSecret, -time.Minute, testIssuer)
	require.NoError(t, err)

	// The caller-visible body is identical regardless of failure kind.
	missing := doRequest(r, http.MethodGet, "/protected", "")
	malformed := doRequest(r, http.MethodGet, "/protected", "Bearer not-a-jwt")
	expiredResp := doRequest(r, http.MethodGet, "/protected", "Bearer "+expired)

	assert.Equal(t, missing.Body.String(), malformed.Body.String())
	assert.Equal(t, missing.Body.String(), expiredResp.Body.String())
}
