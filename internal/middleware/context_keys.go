package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the
// request context. Using a custom type prevents collisions.
const userIDKey = contextKey("userID")

// userRolesKey is the key used to store the authenticated user's role set.
const userRolesKey = contextKey("userRoles")

// GetUserIDFromContext retrieves the authenticated user ID from the request
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetUserRolesFromContext retrieves the authenticated user's roles from the
// request context.
func GetUserRolesFromContext(c *gin.Context) ([]string, bool) {
	roles, ok := c.Request.Context().Value(userRolesKey).([]string)
	if !ok {
		return nil, false
	}
	return roles, true
}
