package middleware

import "github.com/gin-gonic/gin"

// userIDKey is the key used to store the authenticated user's ID in the
// request context.
const userIDKey = contextKey("userID")

// isAdminKey carries the admin flag from the validated token. Services still
// re-check the stored flag before privileged operations.
const isAdminKey = contextKey("isAdmin")

// GetUserIDFromContext retrieves the authenticated user ID from the Gin
// context. It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userIDVal := c.Request.Context().Value(userIDKey)
	if userIDVal == nil {
		return "", false
	}
	userID, ok := userIDVal.(string)
	if !ok {
		return "", false
	}
	return userID, true
}

// GetIsAdminFromContext reports whether the validated token carried the
// admin claim.
func GetIsAdminFromContext(c *gin.Context) bool {
	isAdmin, ok := c.Request.Context().Value(isAdminKey).(bool)
	return ok && isAdmin
}
