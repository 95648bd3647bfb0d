package auth

import "github.com/gin-gonic/gin"

// Gin context keys populated by AuthRequired.
const (
	ctxUserID    = "authUserID"
	ctxUserEmail = "authUserEmail"
	ctxUserRole  = "authUserRole"
)

func getString(c *gin.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// GetUserID returns the authenticated user's ID or empty string.
func GetUserID(c *gin.Context) string {
	return getString(c, ctxUserID)
}

// GetUserEmail returns the authenticated user's email or empty string.
func GetUserEmail(c *gin.Context) string {
	return getString(c, ctxUserEmail)
}

// GetUserRole returns the authenticated user's role claim or empty string.
func GetUserRole(c *gin.Context) string {
	return getString(c, ctxUserRole)
}
