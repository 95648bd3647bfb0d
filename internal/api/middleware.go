package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/montelzek/mydorm-backend/internal/auth"
	"github.com/montelzek/mydorm-backend/internal/user"
)

// RequireAdmin ensures the authenticated user holds the administrator role.
// The role comes from the token claims, so no lookup runs per request; a
// revoked admin keeps access only until the short-lived token expires.
// It MUST be used after auth.AuthRequired middleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.GetUserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if auth.GetUserRole(c) != string(user.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: admin access required"})
			return
		}

		c.Next()
	}
}
