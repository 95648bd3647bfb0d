package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/montelzek/mydorm-backend/internal/auth"
)

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := auth.NewJWTManager("test-secret", time.Minute)

	r := gin.New()
	r.GET("/admin-only", auth.AuthRequired(m), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	request := func(role string) int {
		token, err := m.GenerateAccessToken("user-1", "anna@example.com", role)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, request("ADMIN"))
	assert.Equal(t, http.StatusForbidden, request("RESIDENT"))
	assert.Equal(t, http.StatusForbidden, request(""))

	t.Run("unauthenticated request never reaches the role check", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
