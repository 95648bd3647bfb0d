package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	token, err := m.GenerateAccessToken("user-1", "anna@example.com", "ADMIN")
	require.NoError(t, err)

	claims, err := m.ParseAndValidate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "anna@example.com", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestParseAndValidateRejects(t *testing.T) {
	m := NewJWTManager("test-secret", time.Minute)

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Minute)
		token, err := other.GenerateAccessToken("user-1", "anna@example.com", "RESIDENT")
		require.NoError(t, err)

		_, err = m.ParseAndValidate(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		token, err := expired.GenerateAccessToken("user-1", "anna@example.com", "RESIDENT")
		require.NoError(t, err)

		_, err = m.ParseAndValidate(token)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.ParseAndValidate("not.a.token")
		assert.Error(t, err)
	})
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewJWTManager("test-secret", time.Minute)

	newRouter := func() *gin.Engine {
		r := gin.New()
		r.GET("/whoami", AuthRequired(m), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"id":   GetUserID(c),
				"role": GetUserRole(c),
			})
		})
		return r
	}

	t.Run("claims land in the context", func(t *testing.T) {
		token, err := m.GenerateAccessToken("user-1", "anna@example.com", "RESIDENT")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		newRouter().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"user-1"`)
		assert.Contains(t, w.Body.String(), `"role":"RESIDENT"`)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Token abc")
		newRouter().ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestBcryptCostClamp(t *testing.T) {
	assert.Equal(t, minBcryptCost, NewBcryptPasswordHasher(1).cost)
	assert.Equal(t, 12, NewBcryptPasswordHasher(12).cost)
	assert.NotZero(t, NewBcryptPasswordHasher(0).cost)
	assert.LessOrEqual(t, NewBcryptPasswordHasher(99).cost, 31)
}
