package mw

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

func TestCacheGET(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCachedRouter := func(hits *int) *gin.Engine {
		store := cache.New(time.Minute, time.Minute)
		r := gin.New()
		r.Use(CacheGET(store, time.Minute))
		r.GET("/slots", func(c *gin.Context) {
			*hits++
			c.JSON(http.StatusOK, gin.H{"hits": *hits})
		})
		r.GET("/missing", func(c *gin.Context) {
			*hits++
			c.JSON(http.StatusNotFound, gin.H{"error": "nope"})
		})
		r.POST("/slots", func(c *gin.Context) {
			*hits++
			c.Status(http.StatusCreated)
		})
		return r
	}

	get := func(r *gin.Engine, uri string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, uri, nil))
		return w
	}

	t.Run("second GET served from cache", func(t *testing.T) {
		var hits int
		r := newCachedRouter(&hits)

		first := get(r, "/slots?date=2026-07-11")
		second := get(r, "/slots?date=2026-07-11")

		assert.Equal(t, 1, hits)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, http.StatusOK, second.Code)
	})

	t.Run("different query is a different entry", func(t *testing.T) {
		var hits int
		r := newCachedRouter(&hits)

		get(r, "/slots?date=2026-07-11")
		get(r, "/slots?date=2026-07-12")
		assert.Equal(t, 2, hits)
	})

	t.Run("non-2xx responses are not cached", func(t *testing.T) {
		var hits int
		r := newCachedRouter(&hits)

		get(r, "/missing")
		get(r, "/missing")
		assert.Equal(t, 2, hits)
	})

	t.Run("non-GET requests pass through", func(t *testing.T) {
		var hits int
		r := newCachedRouter(&hits)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/slots", nil))
			assert.Equal(t, http.StatusCreated, w.Code)
		}
		assert.Equal(t, 2, hits)
	})
}
