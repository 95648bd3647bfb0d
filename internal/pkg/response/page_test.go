package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageResponse(t *testing.T) {
	t.Run("computes total pages with a partial last page", func(t *testing.T) {
		resp := NewPageResponse([]string{"a", "b"}, 1, 10, 41)
		assert.Equal(t, 5, resp.TotalPages)
		assert.Equal(t, 41, resp.Total)
		assert.Equal(t, 1, resp.Page)
	})

	t.Run("exact division", func(t *testing.T) {
		resp := NewPageResponse([]string{"a"}, 4, 10, 40)
		assert.Equal(t, 4, resp.TotalPages)
	})

	t.Run("nil items become empty slice", func(t *testing.T) {
		resp := NewPageResponse[string](nil, 1, 10, 0)
		assert.NotNil(t, resp.Items)
		assert.Empty(t, resp.Items)
		assert.Equal(t, 0, resp.TotalPages)
	})
}
