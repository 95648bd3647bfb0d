package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func warsaw(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	return loc
}

func TestNormalizerParse(t *testing.T) {
	loc := warsaw(t)
	n := NewNormalizer(loc)

	t.Run("zone-less input is read as dormitory wall-clock", func(t *testing.T) {
		got, err := n.Parse("2026-07-10T09:00:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 7, 10, 9, 0, 0, 0, loc), got)
	})

	t.Run("zone-less input without seconds", func(t *testing.T) {
		got, err := n.Parse("2026-07-10T09:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 7, 10, 9, 0, 0, 0, loc), got)
	})

	t.Run("offset input converts to the same instant", func(t *testing.T) {
		// 07:00 UTC is 09:00 in Warsaw during DST.
		got, err := n.Parse("2026-07-10T07:00:00Z")
		require.NoError(t, err)
		assert.True(t, got.Equal(time.Date(2026, 7, 10, 9, 0, 0, 0, loc)))
		assert.Equal(t, 9, got.Hour())
	})

	t.Run("equivalent zoned and zone-less inputs agree", func(t *testing.T) {
		zoned, err := n.Parse("2026-07-10T09:00:00+02:00")
		require.NoError(t, err)
		bare, err := n.Parse("2026-07-10T09:00:00")
		require.NoError(t, err)
		assert.True(t, zoned.Equal(bare))
	})

	t.Run("garbage input", func(t *testing.T) {
		for _, raw := range []string{"", "not-a-date", "2026-07-10", "10:00:00", "2026/07/10T09:00"} {
			_, err := n.Parse(raw)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat, "input %q", raw)
		}
	})
}

func TestNormalizerParseDate(t *testing.T) {
	loc := warsaw(t)
	n := NewNormalizer(loc)

	got, err := n.ParseDate("2026-07-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 7, 10, 0, 0, 0, 0, loc), got)

	_, err = n.ParseDate("10-07-2026")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = n.ParseDate("2026-07-10T00:00:00")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
