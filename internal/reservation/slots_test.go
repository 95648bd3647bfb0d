package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaundrySlots(t *testing.T) {
	slots := LaundrySlots()
	require.Len(t, slots, 5)

	assert.Equal(t, TimeWindow{Start: TimeOfDay{Hour: 8}, End: TimeOfDay{Hour: 11}}, slots[0])
	assert.Equal(t, TimeWindow{Start: TimeOfDay{Hour: 20}, End: TimeOfDay{Hour: 23}}, slots[4])

	// Contiguous 3-hour coverage of 08:00-23:00.
	for i, slot := range slots {
		assert.Equal(t, 3*3600, slot.End.seconds()-slot.Start.seconds())
		if i > 0 {
			assert.Equal(t, slots[i-1].End, slot.Start)
		}
	}
}

func TestStandardSlots(t *testing.T) {
	slots := StandardSlots()
	require.Len(t, slots, 16)

	assert.Equal(t, TimeWindow{Start: TimeOfDay{Hour: 8}, End: TimeOfDay{Hour: 9}}, slots[0])
	assert.Equal(t, TimeWindow{Start: TimeOfDay{Hour: 22}, End: TimeOfDay{Hour: 23}}, slots[14])

	// Trailing window closes out the last partial hour.
	assert.Equal(t, TimeWindow{
		Start: TimeOfDay{Hour: 23},
		End:   TimeOfDay{Hour: 23, Minute: 59, Second: 59},
	}, slots[15])
}

func TestAvailableLaundrySlots(t *testing.T) {
	t.Run("exact booking removes exactly one slot", func(t *testing.T) {
		booked := []TimeWindow{{Start: TimeOfDay{Hour: 11}, End: TimeOfDay{Hour: 14}}}
		free := AvailableLaundrySlots(booked)
		require.Len(t, free, 4)
		for _, slot := range free {
			assert.False(t, slot.Equal(booked[0]))
		}
	})

	t.Run("non-aligned booking removes nothing", func(t *testing.T) {
		// Removal is by exact bounds; a window that merely overlaps a slot
		// leaves the catalog untouched.
		booked := []TimeWindow{{Start: TimeOfDay{Hour: 12}, End: TimeOfDay{Hour: 13}}}
		assert.Len(t, AvailableLaundrySlots(booked), 5)
	})

	t.Run("all booked yields empty", func(t *testing.T) {
		assert.Empty(t, AvailableLaundrySlots(LaundrySlots()))
	})
}

func TestAvailableStandardSlots(t *testing.T) {
	t.Run("multi-hour booking removes every overlapped slot", func(t *testing.T) {
		booked := []TimeWindow{{Start: TimeOfDay{Hour: 10}, End: TimeOfDay{Hour: 13}}}
		free := AvailableStandardSlots(booked)
		require.Len(t, free, 13)
		for _, slot := range free {
			assert.False(t, slot.Overlaps(booked[0]))
		}
	})

	t.Run("touching windows do not conflict", func(t *testing.T) {
		// Overlap is strict: a booking ending at 10:00 leaves the
		// 10:00-11:00 slot free.
		booked := []TimeWindow{{Start: TimeOfDay{Hour: 9}, End: TimeOfDay{Hour: 10}}}
		free := AvailableStandardSlots(booked)
		require.Len(t, free, 15)
		assert.Contains(t, free, TimeWindow{Start: TimeOfDay{Hour: 10}, End: TimeOfDay{Hour: 11}})
		assert.Contains(t, free, TimeWindow{Start: TimeOfDay{Hour: 8}, End: TimeOfDay{Hour: 9}})
	})

	t.Run("booking over the tail removes it", func(t *testing.T) {
		booked := []TimeWindow{{Start: TimeOfDay{Hour: 23, Minute: 30}, End: TimeOfDay{Hour: 23, Minute: 45}}}
		free := AvailableStandardSlots(booked)
		require.Len(t, free, 15)
		assert.NotContains(t, free, TimeWindow{
			Start: TimeOfDay{Hour: 23},
			End:   TimeOfDay{Hour: 23, Minute: 59, Second: 59},
		})
	})
}

func TestTimeWindowOverlaps(t *testing.T) {
	a := TimeWindow{Start: TimeOfDay{Hour: 9}, End: TimeOfDay{Hour: 11}}

	assert.True(t, a.Overlaps(TimeWindow{Start: TimeOfDay{Hour: 10}, End: TimeOfDay{Hour: 12}}))
	assert.True(t, a.Overlaps(TimeWindow{Start: TimeOfDay{Hour: 9, Minute: 30}, End: TimeOfDay{Hour: 10}}))
	assert.False(t, a.Overlaps(TimeWindow{Start: TimeOfDay{Hour: 11}, End: TimeOfDay{Hour: 12}}))
	assert.False(t, a.Overlaps(TimeWindow{Start: TimeOfDay{Hour: 7}, End: TimeOfDay{Hour: 9}}))
}
