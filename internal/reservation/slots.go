package reservation

// Booking hours shared by the catalog and the validator. Note the validator's
// end-of-day ceiling (23:00) is stricter than the catalog's trailing standard
// window (23:00-23:59:59); the tail window is kept for parity with the
// published schedule even though it cannot be booked through Create.
var (
	earliestStart = TimeOfDay{Hour: 8}
	latestEnd     = TimeOfDay{Hour: 23}
	lastSlotEnd   = TimeOfDay{Hour: 23, Minute: 59, Second: 59}
)

const maxReservationHours = 5

// laundrySlots is the fixed grid of five 3-hour windows every laundry
// resource shares, identical for every calendar date.
var laundrySlots = []TimeWindow{
	{Start: TimeOfDay{Hour: 8}, End: TimeOfDay{Hour: 11}},
	{Start: TimeOfDay{Hour: 11}, End: TimeOfDay{Hour: 14}},
	{Start: TimeOfDay{Hour: 14}, End: TimeOfDay{Hour: 17}},
	{Start: TimeOfDay{Hour: 17}, End: TimeOfDay{Hour: 20}},
	{Start: TimeOfDay{Hour: 20}, End: TimeOfDay{Hour: 23}},
}

// LaundrySlots returns the canonical laundry catalog.
func LaundrySlots() []TimeWindow {
	out := make([]TimeWindow, len(laundrySlots))
	copy(out, laundrySlots)
	return out
}

// StandardSlots returns the generated hourly catalog for standard resources:
// one-hour windows from 08:00 through 22:00 inclusive start, plus the
// 23:00-23:59:59 tail closing out the last partial hour of the day.
func StandardSlots() []TimeWindow {
	var out []TimeWindow
	for hour := earliestStart.Hour; hour <= latestEnd.Hour-1; hour++ {
		out = append(out, TimeWindow{
			Start: TimeOfDay{Hour: hour},
			End:   TimeOfDay{Hour: hour + 1},
		})
	}
	out = append(out, TimeWindow{Start: latestEnd, End: lastSlotEnd})
	return out
}

// AvailableLaundrySlots removes catalog windows whose bounds exactly equal a
// booked window. Exact-match removal (not overlap removal) is sufficient here
// because only catalog-aligned windows can ever be booked for laundry
// resources.
func AvailableLaundrySlots(booked []TimeWindow) []TimeWindow {
	out := LaundrySlots()
	for _, b := range booked {
		out = deleteWindows(out, func(slot TimeWindow) bool {
			return slot.Equal(b)
		})
	}
	return out
}

// AvailableStandardSlots removes catalog windows overlapping any booked
// window, using strict interval overlap.
func AvailableStandardSlots(booked []TimeWindow) []TimeWindow {
	out := StandardSlots()
	for _, b := range booked {
		out = deleteWindows(out, func(slot TimeWindow) bool {
			return slot.Overlaps(b)
		})
	}
	return out
}

func deleteWindows(slots []TimeWindow, match func(TimeWindow) bool) []TimeWindow {
	kept := slots[:0]
	for _, slot := range slots {
		if !match(slot) {
			kept = append(kept, slot)
		}
	}
	return kept
}
