package reservation

import "time"

// TimeOfDay is a wall-clock time within a day, independent of any date or
// zone. Catalog slots are defined in terms of TimeOfDay pairs because the
// laundry and standard grids are the same for every calendar date.
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// ClockOf extracts the TimeOfDay of t as-is (no zone conversion).
func ClockOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

func (t TimeOfDay) seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.seconds() == other.seconds()
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.seconds() < other.seconds()
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.seconds() > other.seconds()
}

// At anchors the TimeOfDay onto a calendar date in the given zone.
func (t TimeOfDay) At(date time.Time, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, t.Second, 0, loc)
}

// TimeWindow is a (start, end) pair of wall-clock times used both as a
// catalog slot and as a candidate booking window.
type TimeWindow struct {
	Start TimeOfDay
	End   TimeOfDay
}

// Overlaps reports whether the window strictly overlaps other
// (start < other.end AND end > other.start).
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.Start.Before(other.End) && w.End.After(other.Start)
}

// Equal reports whether both bounds match exactly.
func (w TimeWindow) Equal(other TimeWindow) bool {
	return w.Start.Equal(other.Start) && w.End.Equal(other.End)
}
