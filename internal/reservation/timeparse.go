package reservation

import (
	"time"
)

// Normalizer converts flexible client-supplied date-time strings into
// instants anchored to the dormitory zone. Input is accepted either with an
// explicit offset (RFC 3339) or as a bare local date-time, which is
// interpreted as wall-clock time in the dormitory zone.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) *Normalizer {
	return &Normalizer{loc: loc}
}

// layouts accepted for zone-less input, tried in order.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Parse returns the parsed instant converted to the dormitory zone.
func (n *Normalizer) Parse(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(n.loc), nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, n.loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidTimeFormat
}

// ParseDate parses a YYYY-MM-DD date in the dormitory zone.
func (n *Normalizer) ParseDate(raw string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", raw, n.loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// Zone returns the dormitory zone the normalizer anchors to.
func (n *Normalizer) Zone() *time.Location {
	return n.loc
}
