package reservation

import (
	"time"

	"github.com/montelzek/mydorm-backend/internal/resource"
	"github.com/montelzek/mydorm-backend/internal/user"
)

// Validator is the state-independent rule engine for candidate booking
// windows. It holds no store access: it either passes or returns the first
// violated rule. The dormitory zone and the clock are injected so tests can
// pin both.
type Validator struct {
	loc *time.Location
	now func() time.Time
}

func NewValidator(loc *time.Location, now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{loc: loc, now: now}
}

// ValidateWindow checks temporal sanity only: a well-ordered window that has
// not already elapsed. Runs before resource/user existence is established.
func (v *Validator) ValidateWindow(start, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidWindow
	}
	if start.In(v.loc).Before(v.now().In(v.loc)) {
		return ErrPastReservation
	}
	return nil
}

// ValidateRules applies the resource-type specific rule set. Rule order is
// part of the contract: the first violated rule is the one reported.
func (v *Validator) ValidateRules(res *resource.Resource, u *user.User, start, end time.Time) error {
	if res.Type == resource.TypeLaundry {
		return v.validateLaundry(res, u, start, end)
	}
	return v.validateStandard(start, end)
}

func (v *Validator) validateLaundry(res *resource.Resource, u *user.User, start, end time.Time) error {
	if u.BuildingID == nil || *u.BuildingID != res.BuildingID {
		return ErrCrossBuildingLaundry
	}

	window := TimeWindow{
		Start: ClockOf(start.In(v.loc)),
		End:   ClockOf(end.In(v.loc)),
	}
	for _, slot := range laundrySlots {
		if window.Equal(slot) {
			return nil
		}
	}
	return ErrInvalidLaundrySlot
}

func (v *Validator) validateStandard(start, end time.Time) error {
	localStart := start.In(v.loc)
	localEnd := end.In(v.loc)

	if ClockOf(localStart).Before(earliestStart) {
		return ErrOutsideHoursStart
	}
	if ClockOf(localEnd).After(latestEnd) {
		return ErrOutsideHoursEnd
	}

	sy, sm, sd := localStart.Date()
	ey, em, ed := localEnd.Date()
	if sy != ey || sm != em || sd != ed {
		return ErrCrossDayWindow
	}

	// Whole-hours comparison: a 5h59m window passes here and is rejected by
	// the granularity rule below instead.
	if int(end.Sub(start).Hours()) > maxReservationHours {
		return ErrTooLong
	}

	if localStart.Minute() != 0 || localStart.Second() != 0 ||
		localEnd.Minute() != 0 || localEnd.Second() != 0 {
		return ErrInvalidGranularity
	}

	return nil
}
