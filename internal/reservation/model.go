package reservation

import (
	"net/http"
	"time"

	"github.com/montelzek/mydorm-backend/internal/pkg/apperror"
)

var (
	ErrInvalidTimeFormat = apperror.New(http.StatusBadRequest, "INVALID_TIME_FORMAT", "invalid date-time format")
	ErrInvalidDate       = apperror.New(http.StatusBadRequest, "INVALID_DATE", "invalid date format, expected YYYY-MM-DD")
	ErrInvalidWindow     = apperror.New(http.StatusBadRequest, "INVALID_WINDOW", "end time must be later than start time")
	ErrPastReservation   = apperror.New(http.StatusBadRequest, "PAST_RESERVATION", "cannot reserve time slots in the past")
	ErrCancelPast        = apperror.New(http.StatusBadRequest, "PAST_RESERVATION", "cannot cancel reservations from the past")

	ErrCrossBuildingLaundry = apperror.New(http.StatusForbidden, "CROSS_BUILDING_LAUNDRY", "you can only reserve laundry in your own building")
	ErrInvalidLaundrySlot   = apperror.New(http.StatusBadRequest, "INVALID_LAUNDRY_SLOT", "invalid time slot for laundry reservation")
	ErrOutsideHoursStart    = apperror.New(http.StatusBadRequest, "OUTSIDE_HOURS_START", "reservation cannot start before 08:00")
	ErrOutsideHoursEnd      = apperror.New(http.StatusBadRequest, "OUTSIDE_HOURS_END", "reservation cannot end after 23:00")
	ErrCrossDayWindow       = apperror.New(http.StatusBadRequest, "CROSS_DAY_WINDOW", "reservation must start and end on the same day")
	ErrTooLong              = apperror.New(http.StatusBadRequest, "RESERVATION_TOO_LONG", "reservation cannot last longer than 5 hours")
	ErrInvalidGranularity   = apperror.New(http.StatusBadRequest, "INVALID_GRANULARITY", "reservations must start and end on full hours (e.g. 09:00)")

	ErrNotFound         = apperror.New(http.StatusNotFound, "NOT_FOUND", "reservation not found")
	ErrResourceNotFound = apperror.New(http.StatusNotFound, "RESOURCE_NOT_FOUND", "resource not found")
	ErrUserNotFound     = apperror.New(http.StatusNotFound, "USER_NOT_FOUND", "user not found")

	ErrResourceConflict = apperror.New(http.StatusConflict, "RESOURCE_CONFLICT", "resource is already reserved in the selected time slot")
	ErrUserConflict     = apperror.New(http.StatusConflict, "USER_RESERVATION_CONFLICT", "you already have a reservation in this time slot")

	ErrNotOwner         = apperror.New(http.StatusForbidden, "NOT_OWNER", "you can only cancel your own reservations")
	ErrAlreadyCancelled = apperror.New(http.StatusConflict, "ALREADY_CANCELLED", "reservation has already been cancelled")
)

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

// Reservation is a confirmed or cancelled booking of a resource.
//
// StartTime and EndTime are dormitory-local wall-clock values: the instants
// are re-expressed in the dormitory zone before storage and the stored
// representation carries no zone. Every comparison against "now" therefore
// also happens in dormitory wall-clock terms.
type Reservation struct {
	ID         string
	ResourceID string
	UserID     string
	StartTime  time.Time
	EndTime    time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Denormalized read-side fields populated by joined queries.
	ResourceName     string
	ResourceType     string
	BuildingID       string
	BuildingName     string
	UserFirstName    string
	UserLastName     string
	UserRoomNumber   *string
	UserBuildingName *string
}

// AdminFilter defines the admin listing contract: conjunctive optional
// filters over future confirmed reservations.
type AdminFilter struct {
	ResourceID string
	BuildingID string
	Date       *time.Time // date-only comparison in the dormitory zone
	Search     string     // case-insensitive substring over names, room number, resource name

	Page     int
	PageSize int
	SortDesc bool // sort key is always start time
}
