package user

import (
	"errors"
	"net/http"
	"time"

	"github.com/montelzek/mydorm-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrRoomNotFound       = errors.New("room not found")

	// ErrRoomCapacityExceeded is returned when a room assignment would exceed
	// the room's configured capacity.
	ErrRoomCapacityExceeded = apperror.New(http.StatusConflict, "ROOM_CAPACITY_EXCEEDED", "room is already at full capacity")
)

type Role string

const (
	RoleResident Role = "RESIDENT"
	RoleAdmin    Role = "ADMIN"
)

// User represents a dormitory resident or administrator.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	IsActive     bool

	// Room assignment; nil for users without an assigned room.
	RoomID       *string
	RoomNumber   *string
	BuildingID   *string
	BuildingName *string

	CreatedAt   time.Time
	LastLoginAt *time.Time
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Filter defines filter options for listing users.
type Filter struct {
	Keyword    string
	BuildingID string
	IsActive   *bool // Use pointer to distinguish between false and nil (not set)

	Page     int
	PageSize int
}
