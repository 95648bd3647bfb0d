package room

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("room not found")
	ErrNumberRequired  = errors.New("room number is required")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrInvalidBuilding = errors.New("invalid building_id")
)

// Room represents a resident room inside a dormitory building.
type Room struct {
	ID           string
	Number       string
	Capacity     int
	BuildingID   string
	BuildingName string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	BuildingID string
	Page       int
	PageSize   int
}
