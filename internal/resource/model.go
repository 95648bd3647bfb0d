package resource

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("resource not found")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrNameTaken       = errors.New("a resource with this name already exists in the building")
	ErrInvalidBuilding = errors.New("invalid building_id")
	ErrInvalidType     = errors.New("invalid resource_type")
)

// Type distinguishes the two booking grammars: free-granularity hourly
// booking for standard resources, fixed 3-hour slots for laundry.
type Type string

const (
	TypeStandard Type = "STANDARD"
	TypeLaundry  Type = "LAUNDRY"
)

// ValidTypes lists the accepted resource types.
var ValidTypes = []Type{TypeStandard, TypeLaundry}

// Resource represents a bookable unit (e.g., Common Room 1, Laundry A).
type Resource struct {
	ID           string
	Name         string
	Description  string
	Type         Type
	BuildingID   string
	BuildingName string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Filter defines parameters for listing resources.
type Filter struct {
	BuildingID string
	Type       string
	IsActive   *bool
	Page       int
	PageSize   int
}
