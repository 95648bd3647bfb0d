package building

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("building not found")
	ErrNameRequired = errors.New("name is required")
)

// Building represents a dormitory building.
type Building struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing buildings.
type Filter struct {
	Keyword  string
	Page     int
	PageSize int
}
