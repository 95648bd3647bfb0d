package announcement

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("announcement not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
	ErrInvalidBuilding = errors.New("invalid building_id")
)

// Announcement is news posted by an administrator, either dormitory-wide
// (no building) or scoped to a single building.
type Announcement struct {
	ID      string
	Title   string
	Content string

	// Posting admin; joined read-side names.
	AuthorID        string
	AuthorFirstName string
	AuthorLastName  string

	// nil means dormitory-wide.
	BuildingID   *string
	BuildingName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing announcements.
type Filter struct {
	Keyword    string
	BuildingID string // exact building scope; empty matches everything
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
