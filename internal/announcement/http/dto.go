package http

import (
	"strings"
	"time"

	"github.com/montelzek/mydorm-backend/internal/announcement"
	"github.com/montelzek/mydorm-backend/internal/pkg/request"
)

type AuthorResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type AnnouncementResponse struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	Author       AuthorResponse `json:"author"`
	BuildingID   *string        `json:"building_id"`
	BuildingName *string        `json:"building_name"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func NewResponse(a *announcement.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:      a.ID,
		Title:   a.Title,
		Content: a.Content,
		Author: AuthorResponse{
			ID:        a.AuthorID,
			FirstName: a.AuthorFirstName,
			LastName:  a.AuthorLastName,
		},
		BuildingID:   a.BuildingID,
		BuildingName: a.BuildingName,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

type CreateRequest struct {
	Title      string  `json:"title" binding:"required"`
	Content    string  `json:"content" binding:"required"`
	BuildingID *string `json:"building_id" binding:"omitempty,uuid"`
}

type UpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// ListAnnouncementsRequest defines query parameters for listing announcements.
type ListAnnouncementsRequest struct {
	request.ListParams
	Keyword    string `form:"q"`
	BuildingID string `form:"building_id" binding:"omitempty,uuid"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=created_at updated_at title"`
	SortOrder  string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// Validate performs custom validation for ListAnnouncementsRequest.
func (r *ListAnnouncementsRequest) Validate() error {
	return nil
}

// Validate performs custom validation for CreateRequest.
func (r *CreateRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return announcement.ErrTitleRequired
	}
	if strings.TrimSpace(r.Content) == "" {
		return announcement.ErrContentRequired
	}
	return nil
}

// Validate performs custom validation for UpdateRequest.
func (r *UpdateRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return announcement.ErrTitleRequired
	}
	if r.Content != nil && strings.TrimSpace(*r.Content) == "" {
		return announcement.ErrContentRequired
	}
	return nil
}
