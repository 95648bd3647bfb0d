package http

import (
	"time"

	bldgHttp "github.com/montelzek/mydorm-backend/internal/building/http"
	"github.com/montelzek/mydorm-backend/internal/resource"
)

// ResourceTag holds minimal resource info for embedding in other responses.
type ResourceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type ResourceResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Type        string               `json:"type"`
	Building    bldgHttp.BuildingTag `json:"building"`
	IsActive    bool                 `json:"is_active"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func NewResourceResponse(res *resource.Resource) ResourceResponse {
	return ResourceResponse{
		ID:          res.ID,
		Name:        res.Name,
		Description: res.Description,
		Type:        string(res.Type),
		Building:    bldgHttp.BuildingTag{ID: res.BuildingID, Name: res.BuildingName},
		IsActive:    res.IsActive,
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}
}

type CreateResourceBody struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	Type        string `json:"type" binding:"required,oneof=STANDARD LAUNDRY"`
	BuildingID  string `json:"building_id" binding:"required,uuid"`
}

type UpdateResourceBody struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	IsActive    *bool   `json:"is_active"`
}
