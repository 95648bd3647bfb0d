package http

import (
	"time"

	"github.com/montelzek/mydorm-backend/internal/building"
)

// BuildingTag holds minimal building info for embedding in other responses.
type BuildingTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BuildingResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewBuildingResponse(b *building.Building) BuildingResponse {
	return BuildingResponse{
		ID:        b.ID,
		Name:      b.Name,
		Address:   b.Address,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type CreateBuildingBody struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"max=255"`
}

type UpdateBuildingBody struct {
	Name    *string `json:"name" binding:"omitempty,max=100"`
	Address *string `json:"address" binding:"omitempty,max=255"`
}
