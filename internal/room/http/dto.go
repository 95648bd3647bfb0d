package http

import (
	"time"

	bldgHttp "github.com/montelzek/mydorm-backend/internal/building/http"
	"github.com/montelzek/mydorm-backend/internal/room"
)

// RoomTag holds minimal room info for embedding in other responses.
type RoomTag struct {
	ID     string `json:"id"`
	Number string `json:"number"`
}

type RoomResponse struct {
	ID        string               `json:"id"`
	Number    string               `json:"number"`
	Capacity  int                  `json:"capacity"`
	Building  bldgHttp.BuildingTag `json:"building"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	return RoomResponse{
		ID:        r.ID,
		Number:    r.Number,
		Capacity:  r.Capacity,
		Building:  bldgHttp.BuildingTag{ID: r.BuildingID, Name: r.BuildingName},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type CreateRoomBody struct {
	Number     string `json:"number" binding:"required,max=20"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
	BuildingID string `json:"building_id" binding:"required,uuid"`
}

type UpdateRoomBody struct {
	Number   *string `json:"number" binding:"omitempty,max=20"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1"`
}
