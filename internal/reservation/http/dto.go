package http

import (
	"time"

	"github.com/montelzek/mydorm-backend/internal/reservation"
)

type CreateReservationBody struct {
	ResourceID string `json:"resource_id" binding:"required,uuid"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
}

type ReservationResponse struct {
	ID           string `json:"id"`
	ResourceID   string `json:"resource_id"`
	ResourceName string `json:"resource_name"`
	ResourceType string `json:"resource_type"`
	BuildingID   string `json:"building_id"`
	BuildingName string `json:"building_name"`

	User UserTag `json:"user"`

	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// UserTag is the embedded owner summary on reservation payloads.
type UserTag struct {
	ID           string  `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	RoomNumber   *string `json:"room_number,omitempty"`
	BuildingName *string `json:"building_name,omitempty"`
}

// NewReservationResponse renders a reservation with all times expressed as
// offset-qualified strings in the dormitory zone.
func NewReservationResponse(rsv *reservation.Reservation, loc *time.Location) ReservationResponse {
	return ReservationResponse{
		ID:           rsv.ID,
		ResourceID:   rsv.ResourceID,
		ResourceName: rsv.ResourceName,
		ResourceType: rsv.ResourceType,
		BuildingID:   rsv.BuildingID,
		BuildingName: rsv.BuildingName,
		User: UserTag{
			ID:           rsv.UserID,
			FirstName:    rsv.UserFirstName,
			LastName:     rsv.UserLastName,
			RoomNumber:   rsv.UserRoomNumber,
			BuildingName: rsv.UserBuildingName,
		},
		StartTime: rsv.StartTime.In(loc).Format(time.RFC3339),
		EndTime:   rsv.EndTime.In(loc).Format(time.RFC3339),
		Status:    string(rsv.Status),
		CreatedAt: rsv.CreatedAt.In(loc).Format(time.RFC3339),
	}
}

type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// NewSlotResponses anchors catalog windows onto the requested date.
func NewSlotResponses(slots []reservation.TimeWindow, date time.Time, loc *time.Location) []SlotResponse {
	out := make([]SlotResponse, len(slots))
	for i, slot := range slots {
		out[i] = SlotResponse{
			StartTime: slot.Start.At(date, loc).Format(time.RFC3339),
			EndTime:   slot.End.At(date, loc).Format(time.RFC3339),
		}
	}
	return out
}
