package http

import (
	"time"

	bldgHttp "github.com/montelzek/mydorm-backend/internal/building/http"
	roomHttp "github.com/montelzek/mydorm-backend/internal/room/http"
	"github.com/montelzek/mydorm-backend/internal/user"
)

// UserTag holds minimal user info for embedding in other responses.
type UserTag struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type UserResponse struct {
	ID        string                `json:"id"`
	Email     string                `json:"email"`
	FirstName string                `json:"first_name"`
	LastName  string                `json:"last_name"`
	Role      string                `json:"role"`
	IsActive  bool                  `json:"is_active"`
	Room      *roomHttp.RoomTag     `json:"room,omitempty"`
	Building  *bldgHttp.BuildingTag `json:"building,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

func NewUserResponse(u *user.User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
	if u.RoomID != nil {
		tag := roomHttp.RoomTag{ID: *u.RoomID}
		if u.RoomNumber != nil {
			tag.Number = *u.RoomNumber
		}
		resp.Room = &tag
	}
	if u.BuildingID != nil {
		tag := bldgHttp.BuildingTag{ID: *u.BuildingID}
		if u.BuildingName != nil {
			tag.Name = *u.BuildingName
		}
		resp.Building = &tag
	}
	return resp
}

type RegisterBody struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required,max=50"`
	LastName  string `json:"last_name" binding:"required,max=50"`
}

type LoginBody struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type AssignRoomBody struct {
	RoomID string `json:"room_id" binding:"omitempty,uuid"`
}
