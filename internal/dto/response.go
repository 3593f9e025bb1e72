package dto

import (
	"time"

	"github.com/MarianaKely/drivent-booking-service/internal/models"
)

type BookingCreatedResponse struct {
	BookingID uint `json:"booking_id"`
}

type RoomResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   uint      `json:"hotel_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserBookingResponse struct {
	ID   uint         `json:"id"`
	Room RoomResponse `json:"room"`
}

type RoomStatusResponse struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Capacity  int    `json:"capacity"`
	HotelID   uint   `json:"hotel_id"`
	Occupied  int64  `json:"occupied"`
	Available int64  `json:"available"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToRoomResponse(r *models.Room) RoomResponse {
	return RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		HotelID:   r.HotelID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func ToUserBookingResponse(b *models.Booking) UserBookingResponse {
	resp := UserBookingResponse{ID: b.ID}
	if b.Room != nil {
		resp.Room = ToRoomResponse(b.Room)
	}
	return resp
}
