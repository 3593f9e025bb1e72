package dto

// BookingRequest is the body for both creating a booking and moving an
// existing one to another room.
type BookingRequest struct {
	RoomID uint `json:"room_id" validate:"required,gt=0"`
}
