package models

import "time"

type TicketStatus string

const (
	TicketPaid     TicketStatus = "PAID"
	TicketReserved TicketStatus = "RESERVED"
)

// Enrollment, Ticket and TicketType are read models owned by the
// registration platform and kept in sync over RabbitMQ. The booking
// service never writes them outside the sync consumer.

type Enrollment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TicketType struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"not null" json:"name"`
	Price         float64   `gorm:"not null" json:"price"`
	IsRemote      bool      `gorm:"not null" json:"is_remote"`
	IncludesHotel bool      `gorm:"not null" json:"includes_hotel"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Ticket struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	EnrollmentID uint         `gorm:"not null;index" json:"enrollment_id"`
	TicketTypeID uint         `gorm:"not null" json:"ticket_type_id"`
	Status       TicketStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`

	TicketType *TicketType `gorm:"foreignKey:TicketTypeID" json:"ticket_type,omitempty"`
}
