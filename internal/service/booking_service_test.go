package service

import (
	"testing"

	"github.com/MarianaKely/drivent-booking-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func paidHotelTicket() *models.Ticket {
	return &models.Ticket{
		ID:           1,
		EnrollmentID: 1,
		Status:       models.TicketPaid,
		TicketType: &models.TicketType{
			ID:            1,
			Name:          "Presencial + Hotel",
			Price:         600,
			IsRemote:      false,
			IncludesHotel: true,
		},
	}
}

func TestCheckTicket_PaidHotelTicket(t *testing.T) {
	assert.NoError(t, checkTicket(paidHotelTicket()))
}

func TestCheckTicket_Reserved(t *testing.T) {
	ticket := paidHotelTicket()
	ticket.Status = models.TicketReserved

	assert.ErrorIs(t, checkTicket(ticket), ErrTicketInvalid)
}

func TestCheckTicket_RemoteType(t *testing.T) {
	ticket := paidHotelTicket()
	ticket.TicketType.IsRemote = true

	assert.ErrorIs(t, checkTicket(ticket), ErrTicketInvalid)
}

func TestCheckTicket_NoHotelAccess(t *testing.T) {
	ticket := paidHotelTicket()
	ticket.TicketType.IncludesHotel = false

	assert.ErrorIs(t, checkTicket(ticket), ErrTicketInvalid)
}

func TestCheckTicket_MissingTicketType(t *testing.T) {
	ticket := paidHotelTicket()
	ticket.TicketType = nil

	assert.ErrorIs(t, checkTicket(ticket), ErrTicketInvalid)
}
