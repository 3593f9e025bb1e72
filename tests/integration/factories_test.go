//go:build integration

package integration

import (
	"sync/atomic"
	"testing"

	"github.com/MarianaKely/drivent-booking-service/internal/models"
	"github.com/MarianaKely/drivent-booking-service/internal/repository"
	"github.com/MarianaKely/drivent-booking-service/internal/service"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

var userIDCounter atomic.Uint64

func nextUserID() uint {
	return uint(userIDCounter.Add(1))
}

func newBookingService() service.BookingService {
	return service.NewBookingService(
		repository.NewBookingRepository(testDB),
		repository.NewRoomRepository(testDB),
		repository.NewEnrollmentRepository(testDB),
		repository.NewTicketRepository(testDB),
		nil, // no event publisher in integration tests
	)
}

func createHotel(t *testing.T) *models.Hotel {
	t.Helper()
	hotel := &models.Hotel{
		Name:  gofakeit.Company(),
		Image: gofakeit.URL(),
	}
	require.NoError(t, testDB.Create(hotel).Error)
	return hotel
}

func createRoom(t *testing.T, hotelID uint, capacity int) *models.Room {
	t.Helper()
	room := &models.Room{
		Name:     gofakeit.DigitN(4),
		Capacity: capacity,
		HotelID:  hotelID,
	}
	require.NoError(t, testDB.Create(room).Error)
	return room
}

func createEnrollment(t *testing.T, userID uint) *models.Enrollment {
	t.Helper()
	enrollment := &models.Enrollment{
		UserID: userID,
		Name:   gofakeit.Name(),
	}
	require.NoError(t, testDB.Create(enrollment).Error)
	return enrollment
}

func createTicketType(t *testing.T, isRemote, includesHotel bool) *models.TicketType {
	t.Helper()
	ticketType := &models.TicketType{
		Name:          gofakeit.ProductName(),
		Price:         gofakeit.Price(100, 1000),
		IsRemote:      isRemote,
		IncludesHotel: includesHotel,
	}
	require.NoError(t, testDB.Create(ticketType).Error)
	return ticketType
}

func createTicket(t *testing.T, enrollmentID, ticketTypeID uint, status models.TicketStatus) *models.Ticket {
	t.Helper()
	ticket := &models.Ticket{
		EnrollmentID: enrollmentID,
		TicketTypeID: ticketTypeID,
		Status:       status,
	}
	require.NoError(t, testDB.Create(ticket).Error)
	return ticket
}

// createEligibleUser enrolls a fresh user with a paid, in-person,
// hotel-inclusive ticket and returns the user id.
func createEligibleUser(t *testing.T) uint {
	t.Helper()
	userID := nextUserID()
	enrollment := createEnrollment(t, userID)
	ticketType := createTicketType(t, false, true)
	createTicket(t, enrollment.ID, ticketType.ID, models.TicketPaid)
	return userID
}

// createBookingRecord bypasses the allocator, the way the platform's
// test fixtures seed pre-existing bookings.
func createBookingRecord(t *testing.T, userID, roomID uint) *models.Booking {
	t.Helper()
	booking := &models.Booking{UserID: userID, RoomID: roomID}
	require.NoError(t, testDB.Create(booking).Error)
	return booking
}
