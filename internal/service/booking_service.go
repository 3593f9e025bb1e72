package service

import (
	"context"
	"errors"
	"log"

	"github.com/MarianaKely/drivent-booking-service/internal/models"
	"github.com/MarianaKely/drivent-booking-service/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrUserNotEligible = errors.New("user has no enrollment")
	ErrTicketInvalid   = errors.New("ticket does not grant hotel access")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room is at full capacity")
	ErrNoPriorBooking  = errors.New("no booking to update")
	ErrBookingNotFound = errors.New("booking not found")
)

// EventPublisher emits booking lifecycle events to the platform bus.
// Publishing is best-effort; a failure never fails the request.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID, roomID uint) (*models.Booking, error)
	GetUserBooking(ctx context.Context, userID uint) (*models.Booking, error)
	UpdateBooking(ctx context.Context, userID, bookingID, roomID uint) (*models.Booking, error)
}

type bookingService struct {
	bookingRepo    repository.BookingRepository
	roomRepo       repository.RoomRepository
	enrollmentRepo repository.EnrollmentRepository
	ticketRepo     repository.TicketRepository
	events         EventPublisher
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	enrollmentRepo repository.EnrollmentRepository,
	ticketRepo repository.TicketRepository,
	events EventPublisher,
) BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		roomRepo:       roomRepo,
		enrollmentRepo: enrollmentRepo,
		ticketRepo:     ticketRepo,
		events:         events,
	}
}

// checkTicket applies the hotel-access rule shared by create and update:
// the ticket must be paid, in-person, and include hotel accommodation.
func checkTicket(ticket *models.Ticket) error {
	if ticket.Status == models.TicketReserved {
		return ErrTicketInvalid
	}
	if ticket.TicketType == nil || ticket.TicketType.IsRemote || !ticket.TicketType.IncludesHotel {
		return ErrTicketInvalid
	}
	return nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID, roomID uint) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollment, err := s.enrollmentRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotEligible
			}
			return err
		}

		ticket, err := s.ticketRepo.FindByEnrollmentID(ctx, enrollment.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketInvalid
			}
			return err
		}
		if err := checkTicket(ticket); err != nil {
			return err
		}

		// Lock the room row — serializes concurrent allocation for the
		// same room, so the count below cannot go stale before the insert.
		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, roomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		occupied, err := s.roomRepo.CountBookings(ctx, tx, room.ID)
		if err != nil {
			return err
		}
		if occupied >= int64(room.Capacity) {
			return ErrRoomFull
		}

		booking := &models.Booking{UserID: userID, RoomID: room.ID}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return err
		}
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("booking.created", result)
	return result, nil
}

func (s *bookingService) GetUserBooking(ctx context.Context, userID uint) (*models.Booking, error) {
	enrollment, err := s.enrollmentRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	// Any ticket suffices here; the paid/in-person/hotel rule only
	// gates mutations.
	if _, err := s.ticketRepo.FindByEnrollmentID(ctx, enrollment.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	booking, err := s.bookingRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, userID, bookingID, roomID uint) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		enrollment, err := s.enrollmentRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotEligible
			}
			return err
		}

		ticket, err := s.ticketRepo.FindByEnrollmentID(ctx, enrollment.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTicketInvalid
			}
			return err
		}
		if err := checkTicket(ticket); err != nil {
			return err
		}

		booking, err := s.bookingRepo.FindByID(ctx, tx, bookingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoPriorBooking
			}
			return err
		}
		// A booking owned by someone else is indistinguishable from a
		// missing one, so booking ids are not probeable.
		if booking.UserID != userID {
			return ErrNoPriorBooking
		}

		room, err := s.roomRepo.FindByIDForUpdate(ctx, tx, roomID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		// The count includes the booking's own occupancy when moving
		// within the same room: a full room rejects the move either way.
		occupied, err := s.roomRepo.CountBookings(ctx, tx, room.ID)
		if err != nil {
			return err
		}
		if occupied >= int64(room.Capacity) {
			return ErrRoomFull
		}

		if err := s.bookingRepo.ReassignRoom(ctx, tx, booking.ID, room.ID); err != nil {
			return err
		}
		booking.RoomID = room.ID
		booking.Room = room
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("booking.reassigned", result)
	return result, nil
}

func (s *bookingService) publish(routingKey string, booking *models.Booking) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(routingKey, booking); err != nil {
		log.Printf("[BookingService] publish %s for booking %d: %v", routingKey, booking.ID, err)
	}
}
