package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MarianaKely/drivent-booking-service/internal/dto"
	"github.com/MarianaKely/drivent-booking-service/internal/middleware"
	"github.com/MarianaKely/drivent-booking-service/internal/repository"
	"github.com/MarianaKely/drivent-booking-service/internal/service"
	"github.com/MarianaKely/drivent-booking-service/pkg/metrics"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc      service.BookingService
	roomRepo repository.RoomRepository
}

func NewBookingHandler(svc service.BookingService, roomRepo repository.RoomRepository) *BookingHandler {
	return &BookingHandler{svc: svc, roomRepo: roomRepo}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	booking := e.Group("/api/v1/booking", auth)
	booking.POST("", h.CreateBooking)
	booking.GET("", h.GetUserBooking)
	booking.PUT("/:bookingId", h.UpdateBooking)

	e.GET("/api/v1/rooms/:id/status", h.GetRoomStatus, auth)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID := middleware.UserID(c)
	booking, err := h.svc.CreateBooking(c.Request().Context(), userID, req.RoomID)
	if err != nil {
		return mapBookingError(err)
	}

	metrics.BookingsCreated.Inc()
	return c.JSON(http.StatusCreated, dto.BookingCreatedResponse{BookingID: booking.ID})
}

func (h *BookingHandler) GetUserBooking(c echo.Context) error {
	userID := middleware.UserID(c)

	booking, err := h.svc.GetUserBooking(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToUserBookingResponse(booking))
}

func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	bookingID, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var req dto.BookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID := middleware.UserID(c)
	booking, err := h.svc.UpdateBooking(c.Request().Context(), userID, uint(bookingID), req.RoomID)
	if err != nil {
		return mapBookingError(err)
	}

	metrics.BookingsReassigned.Inc()
	return c.JSON(http.StatusOK, dto.BookingCreatedResponse{BookingID: booking.ID})
}

// GetRoomStatus exposes the capacity ledger as a read-only snapshot.
func (h *BookingHandler) GetRoomStatus(c echo.Context) error {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	ctx := c.Request().Context()
	room, err := h.roomRepo.FindByID(ctx, uint(roomID))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "room not found")
	}

	occupied, err := h.roomRepo.CountBookings(ctx, nil, room.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	available := int64(room.Capacity) - occupied
	if available < 0 {
		available = 0
	}

	return c.JSON(http.StatusOK, dto.RoomStatusResponse{
		ID:        room.ID,
		Name:      room.Name,
		Capacity:  room.Capacity,
		HotelID:   room.HotelID,
		Occupied:  occupied,
		Available: available,
	})
}

func mapBookingError(err error) error {
	switch {
	case errors.Is(err, service.ErrRoomNotFound):
		metrics.BookingsRejected.WithLabelValues("room_not_found").Inc()
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUserNotEligible):
		metrics.BookingsRejected.WithLabelValues("not_eligible").Inc()
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrTicketInvalid):
		metrics.BookingsRejected.WithLabelValues("ticket_invalid").Inc()
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrRoomFull):
		metrics.BookingsRejected.WithLabelValues("room_full").Inc()
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNoPriorBooking):
		metrics.BookingsRejected.WithLabelValues("no_prior_booking").Inc()
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
