package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_service_bookings_created_total",
		Help: "Bookings successfully created.",
	})

	BookingsReassigned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_service_bookings_reassigned_total",
		Help: "Bookings moved to another room.",
	})

	BookingsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_service_bookings_rejected_total",
		Help: "Booking attempts rejected, by reason.",
	}, []string{"reason"})
)
