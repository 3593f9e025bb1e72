package main

import (
	"log"

	"github.com/MarianaKely/drivent-booking-service/config"
	"github.com/MarianaKely/drivent-booking-service/internal/consumer"
	"github.com/MarianaKely/drivent-booking-service/internal/handler"
	"github.com/MarianaKely/drivent-booking-service/internal/middleware"
	"github.com/MarianaKely/drivent-booking-service/internal/repository"
	"github.com/MarianaKely/drivent-booking-service/internal/service"
	"github.com/MarianaKely/drivent-booking-service/pkg/database"
	"github.com/MarianaKely/drivent-booking-service/pkg/rabbitmq"
	"github.com/MarianaKely/drivent-booking-service/pkg/validation"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ consumer: sync read models from the registration platform
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	regConsumer := consumer.NewRegistrationConsumer(db)
	regConsumer.Start(msgs)

	// RabbitMQ publisher: booking lifecycle events
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to create RabbitMQ publisher: %v", err)
	}
	defer publisher.Close()

	// Repositories
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	// Service
	bookingSvc := service.NewBookingService(bookingRepo, roomRepo, enrollmentRepo, ticketRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = validation.New()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "booking-service"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	auth := middleware.Auth(cfg.JWTSecret)
	handler.NewBookingHandler(bookingSvc, roomRepo).RegisterRoutes(e, auth)

	log.Printf("Booking Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
