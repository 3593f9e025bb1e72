package database

import (
	"log"

	"github.com/MarianaKely/drivent-booking-service/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Hotel{},
		&models.Room{},
		&models.Enrollment{},
		&models.TicketType{},
		&models.Ticket{},
		&models.Booking{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// The capacity check counts bookings by room on every allocation
	db.Exec(`CREATE INDEX IF NOT EXISTS idx_bookings_room ON bookings (room_id)`)

	return db
}
