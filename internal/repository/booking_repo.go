package repository

import (
	"context"

	"github.com/MarianaKely/drivent-booking-service/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error)
	FindByUserID(ctx context.Context, userID uint) (*models.Booking, error)
	ReassignRoom(ctx context.Context, tx *gorm.DB, bookingID, roomID uint) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

// Create inserts the booking as-is. Capacity and uniqueness are the
// allocator's responsibility, not the store's.
func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

// FindByID reads within tx when one is given, so a lookup inside a
// mutating transaction sees the same snapshot the mutation commits in.
func (r *bookingRepository) FindByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Booking, error) {
	if tx == nil {
		tx = r.db
	}
	var booking models.Booking
	if err := tx.WithContext(ctx).
		Preload("Room").
		First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByUserID returns the user's booking joined with its room. The domain
// expects at most one booking per user but storage does not enforce it, so
// the result is the first match ordered by booking id.
func (r *bookingRepository) FindByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Room").
		Where("user_id = ?", userID).
		Order("id ASC").
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// ReassignRoom moves the booking to another room in place, without
// ownership or capacity validation.
func (r *bookingRepository) ReassignRoom(ctx context.Context, tx *gorm.DB, bookingID, roomID uint) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("room_id", roomID).Error
}
