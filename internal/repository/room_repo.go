package repository

import (
	"context"

	"github.com/MarianaKely/drivent-booking-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomRepository is the capacity ledger: the room's static attributes
// plus the live count of bookings referencing it.
type RoomRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Room, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error)
	CountBookings(ctx context.Context, tx *gorm.DB, roomID uint) (int64, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) FindByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// FindByIDForUpdate acquires a row-level lock on the room within the given
// transaction, serializing concurrent allocation attempts for the same room.
func (r *roomRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Room, error) {
	var room models.Room
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// CountBookings counts every booking referencing the room. Bookings are
// never cancelled or deleted in this domain, so the count is unconditional.
// A nil tx counts outside any transaction, for read-only occupancy views.
func (r *roomRepository) CountBookings(ctx context.Context, tx *gorm.DB, roomID uint) (int64, error) {
	if tx == nil {
		tx = r.db
	}
	var count int64
	err := tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Count(&count).Error
	return count, err
}
