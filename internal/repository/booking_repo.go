package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts the booking and all of its nights as one transaction and
// fills in the storage-assigned reference. If any night collides with an
// existing (room, date) pair the whole insert rolls back and the error is
// a unique violation, nothing partial ever becomes visible.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByReference(ctx context.Context, ref int64) (*domain.Booking, error) {
	var b domain.Booking
	tx := r.db.WithContext(ctx).
		Preload("Room").
		Preload("Nights").
		First(&b, "reference = ?", ref)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &b, nil
}

// BookedRoomIDs returns the ids among roomIDs that have at least one booked
// night inside [from, to). One batched query for the whole candidate set,
// a single colliding night is enough to exclude a room.
func (r *BookingRepository) BookedRoomIDs(ctx context.Context, roomIDs []int64, from, to domain.Date) ([]int64, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	var booked []int64
	tx := r.db.WithContext(ctx).
		Model(&domain.BookedNight{}).
		Distinct("room_id").
		Where("room_id IN ? AND date >= ? AND date < ?", roomIDs, from, to).
		Pluck("room_id", &booked)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return booked, nil
}
