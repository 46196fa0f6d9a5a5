package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// Create inserts the hotel together with its rooms in one transaction.
// A duplicate name trips the primary key and surfaces as a unique
// violation.
func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).Create(h).Error
}

// GetByName loads a hotel and its rooms. Rooms come back ordered by id,
// which is insertion order; the allocation tie-break depends on that.
func (r *HotelRepository) GetByName(ctx context.Context, name string) (*domain.Hotel, error) {
	var h domain.Hotel
	tx := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("rooms.id") }).
		First(&h, "name = ?", name)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &h, nil
}

func (r *HotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	hotels := make([]domain.Hotel, 0)
	tx := r.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB { return db.Order("rooms.id") }).
		Order("name").
		Find(&hotels)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return hotels, nil
}

// DeleteAll wipes every hotel with its rooms, bookings and nights.
// Children go first so the wipe works even when the driver has foreign
// key enforcement switched off.
func (r *HotelRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM booked_nights",
			"DELETE FROM bookings",
			"DELETE FROM rooms",
			"DELETE FROM hotels",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
