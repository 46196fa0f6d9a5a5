package booking

import (
	"context"

	"hotelbooking/internal/domain"
)

// BookingRepository defines the storage operations for bookings
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByReference(ctx context.Context, ref int64) (*domain.Booking, error)
	BookedRoomIDs(ctx context.Context, roomIDs []int64, from, to domain.Date) ([]int64, error)
}

// HotelRepository is the read side needed to resolve the target hotel
type HotelRepository interface {
	GetByName(ctx context.Context, name string) (*domain.Hotel, error)
}
