package hotel

import (
	"context"

	"hotelbooking/internal/domain"
)

// HotelRepository defines the storage operations for hotels
type HotelRepository interface {
	Create(ctx context.Context, h *domain.Hotel) error
	GetByName(ctx context.Context, name string) (*domain.Hotel, error)
	List(ctx context.Context) ([]domain.Hotel, error)
}

// NightIndex is the batched booked-night lookup used to resolve
// availability
type NightIndex interface {
	BookedRoomIDs(ctx context.Context, roomIDs []int64, from, to domain.Date) ([]int64, error)
}
