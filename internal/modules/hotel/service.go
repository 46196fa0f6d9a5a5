package hotel

import (
	"context"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/retry"
	"hotelbooking/internal/repository"
)

type Service struct {
	hotels HotelRepository
	nights NightIndex
	policy retry.Policy
}

func NewService(hotels HotelRepository, nights NightIndex, policy retry.Policy) *Service {
	policy.Retryable = repository.IsUniqueViolation
	return &Service{
		hotels: hotels,
		nights: nights,
		policy: policy,
	}
}

// CreateHotel registers a hotel with its full room inventory. Two requests
// may race to create the same name; the name primary key rejects the loser,
// and the bounded retry turns that rejection into the same conflict answer
// a plain duplicate would get instead of a storage fault.
func (s *Service) CreateHotel(ctx context.Context, h *domain.Hotel) error {
	if h.Name == "" || len(h.Rooms) == 0 {
		return ErrValidation
	}
	for _, room := range h.Rooms {
		if room.Name == "" || room.Type == "" || room.Capacity < 1 {
			return ErrValidation
		}
	}

	err := s.policy.Do(ctx, func(ctx context.Context) error {
		_, err := s.hotels.GetByName(ctx, h.Name)
		if err == nil {
			return ErrHotelExists
		}
		if !repository.IsNotFound(err) {
			return err
		}
		return s.hotels.Create(ctx, h)
	})
	if repository.IsUniqueViolation(err) {
		// budget spent while losing the race repeatedly
		return ErrHotelExists
	}
	return err
}

func (s *Service) GetHotel(ctx context.Context, name string) (*domain.Hotel, error) {
	h, err := s.hotels.GetByName(ctx, name)
	if repository.IsNotFound(err) {
		return nil, ErrHotelNotFound
	}
	return h, err
}

func (s *Service) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	return s.hotels.List(ctx)
}

// FindAvailableRooms lists the hotel's rooms that are free for every night
// in [checkin, checkout), in inventory order. minGuests is optional; when
// absent any capacity matches.
func (s *Service) FindAvailableRooms(ctx context.Context, hotelName string, checkin, checkout domain.Date, minGuests *int) ([]domain.Room, error) {
	if !checkout.After(checkin) {
		return nil, ErrInvalidDateRange
	}

	h, err := s.hotels.GetByName(ctx, hotelName)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	candidates := make([]domain.Room, 0, len(h.Rooms))
	for _, room := range h.Rooms {
		if minGuests != nil && room.Capacity < *minGuests {
			continue
		}
		candidates = append(candidates, room)
	}

	ids := make([]int64, 0, len(candidates))
	for _, room := range candidates {
		ids = append(ids, room.ID)
	}

	bookedIDs, err := s.nights.BookedRoomIDs(ctx, ids, checkin, checkout)
	if err != nil {
		return nil, err
	}
	booked := make(map[int64]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	free := make([]domain.Room, 0, len(candidates))
	for _, room := range candidates {
		if _, taken := booked[room.ID]; !taken {
			free = append(free, room)
		}
	}
	return free, nil
}
