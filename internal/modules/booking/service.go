package booking

import (
	"context"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/retry"
	"hotelbooking/internal/repository"
)

// bookingHorizonDays caps how far ahead a stay may start or end.
const bookingHorizonDays = 365

type Service struct {
	bookings BookingRepository
	hotels   HotelRepository
	policy   retry.Policy
}

func NewService(bookings BookingRepository, hotels HotelRepository, policy retry.Policy) *Service {
	policy.Retryable = repository.IsUniqueViolation
	return &Service{
		bookings: bookings,
		hotels:   hotels,
		policy:   policy,
	}
}

// CreateBooking runs the whole allocation attempt: validate, match the
// inventory, resolve availability, pick a room and commit the booking with
// its nights atomically. The availability read and the commit cannot be one
// atomic step, so a concurrent request may claim a night in between; the
// storage layer rejects the loser and the whole attempt is re-run, possibly
// settling on a different room, until the retry budget runs out.
func (s *Service) CreateBooking(ctx context.Context, hotelName string, req domain.BookingRequest) (*domain.Booking, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	var created *domain.Booking
	err := s.policy.Do(ctx, func(ctx context.Context) error {
		b, err := s.attempt(ctx, hotelName, req)
		if err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrRetryExhausted
		}
		return nil, err
	}
	return created, nil
}

func (s *Service) attempt(ctx context.Context, hotelName string, req domain.BookingRequest) (*domain.Booking, error) {
	h, err := s.hotels.GetByName(ctx, hotelName)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	candidates := matchRooms(h.Rooms, req)

	ids := make([]int64, 0, len(candidates))
	for _, room := range candidates {
		ids = append(ids, room.ID)
	}
	bookedIDs, err := s.bookings.BookedRoomIDs(ctx, ids, req.CheckInDate, req.CheckOutDate)
	if err != nil {
		return nil, err
	}
	booked := make(map[int64]struct{}, len(bookedIDs))
	for _, id := range bookedIDs {
		booked[id] = struct{}{}
	}

	available := make([]domain.Room, 0, len(candidates))
	for _, room := range candidates {
		if _, taken := booked[room.ID]; !taken {
			available = append(available, room)
		}
	}

	room := chooseRoom(available)
	if room == nil {
		// genuinely full, no point retrying
		return nil, ErrNoRoomAvailable
	}

	required := req.RequiredNights()
	nights := make([]domain.BookedNight, 0, len(required))
	for _, night := range required {
		nights = append(nights, domain.BookedNight{RoomID: room.ID, Date: night})
	}

	b := &domain.Booking{
		HotelName:      h.Name,
		RoomID:         room.ID,
		GuestID:        req.GuestID,
		NumberOfGuests: req.NumberOfGuests,
		Nights:         nights,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	b.Room = room
	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, reference int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByReference(ctx, reference)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func validateRequest(req domain.BookingRequest) error {
	if req.GuestID == "" {
		return ErrValidation
	}
	if req.NumberOfGuests < 1 || req.NumberOfGuests > 100 {
		return ErrValidation
	}
	if req.CheckInDate.IsZero() || req.CheckOutDate.IsZero() {
		return ErrValidation
	}
	if !req.CheckOutDate.After(req.CheckInDate) {
		return ErrValidation
	}
	horizon := domain.Today().AddDays(bookingHorizonDays)
	if req.CheckInDate.After(horizon) || req.CheckOutDate.After(horizon) {
		return ErrValidation
	}
	return nil
}
