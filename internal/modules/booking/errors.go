package booking

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrNoRoomAvailable is a normal business outcome: nothing matched or
	// everything matching is taken for those nights.
	ErrNoRoomAvailable = errors.New("all suitable rooms are fully booked")

	// ErrRetryExhausted means every attempt lost the commit race within the
	// retry budget. Callers see the same conflict as ErrNoRoomAvailable.
	ErrRetryExhausted = errors.New("could not secure a room, retries exhausted")
)
