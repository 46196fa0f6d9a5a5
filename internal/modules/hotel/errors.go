package hotel

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrInvalidDateRange = errors.New("check-in date must be before check-out date")
	ErrHotelExists      = errors.New("hotel already exists")
	ErrHotelNotFound    = errors.New("hotel not found")
)
