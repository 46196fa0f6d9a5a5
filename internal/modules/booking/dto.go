package booking

import (
	"hotelbooking/internal/domain"
)

type CreateBookingRequest struct {
	RoomType       *string     `json:"room_type"`
	RoomName       *string     `json:"room_name"`
	GuestID        string      `json:"guest_id" binding:"required"`
	NumberOfGuests int         `json:"number_of_guests" binding:"required"`
	CheckInDate    domain.Date `json:"check_in_date" binding:"required"`
	CheckOutDate   domain.Date `json:"check_out_date" binding:"required"`
}

func (r CreateBookingRequest) toDomain() domain.BookingRequest {
	var roomType *domain.RoomType
	if r.RoomType != nil {
		t := domain.RoomType(*r.RoomType)
		roomType = &t
	}
	return domain.BookingRequest{
		RoomType:       roomType,
		RoomName:       r.RoomName,
		GuestID:        r.GuestID,
		NumberOfGuests: r.NumberOfGuests,
		CheckInDate:    r.CheckInDate,
		CheckOutDate:   r.CheckOutDate,
	}
}

// BookingResponse is the external view of a booking, with the stay
// boundaries derived from the owned nights.
type BookingResponse struct {
	Reference      int64        `json:"reference"`
	Hotel          string       `json:"hotel"`
	Room           *domain.Room `json:"room,omitempty"`
	GuestID        string       `json:"guest_id"`
	NumberOfGuests int          `json:"number_of_guests"`
	CheckInDate    domain.Date  `json:"check_in_date"`
	CheckOutDate   domain.Date  `json:"check_out_date"`
}

func newBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		Reference:      b.Reference,
		Hotel:          b.HotelName,
		Room:           b.Room,
		GuestID:        b.GuestID,
		NumberOfGuests: b.NumberOfGuests,
		CheckInDate:    b.CheckInDate(),
		CheckOutDate:   b.CheckOutDate(),
	}
}
