package domain

import "time"

// Booking owns its BookedNights. The reference is assigned by the storage
// layer on insert and is never client supplied, so references cannot be
// reused or collide.
type Booking struct {
	Reference      int64         `json:"reference" gorm:"primaryKey;autoIncrement"`
	HotelName      string        `json:"hotel" gorm:"size:100;index"`
	RoomID         int64         `json:"-"`
	Room           *Room         `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	GuestID        string        `json:"guest_id" gorm:"size:100"`
	NumberOfGuests int           `json:"number_of_guests"`
	Nights         []BookedNight `json:"-" gorm:"foreignKey:BookingReference;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time     `json:"created_at"`
}

// CheckInDate is the earliest booked night. Derived, never stored.
func (b *Booking) CheckInDate() Date {
	min := Date{}
	for _, n := range b.Nights {
		if min.IsZero() || n.Date.Before(min) {
			min = n.Date
		}
	}
	return min
}

// CheckOutDate is the day after the last booked night.
func (b *Booking) CheckOutDate() Date {
	max := Date{}
	for _, n := range b.Nights {
		if n.Date.After(max) {
			max = n.Date
		}
	}
	return max.AddDays(1)
}

// BookedNight records that a room is occupied on a date. The composite
// primary key (RoomID, Date) is the invariant that makes double booking
// impossible: an insert claiming an already claimed night fails at the
// storage layer no matter which process issues it.
type BookedNight struct {
	RoomID           int64 `gorm:"primaryKey;autoIncrement:false"`
	Date             Date  `gorm:"primaryKey"`
	BookingReference int64 `gorm:"index"`
}

func (BookedNight) TableName() string { return "booked_nights" }

// BookingRequest is the caller's input, it is never persisted. RoomType and
// RoomName are soft constraints: nil means "match any".
type BookingRequest struct {
	RoomType       *RoomType
	RoomName       *string
	GuestID        string
	NumberOfGuests int
	CheckInDate    Date
	CheckOutDate   Date
}

// RequiredNights is the ordered set of nights the booking must hold
// exclusively, check-in inclusive through check-out exclusive.
func (r BookingRequest) RequiredNights() []Date {
	return NightsBetween(r.CheckInDate, r.CheckOutDate)
}
