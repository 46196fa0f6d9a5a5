package testdata

import "hotelbooking/internal/domain"

// SeedHotel is the canonical fixture: six rooms, two per type, the singles
// holding one guest and the rest two.
func SeedHotel() *domain.Hotel {
	return &domain.Hotel{
		Name: "Grand Plaza Hotel",
		Rooms: []domain.Room{
			{Name: "101", Type: domain.RoomSingle, Capacity: 1},
			{Name: "102", Type: domain.RoomDouble, Capacity: 2},
			{Name: "103", Type: domain.RoomDeluxe, Capacity: 2},
			{Name: "104", Type: domain.RoomSingle, Capacity: 1},
			{Name: "105", Type: domain.RoomDouble, Capacity: 2},
			{Name: "106", Type: domain.RoomDeluxe, Capacity: 2},
		},
	}
}
