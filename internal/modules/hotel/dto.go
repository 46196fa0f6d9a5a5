package hotel

import "hotelbooking/internal/domain"

type CreateHotelRequest struct {
	Name  string        `json:"name" binding:"required" validate:"required,max=100"`
	Rooms []RoomPayload `json:"rooms" binding:"required" validate:"required,min=1,dive"`
}

type RoomPayload struct {
	Name     string `json:"name" binding:"required" validate:"required,max=100"`
	RoomType string `json:"room_type" binding:"required" validate:"required,max=50"`
	Capacity int    `json:"capacity" binding:"required" validate:"required,gte=1,lte=100"`
}

func (r CreateHotelRequest) toDomain() *domain.Hotel {
	rooms := make([]domain.Room, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, domain.Room{
			Name:     room.Name,
			Type:     domain.RoomType(room.RoomType),
			Capacity: room.Capacity,
		})
	}
	return &domain.Hotel{Name: r.Name, Rooms: rooms}
}
