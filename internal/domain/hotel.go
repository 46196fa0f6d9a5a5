package domain

// RoomType is an open set of tags, the engine never interprets the value.
type RoomType string

const (
	RoomSingle RoomType = "Single"
	RoomDouble RoomType = "Double"
	RoomDeluxe RoomType = "Deluxe"
)

// Hotel is identified by its name. Renaming is unsupported, so the name
// doubles as the primary key. The room set is fixed at creation time.
type Hotel struct {
	Name  string `json:"name" gorm:"primaryKey;size:100" validate:"required,max=100"`
	Rooms []Room `json:"rooms" gorm:"foreignKey:HotelName;constraint:OnDelete:CASCADE" validate:"required,min=1,dive"`
}

type Room struct {
	ID        int64    `json:"-" gorm:"primaryKey;autoIncrement"`
	HotelName string   `json:"-" gorm:"size:100;index"`
	Name      string   `json:"name" gorm:"size:100" validate:"required,max=100"`
	Type      RoomType `json:"room_type" gorm:"size:50" validate:"required"`
	Capacity  int      `json:"capacity" validate:"required,gte=1,lte=100"`
}

// Matches reports whether the room satisfies the request's constraints.
// Capacity is always enforced. A requested room name is more specific than
// a type, so when both are present the name decides alone.
func (r Room) Matches(req BookingRequest) bool {
	if req.NumberOfGuests > r.Capacity {
		return false
	}
	if req.RoomName != nil {
		return *req.RoomName == r.Name
	}
	if req.RoomType != nil {
		return *req.RoomType == r.Type
	}
	return true
}
