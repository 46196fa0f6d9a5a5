package booking

import (
	"sort"

	"hotelbooking/internal/domain"
)

// matchRooms filters the inventory against the request's constraints,
// preserving inventory order for the allocation tie-break.
func matchRooms(rooms []domain.Room, req domain.BookingRequest) []domain.Room {
	matched := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Matches(req) {
			matched = append(matched, room)
		}
	}
	return matched
}

// chooseRoom picks the smallest qualifying room, ties broken by inventory
// order. Greedy, not globally optimal: holding back the bigger rooms keeps
// them free for bigger parties later. Returns nil when nothing is
// available, which is an expected outcome rather than an error.
func chooseRoom(available []domain.Room) *domain.Room {
	if len(available) == 0 {
		return nil
	}
	ranked := make([]domain.Room, len(available))
	copy(ranked, available)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Capacity < ranked[j].Capacity
	})
	return &ranked[0]
}
