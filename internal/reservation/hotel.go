package reservation

import "time"

// Hotel owns its rooms. Room order is insertion order and is the order
// search results come back in.
type Hotel struct {
	name    string
	address string
	rooms   []*Room
}

func NewHotel(name, address string) *Hotel {
	//nolint:exhaustruct
	return &Hotel{
		name:    name,
		address: address,
	}
}

func (h *Hotel) Name() string {
	return h.name
}

func (h *Hotel) Address() string {
	return h.address
}

// AddRoom does not check for duplicate numbers. Booking picks the first
// available match.
func (h *Hotel) AddRoom(room *Room) {
	h.rooms = append(h.rooms, room)
}

func (h *Hotel) Rooms() []*Room {
	rooms := make([]*Room, len(h.rooms))
	copy(rooms, h.rooms)

	return rooms
}

// SearchAvailableRooms returns the rooms currently flagged available.
// checkIn and checkOut are not used to filter: availability is a single flag
// per room, not a calendar.
func (h *Hotel) SearchAvailableRooms(_, _ time.Time) []*Room {
	var available []*Room

	for _, room := range h.rooms {
		if room.IsAvailable() {
			available = append(available, room)
		}
	}

	return available
}
