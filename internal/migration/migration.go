package migration

import (
	"github.com/avstrong/hotelbooking/internal/logger"
	"github.com/avstrong/hotelbooking/internal/reservation"
)

type registry interface {
	AddHotel(hotel *reservation.Hotel)
}

type room struct {
	number int
	kind   string
	price  float64
}

type hotel struct {
	name    string
	address string
	rooms   []room
}

var seed = []hotel{
	{
		name:    "Sunshine Hotel",
		address: "123 Sunny Street",
		rooms: []room{
			{number: 101, kind: "Single", price: 50},
			{number: 102, kind: "Double", price: 100},
		},
	},
}

// Up registers the initial hotels and their rooms.
func Up(l *logger.Logger, r registry) {
	for _, h := range seed {
		hotel := reservation.NewHotel(h.name, h.address)

		for _, rm := range h.rooms {
			hotel.AddRoom(reservation.NewRoom(rm.number, rm.kind, rm.price))
		}

		r.AddHotel(hotel)

		l.LogInfo("Hotel '%s' added with %d rooms", h.name, len(h.rooms))
	}
}
