package reservation

type Room struct {
	Number        int
	Type          string
	PricePerNight float64
	available     bool
}

func NewRoom(number int, roomType string, pricePerNight float64) *Room {
	return &Room{
		Number:        number,
		Type:          roomType,
		PricePerNight: pricePerNight,
		available:     true,
	}
}

func (r *Room) IsAvailable() bool {
	return r.available
}

func (r *Room) SetAvailable(available bool) {
	r.available = available
}
