package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoom_Availability(t *testing.T) {
	room := NewRoom(101, "Single", 50)
	assert.True(t, room.IsAvailable())

	room.SetAvailable(false)
	assert.False(t, room.IsAvailable())

	room.SetAvailable(true)
	assert.True(t, room.IsAvailable())
}

func TestClient_FullName(t *testing.T) {
	client := NewClient("John", "Doe", "john@doe.com", "+100200300")

	assert.Equal(t, "John Doe", client.FullName())
	assert.Equal(t, "John", client.FirstName())
	assert.Equal(t, "Doe", client.LastName())
	assert.Equal(t, "john@doe.com", client.Email())
	assert.Equal(t, "+100200300", client.PhoneNumber())
}

func TestHotel_SearchAvailableRooms(t *testing.T) {
	hotel := NewHotel("Sunshine Hotel", "123 Sunny Street")
	r101 := NewRoom(101, "Single", 50)
	r102 := NewRoom(102, "Double", 100)
	r103 := NewRoom(103, "Suite", 250)

	hotel.AddRoom(r101)
	hotel.AddRoom(r102)
	hotel.AddRoom(r103)

	in, out := date(2024, 2, 26), date(2024, 2, 28)

	assert.Equal(t, []*Room{r101, r102, r103}, hotel.SearchAvailableRooms(in, out))

	r102.SetAvailable(false)
	assert.Equal(t, []*Room{r101, r103}, hotel.SearchAvailableRooms(in, out))

	// dates do not take part in the search
	assert.Equal(t, []*Room{r101, r103}, hotel.SearchAvailableRooms(time.Time{}, time.Time{}))
}

func TestHotel_RoomsIsSnapshot(t *testing.T) {
	hotel := NewHotel("Sunshine Hotel", "123 Sunny Street")
	hotel.AddRoom(NewRoom(101, "Single", 50))

	rooms := hotel.Rooms()
	rooms[0] = NewRoom(999, "Fake", 0)

	assert.Equal(t, 101, hotel.Rooms()[0].Number)
}

func TestBooking_Lifecycle(t *testing.T) {
	client := NewClient("John", "Doe", "john@doe.com", "+100200300")
	room := NewRoom(102, "Double", 100)

	booking := NewBooking("7", client, room, date(2024, 2, 26), date(2024, 2, 28))

	assert.False(t, room.IsAvailable())
	assert.Equal(t, "7", booking.ID())
	assert.Same(t, client, booking.Client())
	assert.Same(t, room, booking.Room())
	assert.Equal(t, date(2024, 2, 26), booking.CheckIn())
	assert.Equal(t, date(2024, 2, 28), booking.CheckOut())

	booking.Cancel()
	assert.True(t, room.IsAvailable())
}

func TestBooking_Messages(t *testing.T) {
	client := NewClient("John", "Doe", "john@doe.com", "+100200300")
	booking := NewBooking("1", client, NewRoom(102, "Double", 100), date(2024, 2, 26), date(2024, 2, 28))

	assert.Equal(t, "Booking confirmed for John Doe. Room 102 from 2024-02-26 to 2024-02-28.", booking.Confirmation())
	assert.Equal(t, "Booking[client=John Doe, room=102, checkInDate=2024-02-26, checkOutDate=2024-02-28]", booking.String())
}
