package reservation

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type Booking struct {
	id       string
	client   *Client
	room     *Room
	checkIn  time.Time
	checkOut time.Time
}

// NewBooking marks room as unavailable. It does not check the flag first;
// callers must.
func NewBooking(id string, client *Client, room *Room, checkIn, checkOut time.Time) *Booking {
	room.SetAvailable(false)

	return &Booking{
		id:       id,
		client:   client,
		room:     room,
		checkIn:  checkIn,
		checkOut: checkOut,
	}
}

func (b *Booking) ID() string {
	return b.id
}

func (b *Booking) Client() *Client {
	return b.client
}

func (b *Booking) Room() *Room {
	return b.room
}

func (b *Booking) CheckIn() time.Time {
	return b.checkIn
}

func (b *Booking) CheckOut() time.Time {
	return b.checkOut
}

// Cancel releases the room. It may be called for bookings whose dates are
// already in the past.
func (b *Booking) Cancel() {
	b.room.SetAvailable(true)
}

func (b *Booking) Confirmation() string {
	return fmt.Sprintf(
		"Booking confirmed for %s. Room %d from %s to %s.",
		b.client.FullName(),
		b.room.Number,
		b.checkIn.Format(dateLayout),
		b.checkOut.Format(dateLayout),
	)
}

func (b *Booking) String() string {
	return fmt.Sprintf(
		"Booking[client=%s, room=%d, checkInDate=%s, checkOutDate=%s]",
		b.client.FullName(),
		b.room.Number,
		b.checkIn.Format(dateLayout),
		b.checkOut.Format(dateLayout),
	)
}
