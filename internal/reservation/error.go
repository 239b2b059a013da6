package reservation

import (
	"errors"
	"fmt"
)

var (
	ErrRoomNotFound    = errors.New("no room with such number")
	ErrRoomTaken       = errors.New("room is already booked")
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrClientNotFound  = errors.New("client not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrNextID          = errors.New("get next id from generator")
)

// RoomUnavailableError is returned by BookRoom for both a missing room and a
// booked one. The message is the same in both cases; the reason can be
// recovered with errors.Is against ErrRoomNotFound or ErrRoomTaken.
type RoomUnavailableError struct {
	HotelName  string
	RoomNumber int
	reason     error
}

func newRoomUnavailableError(hotelName string, roomNumber int, reason error) *RoomUnavailableError {
	return &RoomUnavailableError{
		HotelName:  hotelName,
		RoomNumber: roomNumber,
		reason:     reason,
	}
}

func IsRoomUnavailableError(err error) *RoomUnavailableError {
	if err == nil {
		return nil
	}

	var unavailableErr *RoomUnavailableError

	if errors.As(err, &unavailableErr) {
		return unavailableErr
	}

	return nil
}

func (e *RoomUnavailableError) Error() string {
	return "Room not available."
}

func (e *RoomUnavailableError) Unwrap() error {
	return e.reason
}

// Detail is the message with the hotel, room and reason spelled out, for logs.
func (e *RoomUnavailableError) Detail() string {
	return fmt.Sprintf("room %d in hotel '%s': %v", e.RoomNumber, e.HotelName, e.reason)
}
