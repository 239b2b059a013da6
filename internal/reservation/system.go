package reservation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/avstrong/hotelbooking/internal/logger"
)

type idGenerator interface {
	GetID(ctx context.Context) (string, error)
}

type notifier interface {
	Notify(ctx context.Context, booking *Booking) error
}

// System is the reservation ledger. Hotel and Room are not safe for
// concurrent use on their own; System serializes every access it makes to
// them with a single lock, so concurrent callers must go through it.
type System struct {
	mu          sync.Mutex
	l           *logger.Logger
	idGenerator idGenerator
	notifier    notifier
	hotels      []*Hotel
	clients     []*Client
	bookings    []*Booking
}

func New(l *logger.Logger, idGenerator idGenerator, notifier notifier) *System {
	//nolint:exhaustruct
	return &System{
		l:           l,
		idGenerator: idGenerator,
		notifier:    notifier,
	}
}

func (s *System) AddHotel(hotel *Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hotels = append(s.hotels, hotel)
}

func (s *System) RegisterClient(client *Client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = append(s.clients, client)
}

// BookRoom books the first room in hotel with the given number that is still
// available. Any failure to find one is reported as *RoomUnavailableError.
// The notifier is called once the booking is recorded; its failure is logged
// and does not undo the booking.
func (s *System) BookRoom(
	ctx context.Context,
	client *Client,
	hotel *Hotel,
	roomNumber int,
	checkIn, checkOut time.Time,
) (*Booking, error) {
	booking, err := s.bookRoom(ctx, client, hotel, roomNumber, checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	s.l.LogInfo("Room %d in hotel '%s' booked by %s, booking %s", roomNumber, hotel.Name(), client.FullName(), booking.ID())

	if err := s.notifier.Notify(ctx, booking); err != nil {
		s.l.LogErrorf("Could not send confirmation for booking %s: %v", booking.ID(), err.Error())
	}

	return booking, nil
}

func (s *System) bookRoom(
	ctx context.Context,
	client *Client,
	hotel *Hotel,
	roomNumber int,
	checkIn, checkOut time.Time,
) (*Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reason := ErrRoomNotFound

	for _, room := range hotel.rooms {
		if room.Number != roomNumber {
			continue
		}

		if !room.IsAvailable() {
			reason = ErrRoomTaken

			continue
		}

		id, err := s.idGenerator.GetID(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNextID, err)
		}

		booking := NewBooking(id, client, room, checkIn, checkOut)
		s.bookings = append(s.bookings, booking)

		return booking, nil
	}

	return nil, newRoomUnavailableError(hotel.Name(), roomNumber, reason)
}

// CancelBooking releases the booking's room and drops it from the active
// bookings. Cancelling a booking that is not active is a no-op and reports
// false, so a stale booking can never free a room that was booked again.
func (s *System) CancelBooking(booking *Booking) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cancelLocked(booking)
}

// CancelBookingByID looks up an active booking and cancels it in one step.
func (s *System) CancelBookingByID(id string) (*Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, err := s.bookingLocked(id)
	if err != nil {
		return nil, err
	}

	s.cancelLocked(booking)

	return booking, nil
}

func (s *System) cancelLocked(booking *Booking) bool {
	for idx, active := range s.bookings {
		if active != booking {
			continue
		}

		booking.Cancel()
		s.bookings = append(s.bookings[:idx], s.bookings[idx+1:]...)

		s.l.LogInfo("Booking %s cancelled, room %d is available again", booking.ID(), booking.Room().Number)

		return true
	}

	s.l.LogInfo("Booking %s is not active, nothing to cancel", booking.ID())

	return false
}

// SearchAvailableRooms runs hotel.SearchAvailableRooms under the system lock.
func (s *System) SearchAvailableRooms(hotel *Hotel, checkIn, checkOut time.Time) []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	return hotel.SearchAvailableRooms(checkIn, checkOut)
}

func (s *System) Hotels() []*Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()

	hotels := make([]*Hotel, len(s.hotels))
	copy(hotels, s.hotels)

	return hotels
}

func (s *System) Clients() []*Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	clients := make([]*Client, len(s.clients))
	copy(clients, s.clients)

	return clients
}

func (s *System) Bookings() []*Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]*Booking, len(s.bookings))
	copy(bookings, s.bookings)

	return bookings
}

func (s *System) Hotel(name string) (*Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, hotel := range s.hotels {
		if hotel.Name() == name {
			return hotel, nil
		}
	}

	return nil, fmt.Errorf("hotel '%s': %w", name, ErrHotelNotFound)
}

func (s *System) Client(email string) (*Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, client := range s.clients {
		if client.Email() == email {
			return client, nil
		}
	}

	return nil, fmt.Errorf("client '%s': %w", email, ErrClientNotFound)
}

func (s *System) Booking(id string) (*Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bookingLocked(id)
}

func (s *System) bookingLocked(id string) (*Booking, error) {
	for _, booking := range s.bookings {
		if booking.ID() == id {
			return booking, nil
		}
	}

	return nil, fmt.Errorf("booking '%s': %w", id, ErrBookingNotFound)
}
