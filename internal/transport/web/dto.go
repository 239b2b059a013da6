package web

import (
	"net/mail"
	"strings"
	"time"

	"github.com/avstrong/hotelbooking/internal/reservation"
)

const dateLayout = "2006-01-02"

type roomView struct {
	Number        int     `json:"number"`
	Type          string  `json:"type"`
	PricePerNight float64 `json:"price_per_night"`
}

type hotelView struct {
	Name    string     `json:"name"`
	Address string     `json:"address"`
	Rooms   []roomView `json:"rooms"`
}

type clientView struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

type bookingView struct {
	ID       string     `json:"id"`
	Client   clientView `json:"client"`
	Room     roomView   `json:"room"`
	CheckIn  string     `json:"check_in"`
	CheckOut string     `json:"check_out"`
}

type errorView struct {
	Error string `json:"error"`
}

func newRoomViews(rooms []*reservation.Room) []roomView {
	views := make([]roomView, 0, len(rooms))

	for _, room := range rooms {
		views = append(views, roomView{
			Number:        room.Number,
			Type:          room.Type,
			PricePerNight: room.PricePerNight,
		})
	}

	return views
}

func newHotelView(hotel *reservation.Hotel) hotelView {
	return hotelView{
		Name:    hotel.Name(),
		Address: hotel.Address(),
		Rooms:   newRoomViews(hotel.Rooms()),
	}
}

func newClientView(client *reservation.Client) clientView {
	return clientView{
		FirstName:   client.FirstName(),
		LastName:    client.LastName(),
		FullName:    client.FullName(),
		Email:       client.Email(),
		PhoneNumber: client.PhoneNumber(),
	}
}

func newBookingView(booking *reservation.Booking) bookingView {
	room := booking.Room()

	return bookingView{
		ID:     booking.ID(),
		Client: newClientView(booking.Client()),
		Room: roomView{
			Number:        room.Number,
			Type:          room.Type,
			PricePerNight: room.PricePerNight,
		},
		CheckIn:  booking.CheckIn().Format(dateLayout),
		CheckOut: booking.CheckOut().Format(dateLayout),
	}
}

type registerClientInput struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

func (in *registerClientInput) validate() error {
	inputErr := newInputError()

	if strings.TrimSpace(in.FirstName) == "" {
		inputErr.addError("first_name", "provide first_name")
	}

	if strings.TrimSpace(in.LastName) == "" {
		inputErr.addError("last_name", "provide last_name")
	}

	if _, err := mail.ParseAddress(in.Email); err != nil {
		inputErr.addError("email", "provide valid email")
	}

	if strings.TrimSpace(in.PhoneNumber) == "" {
		inputErr.addError("phone_number", "provide phone_number")
	}

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

type bookRoomInput struct {
	ClientEmail string `json:"client_email"`
	Hotel       string `json:"hotel"`
	RoomNumber  int    `json:"room_number"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`

	checkIn  time.Time
	checkOut time.Time
}

func (in *bookRoomInput) validate() error {
	inputErr := newInputError()

	if in.ClientEmail == "" {
		inputErr.addError("client_email", "provide client_email")
	}

	if in.Hotel == "" {
		inputErr.addError("hotel", "provide hotel")
	}

	in.checkIn, in.checkOut = parseStay(inputErr, in.CheckIn, in.CheckOut)

	if inputErr.fieldsCount() > 0 {
		return inputErr
	}

	return nil
}

func parseStay(inputErr *inputError, rawCheckIn, rawCheckOut string) (time.Time, time.Time) {
	checkIn, inErr := time.Parse(dateLayout, rawCheckIn)
	if inErr != nil {
		inputErr.addError("check_in", "provide check_in as YYYY-MM-DD")
	}

	checkOut, outErr := time.Parse(dateLayout, rawCheckOut)
	if outErr != nil {
		inputErr.addError("check_out", "provide check_out as YYYY-MM-DD")
	}

	if inErr == nil && outErr == nil && checkIn.After(checkOut) {
		inputErr.addError("check_in", "check_in must not be after check_out")
	}

	return checkIn, checkOut
}
