package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/avstrong/hotelbooking/internal/reservation"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	var inputErr *inputError

	switch {
	case errors.As(err, &inputErr):
		s.writeJSON(w, http.StatusBadRequest, inputErr.fields)
	case reservation.IsRoomUnavailableError(err) != nil:
		s.l.LogInfo("Booking refused: %v", reservation.IsRoomUnavailableError(err).Detail())
		s.writeJSON(w, http.StatusConflict, errorView{Error: err.Error()})
	case errors.Is(err, reservation.ErrHotelNotFound),
		errors.Is(err, reservation.ErrClientNotFound),
		errors.Is(err, reservation.ErrBookingNotFound):
		s.writeJSON(w, http.StatusNotFound, errorView{Error: err.Error()})
	default:
		s.l.LogErrorf("Could not handle request: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) listHotelsHandler(w http.ResponseWriter, _ *http.Request) {
	hotels := s.system.Hotels()
	out := make([]hotelView, 0, len(hotels))

	for _, hotel := range hotels {
		out = append(out, newHotelView(hotel))
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) availableRoomsHandler(w http.ResponseWriter, r *http.Request) {
	inputErr := newInputError()
	query := r.URL.Query()

	checkIn, checkOut := parseStay(inputErr, query.Get("check_in"), query.Get("check_out"))
	if inputErr.fieldsCount() > 0 {
		s.writeError(w, inputErr)

		return
	}

	hotel, err := s.system.Hotel(mux.Vars(r)["hotel"])
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, newRoomViews(s.system.SearchAvailableRooms(hotel, checkIn, checkOut)))
}

func (s *Server) registerClientHandler(w http.ResponseWriter, r *http.Request) {
	var input registerClientInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	if err := input.validate(); err != nil {
		s.writeError(w, err)

		return
	}

	client := reservation.NewClient(input.FirstName, input.LastName, input.Email, input.PhoneNumber)
	s.system.RegisterClient(client)

	s.writeJSON(w, http.StatusCreated, newClientView(client))
}

func (s *Server) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	var input bookRoomInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)

		return
	}

	if err := input.validate(); err != nil {
		s.writeError(w, err)

		return
	}

	client, err := s.system.Client(input.ClientEmail)
	if err != nil {
		s.writeError(w, err)

		return
	}

	hotel, err := s.system.Hotel(input.Hotel)
	if err != nil {
		s.writeError(w, err)

		return
	}

	booking, err := s.system.BookRoom(r.Context(), client, hotel, input.RoomNumber, input.checkIn, input.checkOut)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, newBookingView(booking))
}

func (s *Server) listBookingsHandler(w http.ResponseWriter, _ *http.Request) {
	bookings := s.system.Bookings()
	out := make([]bookingView, 0, len(bookings))

	for _, booking := range bookings {
		out = append(out, newBookingView(booking))
	}

	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) getBookingHandler(w http.ResponseWriter, r *http.Request) {
	booking, err := s.system.Booking(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, newBookingView(booking))
}

func (s *Server) cancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	booking, err := s.system.CancelBookingByID(mux.Vars(r)["id"])
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, newBookingView(booking))
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *mux.Router) {
	r.Use(s.recoverMiddleware(), s.loggerMiddleware())

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/hotels/v1", s.listHotelsHandler).Methods(http.MethodGet)
	api.HandleFunc("/hotels/v1/{hotel}/rooms/available", s.availableRoomsHandler).Methods(http.MethodGet)
	api.HandleFunc("/clients/v1", s.registerClientHandler).Methods(http.MethodPost)
	api.HandleFunc("/bookings/v1", s.createBookingHandler).Methods(http.MethodPost)
	api.HandleFunc("/bookings/v1", s.listBookingsHandler).Methods(http.MethodGet)
	api.HandleFunc("/bookings/v1/{id}", s.getBookingHandler).Methods(http.MethodGet)
	api.HandleFunc("/bookings/v1/{id}", s.cancelBookingHandler).Methods(http.MethodDelete)

	r.HandleFunc(s.conf.LivenessEndpoint, s.livenessHandler).Methods(http.MethodGet)
}
