package web

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/avstrong/hotelbooking/internal/logger"
	"github.com/avstrong/hotelbooking/internal/reservation"
)

type Server struct {
	srv    *http.Server
	router *mux.Router
	l      *logger.Logger
	conf   Conf
	system *reservation.System
}

type Conf struct {
	L                 *logger.Logger
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
}

func New(ctx context.Context, conf Conf, system *reservation.System) *Server {
	router := mux.NewRouter()

	//nolint:exhaustruct
	srv := &http.Server{
		Addr:              net.JoinHostPort(conf.Host, conf.Port),
		ReadHeaderTimeout: conf.ReadHeaderTimeout,
		ErrorLog:          conf.L.StdLogger(),
		Handler:           router,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	server := &Server{
		srv:    srv,
		router: router,
		l:      conf.L,
		conf:   conf,
		system: system,
	}

	server.addRoutes(router)

	return server
}

func (s *Server) Srv() *http.Server {
	return s.srv
}

func (s *Server) Handler() http.Handler {
	return s.router
}
