// Package handler implements the HTTP handlers for the MyRides API.
// All handlers are methods on Server. Methods are split into files by
// screen (health.go, rides.go) but share the same Server struct so they can
// access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/antmarasia/MyRides/internal/domain"
)

// RidesServicer defines the business operations the rides handlers depend
// on. Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the network or the service layer.
type RidesServicer interface {
	Sections(ctx context.Context) ([]domain.RideSection, error)
	Trip(ctx context.Context, id uuid.UUID) (domain.Trip, error)
}

// Server holds the handlers for all API endpoints.
// dayZone is the zone section-header day strings are rendered in; main
// passes time.Local.
type Server struct {
	rides   RidesServicer
	dayZone *time.Location
}

// NewServer constructs the Server with all its dependencies.
// A nil dayZone falls back to time.Local.
func NewServer(rides RidesServicer, dayZone *time.Location) *Server {
	if dayZone == nil {
		dayZone = time.Local
	}
	return &Server{rides: rides, dayZone: dayZone}
}

// Routes registers every endpoint on a fresh chi router.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/rides", s.ListRides)
	r.Get("/rides/{uuid}", s.GetRide)
	return r
}
