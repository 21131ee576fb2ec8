package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/antmarasia/MyRides/internal/domain"
	"github.com/antmarasia/MyRides/internal/view"
)

// SectionResponse is one day-section of the rides list: a header plus the
// rows beneath it.
type SectionResponse struct {
	Header view.HeaderModel `json:"header"`
	Rides  []view.CellModel `json:"rides"`
}

// RidesResponse is the body of GET /rides.
type RidesResponse struct {
	Sections []SectionResponse `json:"sections"`
}

// ListRides handles GET /rides.
// It returns the full trip list grouped into day-sections, each section
// carrying its header view-model and the per-trip row view-models in feed
// order.
func (s *Server) ListRides(w http.ResponseWriter, r *http.Request) {
	sections, err := s.rides.Sections(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "rides list failed", "error", err)
		writeError(w, r, http.StatusBadGateway, "upstream_unavailable", "could not load trips")
		return
	}

	resp := RidesResponse{Sections: make([]SectionResponse, 0, len(sections))}
	for _, section := range sections {
		rows := make([]view.CellModel, 0, len(section.Trips))
		for _, trip := range section.Trips {
			rows = append(rows, view.NewCellModel(trip))
		}
		resp.Sections = append(resp.Sections, SectionResponse{
			Header: view.NewHeaderModel(section, s.dayZone),
			Rides:  rows,
		})
	}

	writeJSON(w, r, http.StatusOK, resp)
}

// GetRide handles GET /rides/{uuid}.
// It returns the detail view-model for a single trip.
func (s *Server) GetRide(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "uuid"))
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "validation_error", "malformed trip uuid")
		return
	}

	trip, err := s.rides.Trip(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "not_found", "trip not found")
			return
		}
		slog.ErrorContext(r.Context(), "ride detail failed", "error", err)
		writeError(w, r, http.StatusBadGateway, "upstream_unavailable", "could not load trips")
		return
	}

	writeJSON(w, r, http.StatusOK, view.NewDetailModel(trip, s.dayZone))
}
