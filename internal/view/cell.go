// Package view derives the display models the rendering client consumes.
// Everything here is a pure, deterministic transform of a Trip or a
// RideSection: no hidden state, no clock reads, no network.
package view

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/antmarasia/MyRides/internal/domain"
	"github.com/antmarasia/MyRides/internal/localtime"
)

// CellModel is the per-trip row of the rides list.
type CellModel struct {
	TripUUID          uuid.UUID `json:"trip_uuid"`
	StartTime         string    `json:"start_time"`
	EndTime           string    `json:"end_time"`
	RiderCount        int       `json:"rider_count"`
	RiderLabel        string    `json:"rider_label"`
	BoosterCount      int       `json:"booster_count"`
	BoosterLabel      string    `json:"booster_label,omitempty"`
	EstimatedEarnings string    `json:"estimated_earnings"`
	Locations         []string  `json:"locations"`
}

// NewCellModel derives the list-row display model for one trip.
// Clock strings are rendered in the trip's own zone. The booster label is
// only populated when at least one passenger needs a booster seat, so
// renderers can show or hide that fragment on presence alone.
func NewCellModel(trip domain.Trip) CellModel {
	boosterCount := 0
	for _, p := range trip.Passengers {
		if p.BoosterSeat {
			boosterCount++
		}
	}

	locations := make([]string, 0, len(trip.Waypoints))
	for i, wp := range trip.Waypoints {
		locations = append(locations, fmt.Sprintf("%d. %s", i+1, wp.Location.Address))
	}

	m := CellModel{
		TripUUID:          trip.UUID,
		StartTime:         localtime.FormatClock(trip.PaymentStartsAt.Time, trip.TimeZoneName),
		EndTime:           localtime.FormatClock(trip.PaymentEndsAt.Time, trip.TimeZoneName),
		RiderCount:        len(trip.Passengers),
		RiderLabel:        pluralize(len(trip.Passengers), "rider", "riders"),
		BoosterCount:      boosterCount,
		EstimatedEarnings: formatCurrency(trip.EstimatedEarnings),
		Locations:         locations,
	}
	if boosterCount > 0 {
		m.BoosterLabel = pluralize(boosterCount, "booster", "boosters")
	}
	return m
}

// pluralize picks the plural form for counts above one. A count of zero
// keeps the singular, matching the list UI this feed was built for.
func pluralize(count int, singular, plural string) string {
	if count > 1 {
		return plural
	}
	return singular
}

// formatCurrency renders whole currency units with a dollar symbol and two
// fixed decimal places: 45 -> "$45.00". Earnings arrive from the feed as
// whole units, not cents.
func formatCurrency(amount int) string {
	return fmt.Sprintf("$%d.00", amount)
}
