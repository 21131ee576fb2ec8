package view

import (
	"fmt"
	"time"

	"github.com/antmarasia/MyRides/internal/domain"
)

// milesPerMeter converts the planned route's meter distance for display.
const milesPerMeter = 0.00062137

// Pin is a map annotation for the detail screen.
type Pin struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// DetailModel drives the drill-down detail screen for a single trip.
type DetailModel struct {
	Header          HeaderModel `json:"header"`
	InSeries        bool        `json:"in_series"`
	PickupAddress   string      `json:"pickup_address,omitempty"`
	DropoffAddress  string      `json:"dropoff_address,omitempty"`
	Pins            []Pin       `json:"pins"`
	Ride            CellModel   `json:"ride"`
	TripStats       string      `json:"trip_stats"`
	DriverCanCancel bool        `json:"driver_can_cancel"`
}

// NewDetailModel derives the detail display model for one trip.
//
// The header is built from a synthetic one-trip section carrying the raw
// payment instants, matching how the detail screen reuses the list header.
// Pickup is the first waypoint, dropoff the last, and only when the route
// has more than one waypoint.
func NewDetailModel(trip domain.Trip, dayZone *time.Location) DetailModel {
	section := domain.RideSection{
		Count:             1,
		StartTime:         trip.PaymentStartsAt.Time,
		EndTime:           trip.PaymentEndsAt.Time,
		EstimatedEarnings: trip.EstimatedEarnings,
		Trips:             []domain.Trip{trip},
	}

	m := DetailModel{
		Header:          NewHeaderModel(section, dayZone),
		InSeries:        trip.InSeries != nil && *trip.InSeries,
		Pins:            make([]Pin, 0, 2),
		Ride:            NewCellModel(trip),
		TripStats:       tripStats(trip),
		DriverCanCancel: trip.DriverCanCancel,
	}

	if len(trip.Waypoints) > 0 {
		start := trip.Waypoints[0].Location
		m.PickupAddress = start.Address
		m.Pins = append(m.Pins, Pin{Label: "Start", Lat: start.Lat, Lng: start.Lng})
	}
	if len(trip.Waypoints) > 1 {
		end := trip.Waypoints[len(trip.Waypoints)-1].Location
		m.DropoffAddress = end.Address
		m.Pins = append(m.Pins, Pin{Label: "End", Lat: end.Lat, Lng: end.Lng})
	}

	return m
}

// tripStats builds the one-line route summary, converting the route's meter
// distance to miles with two decimal places.
func tripStats(trip domain.Trip) string {
	miles := float64(trip.PlannedRoute.TotalDistance) * milesPerMeter
	return fmt.Sprintf("Trip ID: %s • %.2f mi • %v min", trip.Slug, miles, trip.PlannedRoute.TotalTime)
}
