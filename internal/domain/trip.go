// Package domain contains the core data types for the MyRides API.
// Apart from the localtime helpers it has no internal dependencies and is
// imported by every other internal package (upstream, service, view, handler).
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/antmarasia/MyRides/internal/localtime"
)

// wireTimeLayout is the exact timestamp format the upstream feed uses.
// The trailing Z is a literal character, present regardless of the actual
// offset, so this is intentionally not a general RFC 3339 parse.
const wireTimeLayout = "2006-01-02T15:04:05Z"

// WireTime is a time.Time that marshals to and from the upstream feed's
// literal-Z timestamp format. Parsed values carry UTC.
type WireTime struct {
	time.Time
}

// UnmarshalJSON parses a quoted wireTimeLayout timestamp.
func (t *WireTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("domain.WireTime: not a JSON string: %s", s)
	}
	parsed, err := time.Parse(wireTimeLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("domain.WireTime: %w", err)
	}
	t.Time = parsed
	return nil
}

// MarshalJSON renders the timestamp back in the wire format, so trips
// survive a snapshot round trip byte-compatibly.
func (t WireTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(wireTimeLayout) + `"`), nil
}

// TripResponse is the wrapper object the upstream endpoint returns.
type TripResponse struct {
	Trips []Trip `json:"trips"`
}

// Trip is one ride assignment record as returned by the backend.
// Trips are decoded once from a fetch response and never mutated.
type Trip struct {
	Carpool              bool         `json:"carpool"`
	Claimable            bool         `json:"claimable"`
	DriverCanCancel      bool         `json:"driver_can_cancel"`
	DriverFareMultiplier int          `json:"driver_fare_multiplier"`
	DriverViewPermission string       `json:"driver_view_permission"`
	EstimatedEarnings    int          `json:"estimated_earnings"`
	EstimatedNetEarnings int          `json:"estimated_net_earnings"`
	ID                   int          `json:"id"`
	Slug                 string       `json:"slug"`
	State                string       `json:"state"`
	TimeAnchor           string       `json:"time_anchor"`
	TripOpportunity      bool         `json:"trip_opportunity"`
	UpdatedAt            string       `json:"updated_at"`
	Shuttle              bool         `json:"shuttle"`
	InSeries             *bool        `json:"in_series"` // nil when the feed omits it
	Passengers           []Passenger  `json:"passengers"`
	PaymentStartsAt      WireTime     `json:"payment_starts_at"`
	PaymentEndsAt        WireTime     `json:"payment_ends_at"`
	TimeZoneName         string       `json:"time_zone_name"`
	UUID                 uuid.UUID    `json:"uuid"`
	InCart               bool         `json:"in_cart"`
	PlannedRoute         PlannedRoute `json:"planned_route"`
	Waypoints            []Waypoint   `json:"waypoints"`
}

// PaymentStartsAtLocal returns the payment start instant with the trip's own
// zone applied via localtime.Localize. "Same day" grouping is judged on this
// value, so day boundaries follow each trip's own zone independently.
func (t Trip) PaymentStartsAtLocal() time.Time {
	return localtime.Localize(t.PaymentStartsAt.Time, t.TimeZoneName)
}

// PaymentEndsAtLocal returns the payment end instant with the trip's own
// zone applied.
func (t Trip) PaymentEndsAtLocal() time.Time {
	return localtime.Localize(t.PaymentEndsAt.Time, t.TimeZoneName)
}

// Passenger is one rider on a trip.
type Passenger struct {
	Age                 int       `json:"age"`
	BoosterSeat         bool      `json:"booster_seat"`
	DisplayName         string    `json:"display_name"`
	FirstName           string    `json:"first_name"`
	Initials            string    `json:"initials"`
	MustBeMet           *bool     `json:"must_be_met"`
	FrontSeatAuthorized bool      `json:"front_seat_authorized"`
	DateOfBirth         WireTime  `json:"date_of_birth"`
	Gender              string    `json:"gender"`
	RiderNotes          string    `json:"rider_notes"`
	Slug                string    `json:"slug"`
	UUID                uuid.UUID `json:"uuid"`
}

// PlannedRoute is the driving plan for a trip: ordered legs plus totals.
// TotalDistance is meters, TotalTime is minutes.
type PlannedRoute struct {
	ID               int      `json:"id"`
	TotalTime        float64  `json:"total_time"`
	TotalDistance    int      `json:"total_distance"`
	StartsAt         WireTime `json:"starts_at"`
	EndsAt           WireTime `json:"ends_at"`
	OverviewPolyline string   `json:"overview_polyline"`
	Legs             []Leg    `json:"legs"`
}

// Leg is one segment of a planned route between two waypoints.
type Leg struct {
	ID              int      `json:"id"`
	Slug            string   `json:"slug"`
	StartsAt        WireTime `json:"starts_at"`
	EndsAt          WireTime `json:"ends_at"`
	Position        int      `json:"position"`
	StartWaypointID int      `json:"start_waypoint_id"`
	EndWaypointID   int      `json:"end_waypoint_id"`
}

// Waypoint is a stop along a trip's planned route: a location plus the
// passengers served there.
type Waypoint struct {
	ID                 int               `json:"id"`
	AccountLocations   []AccountLocation `json:"account_locations"`
	EstimatedArrivesAt WireTime          `json:"estimated_arrives_at"`
	Location           Location          `json:"location"`
	Passengers         []Passenger       `json:"passengers"`
}

// AccountLocation is a rider account's saved address attached to a waypoint.
type AccountLocation struct {
	AccountID                   int             `json:"account_id"`
	Address                     string          `json:"address"`
	ID                          int             `json:"id"`
	Lat                         float64         `json:"lat"`
	Lng                         float64         `json:"lng"`
	PickupProcedure             PickupProcedure `json:"pickup_procedure"`
	PickupProcedureTime         int             `json:"pickup_procedure_time"`
	DropoffProcedureTime        int             `json:"dropoff_procedure_time"`
	PlaceID                     string          `json:"place_id"`
	PickupProcedureInstructions *string         `json:"pickup_procedure_instructions"`
}

// PickupProcedure describes how a pickup at an account location works.
type PickupProcedure struct {
	Time         int     `json:"time"`
	Instructions *string `json:"instructions"`
}

// Location is a resolved street address with coordinates.
type Location struct {
	ID            int     `json:"id"`
	Address       string  `json:"address"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	PlaceID       string  `json:"place_id"`
	StreetAddress string  `json:"street_address"`
	StreetName    string  `json:"street_name"`
	StreetNumber  string  `json:"street_number"`
	City          string  `json:"city"`
	Zipcode       string  `json:"zipcode"`
	State         string  `json:"state"`
}
