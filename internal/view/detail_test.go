package view_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antmarasia/MyRides/internal/view"
)

func TestNewDetailModel(t *testing.T) {
	trip := tripFixture()
	inSeries := true
	trip.InSeries = &inSeries
	trip.DriverCanCancel = true

	m := view.NewDetailModel(trip, time.UTC)

	assert.True(t, m.InSeries)
	assert.True(t, m.DriverCanCancel)
	assert.Equal(t, "123 Main St, Denver, CO", m.PickupAddress)
	assert.Equal(t, "456 Oak Ave, Denver, CO", m.DropoffAddress)

	require.Len(t, m.Pins, 2)
	assert.Equal(t, "Start", m.Pins[0].Label)
	assert.InDelta(t, 39.7392, m.Pins[0].Lat, 1e-9)
	assert.Equal(t, "End", m.Pins[1].Label)
	assert.InDelta(t, -104.9964, m.Pins[1].Lng, 1e-9)

	// 20000 m * 0.00062137 = 12.4274 mi, shown with two decimals.
	assert.Equal(t, "Trip ID: ride-101 • 12.43 mi • 38.5 min", m.TripStats)
}

func TestNewDetailModel_HeaderUsesRawInstants(t *testing.T) {
	trip := tripFixture()

	m := view.NewDetailModel(trip, time.UTC)

	// The detail header wraps the raw payment instants in a synthetic
	// one-trip section, so clock strings convert the real UTC instants
	// into the trip zone.
	assert.Equal(t, "11:15a", m.Header.StartTime)
	assert.Equal(t, "12:00p", m.Header.EndTime)
	assert.Equal(t, "Mon 1/15", m.Header.Day)
	assert.Equal(t, "$45.00", m.Header.EstimatedEarnings)
}

func TestNewDetailModel_SingleWaypoint(t *testing.T) {
	trip := tripFixture()
	trip.Waypoints = trip.Waypoints[:1]

	m := view.NewDetailModel(trip, time.UTC)

	assert.Equal(t, "123 Main St, Denver, CO", m.PickupAddress)
	assert.Empty(t, m.DropoffAddress, "no dropoff with a single waypoint")
	assert.Len(t, m.Pins, 1)
}

func TestNewDetailModel_NilInSeries(t *testing.T) {
	trip := tripFixture()
	trip.InSeries = nil

	m := view.NewDetailModel(trip, time.UTC)

	assert.False(t, m.InSeries)
}
