package upstream_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antmarasia/MyRides/internal/domain"
	"github.com/antmarasia/MyRides/internal/upstream"
)

// feedJSON is a minimal but structurally complete feed body.
const feedJSON = `{
	"trips": [
		{
			"carpool": false,
			"claimable": true,
			"driver_can_cancel": false,
			"driver_fare_multiplier": 1,
			"driver_view_permission": "full",
			"estimated_earnings": 20,
			"estimated_net_earnings": 18,
			"id": 1,
			"slug": "ride-1",
			"state": "claimed",
			"time_anchor": "pickup",
			"trip_opportunity": false,
			"updated_at": "2024-01-14T08:00:00Z",
			"shuttle": false,
			"in_series": null,
			"passengers": [],
			"payment_starts_at": "2024-01-15T09:00:00Z",
			"payment_ends_at": "2024-01-15T09:45:00Z",
			"time_zone_name": "America/Denver",
			"uuid": "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			"in_cart": false,
			"planned_route": {
				"id": 5,
				"total_time": 30,
				"total_distance": 10000,
				"starts_at": "2024-01-15T09:00:00Z",
				"ends_at": "2024-01-15T09:45:00Z",
				"overview_polyline": "",
				"legs": []
			},
			"waypoints": []
		}
	]
}`

func TestClient_FetchTrips(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(feedJSON))
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL, time.Second)
	trips, err := client.FetchTrips(context.Background())

	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "ride-1", trips[0].Slug)
	assert.Equal(t, 20, trips[0].EstimatedEarnings)
	assert.Nil(t, trips[0].InSeries)
	want := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	assert.True(t, trips[0].PaymentStartsAt.Equal(want))
}

func TestClient_FetchTrips_EmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"trips": []}`))
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL, time.Second)
	trips, err := client.FetchTrips(context.Background())

	require.NoError(t, err)
	assert.Len(t, trips, 0)
}

func TestClient_FetchTrips_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL, time.Second)
	_, err := client.FetchTrips(context.Background())

	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestClient_FetchTrips_DecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"trips": "not-an-array"}`))
	}))
	defer srv.Close()

	client := upstream.NewClient(srv.URL, time.Second)
	_, err := client.FetchTrips(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrBadRequest)
	assert.Contains(t, err.Error(), "decode")
}

func TestClient_FetchTrips_InvalidURL(t *testing.T) {
	client := upstream.NewClient("not a url", time.Second)

	_, err := client.FetchTrips(context.Background())

	assert.ErrorIs(t, err, domain.ErrInvalidURL)
}
