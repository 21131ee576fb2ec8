package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/antmarasia/MyRides/internal/domain"
	"github.com/antmarasia/MyRides/internal/repo"
)

// TripFetcher is the upstream dependency of RidesService.
// Satisfied by *upstream.Client; defined here so tests can inject a double.
type TripFetcher interface {
	FetchTrips(ctx context.Context) ([]domain.Trip, error)
}

// RidesService produces the grouped rides list and single-trip lookups.
//
// Every call fetches fresh data from upstream; nothing is held between
// calls. Concurrent callers share one in-flight fetch via singleflight, so a
// quickly re-triggered refresh can never race a stale completion past a
// newer one. Successful fetches are snapshotted; a failed fetch falls back
// to the most recent snapshot before giving up.
type RidesService struct {
	upstream  TripFetcher
	snapshots repo.SnapshotRepo
	log       *slog.Logger

	flight singleflight.Group
}

// NewRidesService constructs a RidesService.
func NewRidesService(upstream TripFetcher, snapshots repo.SnapshotRepo, log *slog.Logger) *RidesService {
	return &RidesService{upstream: upstream, snapshots: snapshots, log: log}
}

// Sections fetches the trip list and groups it into day-based sections.
// Empty feed → empty slice, never nil.
func (s *RidesService) Sections(ctx context.Context) ([]domain.RideSection, error) {
	trips, err := s.loadTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.RidesService.Sections: %w", err)
	}
	return GroupSections(trips), nil
}

// Trip resolves a single trip by UUID for the detail screen.
// Returns domain.ErrNotFound when the feed has no such trip.
func (s *RidesService) Trip(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trips, err := s.loadTrips(ctx)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.RidesService.Trip: %w", err)
	}
	for _, trip := range trips {
		if trip.UUID == id {
			return trip, nil
		}
	}
	return domain.Trip{}, fmt.Errorf("service.RidesService.Trip: %s: %w", id, domain.ErrNotFound)
}

// loadTrips fetches the feed, deduplicating concurrent fetches.
func (s *RidesService) loadTrips(ctx context.Context) ([]domain.Trip, error) {
	v, err, _ := s.flight.Do("trips", func() (any, error) {
		return s.fetchWithFallback(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Trip), nil
}

// fetchWithFallback hits upstream, persisting the result on success and
// falling back to the latest snapshot on failure. The snapshot save is
// best-effort: a dead database must not hide a healthy feed.
func (s *RidesService) fetchWithFallback(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.upstream.FetchTrips(ctx)
	if err == nil {
		if s.snapshots != nil {
			if saveErr := s.snapshots.Save(ctx, trips); saveErr != nil {
				s.log.WarnContext(ctx, "snapshot save failed", "error", saveErr)
			}
		}
		return trips, nil
	}

	if s.snapshots == nil {
		return nil, err
	}

	s.log.WarnContext(ctx, "upstream fetch failed, trying snapshot", "error", err)
	cached, fetchedAt, cacheErr := s.snapshots.Latest(ctx)
	if cacheErr != nil {
		// Surface the upstream error; the missing snapshot is secondary.
		s.log.WarnContext(ctx, "snapshot fallback failed", "error", cacheErr)
		return nil, err
	}
	s.log.InfoContext(ctx, "serving trips from snapshot", "fetched_at", fetchedAt)
	return cached, nil
}
