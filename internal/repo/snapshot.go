// Package repo contains all database access logic for the MyRides API.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/antmarasia/MyRides/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows
// integration tests to pass a transaction that is rolled back after each
// test, giving free per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SnapshotRepo persists the trip list captured by each successful upstream
// fetch, so the rides list survives upstream outages.
// The service layer depends on this interface, not the Postgres
// implementation, which allows unit tests to inject a mock.
type SnapshotRepo interface {
	// Save stores the given trip list as a new snapshot stamped with the
	// current time.
	Save(ctx context.Context, trips []domain.Trip) error

	// Latest returns the trips and capture time of the most recent snapshot.
	// Returns domain.ErrNotFound when no snapshot has ever been saved.
	Latest(ctx context.Context) ([]domain.Trip, time.Time, error)
}

// pgSnapshotRepo is the Postgres implementation of SnapshotRepo.
type pgSnapshotRepo struct {
	db db
}

// NewSnapshotRepo constructs a SnapshotRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx for
// rollback isolation.
func NewSnapshotRepo(db db) SnapshotRepo {
	return &pgSnapshotRepo{db: db}
}

// Save inserts one snapshot row with the trip list serialized as JSONB.
func (r *pgSnapshotRepo) Save(ctx context.Context, trips []domain.Trip) error {
	payload, err := json.Marshal(trips)
	if err != nil {
		return fmt.Errorf("repo.SnapshotRepo.Save: marshal: %w", err)
	}

	const q = `
		INSERT INTO trip_snapshots (payload)
		VALUES (@payload)`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"payload": payload}); err != nil {
		return fmt.Errorf("repo.SnapshotRepo.Save: %w", err)
	}
	return nil
}

// Latest loads the most recently captured snapshot.
func (r *pgSnapshotRepo) Latest(ctx context.Context) ([]domain.Trip, time.Time, error) {
	const q = `
		SELECT payload, fetched_at
		FROM trip_snapshots
		ORDER BY fetched_at DESC, id DESC
		LIMIT 1`

	var (
		payload   []byte
		fetchedAt time.Time
	)
	err := r.db.QueryRow(ctx, q).Scan(&payload, &fetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, time.Time{}, fmt.Errorf("repo.SnapshotRepo.Latest: %w", domain.ErrNotFound)
		}
		return nil, time.Time{}, fmt.Errorf("repo.SnapshotRepo.Latest: %w", err)
	}

	var trips []domain.Trip
	if err := json.Unmarshal(payload, &trips); err != nil {
		return nil, time.Time{}, fmt.Errorf("repo.SnapshotRepo.Latest: unmarshal: %w", err)
	}
	return trips, fetchedAt, nil
}
