// Package store persists planned routes in SQLite.
//
// Each Route row keeps its identifying columns indexed and the node
// sequence as a JSON column. The driver is modernc.org/sqlite, so no cgo
// toolchain is needed.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/pedroute/core"
)

// ErrInvalidRoute is returned by Save for routes missing required fields.
var ErrInvalidRoute = errors.New("store: invalid route")

var validate = validator.New()

// Route is one planned coarse route.
type Route struct {
	ID          string        `json:"id" validate:"required"`
	RunID       string        `json:"run_id" validate:"required"`
	AgentID     int           `json:"agent_id"`
	Origin      core.NodeID   `json:"origin"`
	Destination core.NodeID   `json:"destination"`
	RouteChoice string        `json:"route_choice" validate:"required"`
	Sequence    []core.NodeID `json:"sequence" validate:"min=1"`
	Fallback    bool          `json:"fallback"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Store is a SQLite route repository. It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path. ":memory:" gives a private
// in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps ":memory:" a single database and serialises
	// writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	PRAGMA busy_timeout = 5000;

	CREATE TABLE IF NOT EXISTS routes (
		id TEXT PRIMARY KEY,
		run_id TEXT NOT NULL,
		agent_id INTEGER NOT NULL,
		origin INTEGER NOT NULL,
		destination INTEGER NOT NULL,
		route_choice TEXT NOT NULL,
		sequence JSON NOT NULL,
		fallback INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_routes_run ON routes(run_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts routes in one transaction. Either all rows are stored or
// none.
func (s *Store) Save(ctx context.Context, routes ...Route) error {
	for i := range routes {
		if err := validate.Struct(&routes[i]); err != nil {
			return fmt.Errorf("%w: route %d: %v", ErrInvalidRoute, i, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO routes (id, run_id, agent_id, origin, destination, route_choice, sequence, fallback, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range routes {
		seq, err := json.Marshal(r.Sequence)
		if err != nil {
			return fmt.Errorf("failed to marshal sequence: %w", err)
		}
		created := r.CreatedAt
		if created.IsZero() {
			created = time.Now()
		}
		if _, err := stmt.ExecContext(ctx,
			r.ID, r.RunID, r.AgentID, int64(r.Origin), int64(r.Destination), r.RouteChoice,
			string(seq), boolToInt(r.Fallback), created.UTC().Format(time.RFC3339Nano),
		); err != nil {
			return fmt.Errorf("failed to insert route %s: %w", r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit routes: %w", err)
	}

	return nil
}

// ListByRun returns the routes of one run in insertion order.
func (s *Store) ListByRun(ctx context.Context, runID string) ([]Route, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, agent_id, origin, destination, route_choice, sequence, fallback, created_at
		FROM routes
		WHERE run_id = ?
		ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query routes: %w", err)
	}
	defer rows.Close()

	var out []Route
	for rows.Next() {
		r, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating routes: %w", err)
	}

	return out, nil
}

// Runs returns the distinct run ids in order of first insertion.
func (s *Store) Runs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id FROM routes GROUP BY run_id ORDER BY MIN(rowid)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, id)
	}

	return out, rows.Err()
}

func scanRoute(rows *sql.Rows) (Route, error) {
	var (
		r                   Route
		origin, destination int64
		seq, created        string
		fallback            int
	)
	if err := rows.Scan(&r.ID, &r.RunID, &r.AgentID, &origin, &destination,
		&r.RouteChoice, &seq, &fallback, &created); err != nil {
		return Route{}, fmt.Errorf("failed to scan route: %w", err)
	}
	if err := json.Unmarshal([]byte(seq), &r.Sequence); err != nil {
		return Route{}, fmt.Errorf("failed to unmarshal sequence of %s: %w", r.ID, err)
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Route{}, fmt.Errorf("failed to parse created_at of %s: %w", r.ID, err)
	}
	r.Origin, r.Destination = core.NodeID(origin), core.NodeID(destination)
	r.Fallback = fallback != 0
	r.CreatedAt = t

	return r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
