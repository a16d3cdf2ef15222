// Package catalog records analysis runs and their artifacts in a SQLite
// database, so that parameter sweeps producing hundreds of files stay
// queryable after the fact.
package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/cwbudde/algo-pointspec/analyze"
)

// Store is a SQLite-backed run/artifact catalog. It implements
// [analyze.Recorder].
type Store struct {
	path string

	mu sync.Mutex
	db *sql.DB
}

// Open returns a store for the database at path. The database is not
// touched until [Store.Init].
func Open(path string) *Store {
	return &Store{path: path}
}

// Init opens the database and creates the schema if needed. Calling Init on
// an initialized store is a no-op.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.path == "" {
		return errors.New("catalog: database path is required")
	}
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("catalog: opening %s: %w", s.path, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("catalog: opening %s: %w", s.path, err)
	}

	if err := createTables(ctx, db); err != nil {
		_ = db.Close()
		return err
	}

	s.db = db
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	return err
}

func (s *Store) getDB() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, errors.New("catalog: store is not initialized")
	}
	return s.db, nil
}

func createTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id          TEXT PRIMARY KEY,
			sampler     TEXT NOT NULL,
			samples     TEXT NOT NULL,
			trials      INTEGER NOT NULL,
			freq_step   REAL NOT NULL,
			resolution  INTEGER NOT NULL,
			started_at  TEXT NOT NULL,
			finished_at TEXT
		);
		CREATE TABLE IF NOT EXISTS artifacts (
			run_id     TEXT NOT NULL REFERENCES runs(id),
			kind       TEXT NOT NULL,
			sampler    TEXT NOT NULL,
			n          INTEGER NOT NULL,
			trial      INTEGER NOT NULL,
			path       TEXT NOT NULL,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS artifacts_run ON artifacts(run_id);
	`)
	if err != nil {
		return fmt.Errorf("catalog: creating schema: %w", err)
	}
	return nil
}

// BeginRun inserts a run row and returns its generated ID.
func (s *Store) BeginRun(ctx context.Context, meta analyze.RunMeta) (string, error) {
	db, err := s.getDB()
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	_, err = db.ExecContext(ctx, `
		INSERT INTO runs (id, sampler, samples, trials, freq_step, resolution, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, meta.Sampler, joinInts(meta.Samples), meta.Trials, meta.FreqStep, meta.Resolution,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("catalog: inserting run: %w", err)
	}

	return id, nil
}

// RecordArtifact inserts one artifact row for the given run.
func (s *Store) RecordArtifact(ctx context.Context, runID string, art analyze.Artifact) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO artifacts (run_id, kind, sampler, n, trial, path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, runID, art.Kind, art.Sampler, art.N, art.Trial, art.Path,
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("catalog: inserting artifact: %w", err)
	}

	return nil
}

// FinishRun stamps the run's completion time.
func (s *Store) FinishRun(ctx context.Context, runID string) error {
	db, err := s.getDB()
	if err != nil {
		return err
	}

	res, err := db.ExecContext(ctx, `UPDATE runs SET finished_at = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), runID)
	if err != nil {
		return fmt.Errorf("catalog: finishing run: %w", err)
	}

	affected, err := res.RowsAffected()
	if err == nil && affected == 0 {
		return fmt.Errorf("catalog: unknown run %s", runID)
	}
	return nil
}

// Artifacts returns all artifacts recorded for runID, in insertion order.
func (s *Store) Artifacts(ctx context.Context, runID string) ([]analyze.Artifact, error) {
	db, err := s.getDB()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT kind, sampler, n, trial, path FROM artifacts
		WHERE run_id = ? ORDER BY rowid
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("catalog: querying artifacts: %w", err)
	}
	defer rows.Close()

	var arts []analyze.Artifact
	for rows.Next() {
		var art analyze.Artifact
		if err := rows.Scan(&art.Kind, &art.Sampler, &art.N, &art.Trial, &art.Path); err != nil {
			return nil, fmt.Errorf("catalog: scanning artifact: %w", err)
		}
		arts = append(arts, art)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: querying artifacts: %w", err)
	}

	return arts, nil
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
