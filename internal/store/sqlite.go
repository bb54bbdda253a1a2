// apps/solver/internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Open the database file with safe defaults (WAL, busy timeout,
//     foreign keys), creating the parent directory if needed.
//   - Apply the idempotent schema on open.
//   - Persist runs and per-game results transactionally.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	strategy   TEXT    NOT NULL,
	played     INTEGER NOT NULL,
	solved     INTEGER NOT NULL,
	failed     INTEGER NOT NULL,
	average    REAL    NOT NULL,
	started_at TIMESTAMP NOT NULL
);
CREATE TABLE IF NOT EXISTS run_results (
	run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	answer TEXT    NOT NULL,
	turns  INTEGER NOT NULL,
	solved INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_run_results_run ON run_results(run_id);
`

type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if missing) the results database at dsn.
func OpenSQLite(dsn string) (Store, error) {
	// Ensure directory exists for ./data/results.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", dsn, err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: set pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) SaveRun(ctx context.Context, run Run, results []GameResult) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs(strategy, played, solved, failed, average, started_at)
		 VALUES(?,?,?,?,?,?)`,
		run.Strategy, run.Played, run.Solved, run.Failed, run.Average, run.StartedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("store: insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("store: run id: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_results(run_id, answer, turns, solved) VALUES(?,?,?,?)`)
	if err != nil {
		return 0, fmt.Errorf("store: prepare results: %w", err)
	}
	defer stmt.Close()
	for _, r := range results {
		if _, err := stmt.ExecContext(ctx, id, r.Answer, r.Turns, r.Solved); err != nil {
			return 0, fmt.Errorf("store: insert result %q: %w", r.Answer, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("store: commit: %w", err)
	}
	return id, nil
}

func (s *sqliteStore) Runs(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, strategy, played, solved, failed, average, started_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Strategy, &r.Played, &r.Solved, &r.Failed, &r.Average, &r.StartedAt); err != nil {
			return nil, fmt.Errorf("store: scan run: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Results(ctx context.Context, runID int64) ([]GameResult, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id=?`, runID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: check run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT answer, turns, solved FROM run_results WHERE run_id=? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("store: query results: %w", err)
	}
	defer rows.Close()

	var out []GameResult
	for rows.Next() {
		var r GameResult
		if err := rows.Scan(&r.Answer, &r.Turns, &r.Solved); err != nil {
			return nil, fmt.Errorf("store: scan result: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *sqliteStore) Close() error { return s.db.Close() }
