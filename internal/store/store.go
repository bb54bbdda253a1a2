// apps/solver/internal/store/store.go
//
// Persistence for simulation runs.
// Responsibilities:
//   - Define the Store interface used by the CLI to record finished runs
//     and browse past ones.
//   - Provide the in-memory implementation used in tests and when no
//     database path is configured.
//
// Characteristics of the memory store:
//   - Concurrency-safe via RWMutex (concurrent reads allowed).
//   - State is lost when the process exits; use the SQLite store for
//     anything worth keeping.

package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Run is one finished simulation batch.
type Run struct {
	ID        int64
	Strategy  string
	Played    int
	Solved    int
	Failed    int
	Average   float64 // mean turns over solved games
	StartedAt time.Time
}

// GameResult is one game inside a run.
type GameResult struct {
	Answer string
	Turns  int
	Solved bool
}

// Store persists simulation runs and their per-game results.
type Store interface {
	// SaveRun records a run with its games and returns the run ID.
	SaveRun(ctx context.Context, run Run, results []GameResult) (int64, error)

	// Runs lists the most recent runs, newest first.
	Runs(ctx context.Context, limit int) ([]Run, error)

	// Results returns the per-game rows of one run.
	Results(ctx context.Context, runID int64) ([]GameResult, error)

	// Close releases underlying resources.
	Close() error
}

// ErrNotFound is returned when a run ID does not exist.
var ErrNotFound = errors.New("store: run not found")

// memory is a map-backed Store implementation.
type memory struct {
	mu      sync.RWMutex
	nextID  int64
	runs    []Run
	results map[int64][]GameResult
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{nextID: 1, results: make(map[int64][]GameResult)}
}

func (m *memory) SaveRun(ctx context.Context, run Run, results []GameResult) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	run.ID = m.nextID
	m.nextID++
	m.runs = append(m.runs, run)
	m.results[run.ID] = append([]GameResult(nil), results...)
	return run.ID, nil
}

func (m *memory) Runs(ctx context.Context, limit int) ([]Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Run, 0, limit)
	for i := len(m.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.runs[i])
	}
	return out, nil
}

func (m *memory) Results(ctx context.Context, runID int64) ([]GameResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rs, ok := m.results[runID]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]GameResult(nil), rs...), nil
}

func (m *memory) Close() error { return nil }
