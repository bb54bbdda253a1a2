package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testRun() (Run, []GameResult) {
	run := Run{
		Strategy:  "escore",
		Played:    3,
		Solved:    2,
		Failed:    1,
		Average:   3.5,
		StartedAt: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	results := []GameResult{
		{Answer: "right", Turns: 3, Solved: true},
		{Answer: "wrong", Turns: 4, Solved: true},
		{Answer: "crane", Turns: 0, Solved: false},
	}
	return run, results
}

func stores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "results.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { sq.Close() })
	return map[string]Store{"memory": NewMemoryStore(), "sqlite": sq}
}

func TestSaveAndLoadRun(t *testing.T) {
	ctx := context.Background()
	run, results := testRun()

	for name, s := range stores(t) {
		id, err := s.SaveRun(ctx, run, results)
		assert.NoError(t, err, name)
		assert.NotZero(t, id, name)

		runs, err := s.Runs(ctx, 10)
		assert.NoError(t, err, name)
		assert.Len(t, runs, 1, name)
		got := runs[0]
		assert.Equal(t, id, got.ID, name)
		assert.Equal(t, run.Strategy, got.Strategy, name)
		assert.Equal(t, run.Played, got.Played, name)
		assert.Equal(t, run.Solved, got.Solved, name)
		assert.Equal(t, run.Failed, got.Failed, name)
		assert.InDelta(t, run.Average, got.Average, 1e-9, name)

		back, err := s.Results(ctx, id)
		assert.NoError(t, err, name)
		assert.Equal(t, results, back, name)
	}
}

func TestRunsNewestFirstWithLimit(t *testing.T) {
	ctx := context.Background()
	run, results := testRun()

	for name, s := range stores(t) {
		run.Strategy = "naive"
		_, err := s.SaveRun(ctx, run, results)
		assert.NoError(t, err, name)
		run.Strategy = "cutoff"
		_, err = s.SaveRun(ctx, run, results)
		assert.NoError(t, err, name)

		runs, err := s.Runs(ctx, 1)
		assert.NoError(t, err, name)
		assert.Len(t, runs, 1, name)
		assert.Equal(t, "cutoff", runs[0].Strategy, name)
	}
}

func TestResultsUnknownRun(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		_, err := s.Results(ctx, 9999)
		assert.ErrorIs(t, err, ErrNotFound, name)
	}
}
