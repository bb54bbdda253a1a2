// apps/solver/internal/cache/cache.go
//
// Write-once memoization of feedback patterns over the full dictionary.
//
// The table is a dim×dim byte matrix addressed by (guess rank, candidate
// rank). Cells hold the radix-3 pattern index of Compute(candidate, guess)
// and start at an empty sentinel; the first access computes and stores the
// value, later accesses are O(1) reads. Because the stored value is a pure
// function of the two words, concurrent fills of the same cell write the
// same byte — redundant work under contention, never a wrong answer — so
// the table is shared across all games in a run without locking.

package cache

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
)

// empty marks an unfilled cell. Valid pattern indices are 0..242.
const empty = 0xFF

// Table memoizes pattern indices for ordered (guess, candidate) word pairs.
type Table struct {
	dim   int
	cells []uint8
}

// New allocates a table covering dim dictionary ranks.
func New(dim int) *Table {
	cells := make([]uint8, dim*dim)
	for i := range cells {
		cells[i] = empty
	}
	return &Table{dim: dim, cells: cells}
}

// Dim returns the rank-space dimension.
func (t *Table) Dim() int { return t.dim }

// Row returns the cache line for one guess rank; scoring scans it linearly
// by candidate rank.
func (t *Table) Row(guessRank int) []uint8 {
	start := guessRank * t.dim
	return t.cells[start : start+t.dim]
}

// Lookup returns the pattern index for Compute(candidate, guess), filling
// the cell on first access. The row must come from Row(rank of guess).
func Lookup(row []uint8, guess, candidate string, candidateRank int) (uint8, error) {
	if v := row[candidateRank]; v != empty {
		return v, nil
	}
	p, err := feedback.Compute(candidate, guess)
	if err != nil {
		return 0, fmt.Errorf("cache: %w", err)
	}
	v := p.Index()
	row[candidateRank] = v
	return v, nil
}
