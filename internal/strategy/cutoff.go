// apps/solver/internal/strategy/cutoff.go
//
// Weighted entropy with two accuracy/latency tradeoffs layered on top:
//
//   - Candidate truncation: per turn, only the first max(len/3, 16)
//     remaining candidates are evaluated. The lexicon is frequency-sorted,
//     so the visited prefix is the most plausible slice of the space.
//   - Live pattern pruning: patterns that produced zero mass for an
//     evaluated candidate are dropped from the working pattern list for the
//     rest of the game, shrinking the inner loop as evidence accumulates.
//
// The divisor and floor are tunable constants, not derived values.

package strategy

import (
	"math"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/lexicon"
)

// Truncation bounds for the cutoff strategy.
const (
	cutoffCandidateDivisor = 3
	cutoffCandidateFloor   = 16
)

// Cutoff maximizes P(word) × entropy over a truncated candidate prefix.
type Cutoff struct {
	remaining remaining
	patterns  []feedback.Pattern
}

// NewCutoff builds a per-game instance over the shared lexicon.
func NewCutoff(lex *lexicon.Lexicon) *Cutoff {
	return &Cutoff{
		remaining: newRemaining(lex),
		patterns:  feedback.AllPatterns(),
	}
}

func (s *Cutoff) Guess(history []Guess) string {
	if len(history) > 0 {
		s.remaining.prune(history[len(history)-1])
	}
	if len(history) == 0 {
		return SeedWord
	}

	remainingCount := float64(s.remaining.totalCount())

	stop := len(s.remaining.entries) / cutoffCandidateDivisor
	if stop < cutoffCandidateFloor {
		stop = cutoffCandidateFloor
	}

	var (
		best         string
		bestGoodness float64
	)
	for i, e := range s.remaining.entries {
		if i >= stop {
			break
		}

		sum := 0.0
		kept := s.patterns[:0]
		for _, pattern := range s.patterns {
			var inPattern uint64
			for _, cand := range s.remaining.entries {
				if feedback.Matches(e.Word, pattern, cand.Word) {
					inPattern += cand.Count
				}
			}
			if inPattern == 0 {
				// Dead pattern for this candidate; drop it going forward.
				continue
			}
			kept = append(kept, pattern)
			p := float64(inPattern) / remainingCount
			sum += p * math.Log2(p)
		}
		s.patterns = kept

		pWord := float64(e.Count) / remainingCount
		goodness := pWord * -sum

		if best == "" || goodness > bestGoodness {
			best = e.Word
			bestGoodness = goodness
		}
	}
	return best
}
