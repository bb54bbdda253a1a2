// apps/solver/internal/strategy/weighted.go
//
// Frequency-weighted entropy strategy. Same pattern-bucket entropy as
// naive, but the final goodness is P(word) × entropy: a guess is rewarded
// both for the information it yields and for being a plausible answer
// itself, so the strategy can "go for the win" on common words.

package strategy

import (
	"math"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/lexicon"
)

// Weighted maximizes P(word) × entropy.
type Weighted struct {
	remaining remaining
}

// NewWeighted builds a per-game instance over the shared lexicon.
func NewWeighted(lex *lexicon.Lexicon) *Weighted {
	return &Weighted{remaining: newRemaining(lex)}
}

func (s *Weighted) Guess(history []Guess) string {
	if len(history) > 0 {
		s.remaining.prune(history[len(history)-1])
	}
	if len(history) == 0 {
		return SeedWord
	}

	remainingCount := float64(s.remaining.totalCount())
	patterns := feedback.AllPatterns()

	var (
		best         string
		bestGoodness float64
	)
	for _, e := range s.remaining.entries {
		sum := 0.0
		for _, pattern := range patterns {
			var inPattern uint64
			for _, cand := range s.remaining.entries {
				if feedback.Matches(e.Word, pattern, cand.Word) {
					inPattern += cand.Count
				}
			}
			if inPattern == 0 {
				continue
			}
			p := float64(inPattern) / remainingCount
			sum += p * math.Log2(p)
		}

		pWord := float64(e.Count) / remainingCount
		goodness := pWord * -sum

		if best == "" || goodness > bestGoodness {
			best = e.Word
			bestGoodness = goodness
		}
	}
	return best
}
