// apps/solver/internal/strategy/naive.go
//
// Baseline entropy strategy. For every remaining candidate W and every one
// of the 243 possible patterns P, it sums the frequency mass of remaining
// words that would produce P if W were guessed, and scores W by the Shannon
// entropy of that distribution. O(n²·243) per turn; the rest of the family
// exists to make this tractable on large dictionaries.

package strategy

import (
	"math"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/lexicon"
)

// Naive maximizes raw information gain.
type Naive struct {
	remaining remaining
}

// NewNaive builds a per-game instance over the shared lexicon.
func NewNaive(lex *lexicon.Lexicon) *Naive {
	return &Naive{remaining: newRemaining(lex)}
}

func (n *Naive) Guess(history []Guess) string {
	if len(history) > 0 {
		n.remaining.prune(history[len(history)-1])
	}
	if len(history) == 0 {
		return SeedWord
	}

	remainingCount := float64(n.remaining.totalCount())
	patterns := feedback.AllPatterns()

	var (
		best         string
		bestGoodness float64
	)
	for _, e := range n.remaining.entries {
		// Entropy of the pattern distribution in a world where we guessed
		// e.Word: each bucket holds the mass of candidates that would have
		// produced that pattern.
		sum := 0.0
		for _, pattern := range patterns {
			var inPattern uint64
			for _, cand := range n.remaining.entries {
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
		goodness := -sum

		if best == "" || goodness > bestGoodness {
			best = e.Word
			bestGoodness = goodness
		}
	}
	return best
}
