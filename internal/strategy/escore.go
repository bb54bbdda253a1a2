// apps/solver/internal/strategy/escore.go
//
// Expected-score strategy, the most aggressive variant. Instead of
// maximizing information gain it estimates the actual expected number of
// guesses the game will take if we guess a given word now, and minimizes
// that. Differences from the entropy strategies:
//
//   - Candidate weights are the lexicon's sigmoid-squashed plausibilities,
//     not raw counts, muting long-tail frequency noise.
//   - Pattern bucketing is a single linear scan over the remaining set
//     accumulating per-pattern running totals in a fixed 243-slot array;
//     each (guess, candidate) pair falls into exactly one bucket.
//   - Pattern indices come from the process-wide write-once cache table,
//     so no pair is ever scored twice across games.
//   - Candidate truncation at max(len/3, 20), like cutoff.

package strategy

import (
	"math"

	"github.com/robalobadob/wordle/apps/solver/internal/cache"
	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/lexicon"
)

// Truncation bounds for the expected-score strategy.
const (
	escoreCandidateDivisor = 3
	escoreCandidateFloor   = 20
)

// Regression fit for the expected number of further guesses needed when
// `entropy` bits of uncertainty remain. Derived by iterative regression
// against logged simulation data: log remaining entropy and actual
// guesses-to-finish under a pure entropy maximizer, regress, re-simulate
// with the fitted estimator, re-regress until the parameters settle.
// Calibration data for one specific dictionary — refit before trusting the
// numbers on a different corpus; the ln(a·entropy + b) form is what to keep.
const (
	EstStepsSlope     = 3.870
	EstStepsIntercept = 3.679
)

// EstStepsLeft estimates the expected number of additional guesses given
// the remaining entropy.
func EstStepsLeft(entropy float64) float64 {
	return math.Log(entropy*EstStepsSlope + EstStepsIntercept)
}

// EScore minimizes the regression-estimated expected final score.
type EScore struct {
	lex       *lexicon.Lexicon
	table     *cache.Table
	remaining remaining
}

// NewEScore builds a per-game instance sharing the process-wide lexicon
// and pattern-cache table.
func NewEScore(lex *lexicon.Lexicon, table *cache.Table) *EScore {
	return &EScore{lex: lex, table: table, remaining: newRemaining(lex)}
}

func (s *EScore) Guess(history []Guess) string {
	turn := float64(len(history))

	if len(history) > 0 {
		last := history[len(history)-1]
		s.remaining.pruneByCache(s.table, s.lex.Rank(last.Word), last)
	}
	if len(history) == 0 {
		return SeedWord
	}

	var remainingP float64
	for _, e := range s.remaining.entries {
		remainingP += e.P
	}
	remainingEntropy := 0.0
	for _, e := range s.remaining.entries {
		p := e.P / remainingP
		remainingEntropy -= p * math.Log2(p)
	}

	stop := len(s.remaining.entries) / escoreCandidateDivisor
	if stop < escoreCandidateFloor {
		stop = escoreCandidateFloor
	}

	var (
		best      string
		bestScore float64
	)
	for i, e := range s.remaining.entries {
		if i >= stop {
			break
		}

		var totals [feedback.NumPatterns]float64
		row := s.table.Row(e.Rank)
		for _, cand := range s.remaining.entries {
			// Lookup only fails on malformed words, which the lexicon
			// rejected at load time.
			idx, _ := cache.Lookup(row, e.Word, cand.Word, cand.Rank)
			totals[idx] += cand.P
		}

		sum := 0.0
		for _, mass := range totals {
			if mass == 0 {
				continue
			}
			p := mass / remainingP
			sum += p * math.Log2(p)
		}
		eInfo := -sum

		// Guessing e.Word ends the game next turn with probability pWord;
		// otherwise we pay this turn plus the estimated tail for whatever
		// uncertainty the guess leaves behind.
		pWord := e.P / remainingP
		eScore := pWord*(turn+1) +
			(1-pWord)*(turn+EstStepsLeft(remainingEntropy-eInfo))

		if best == "" || eScore < bestScore {
			best = e.Word
			bestScore = eScore
		}
	}
	return best
}
