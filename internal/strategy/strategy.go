// apps/solver/internal/strategy/strategy.go
//
// Scoring-strategy family for the simulator.
//
// Every strategy implements Guesser: given the (word, pattern) history of
// the current game, produce the next guess. All of them share the same
// skeleton — prune the remaining-candidate set against the latest
// observation, emit the fixed seed word on turn one, then rank the
// remaining candidates by a strategy-specific goodness — and differ only
// in the goodness function and how much of the search space they visit:
//
//   naive    — raw Shannon entropy over the 243 pattern buckets.
//   weighted — P(word) × entropy, favoring plausible answers.
//   cutoff   — weighted + live pattern-list pruning + candidate truncation.
//   escore   — minimizes a regression-estimated expected final score,
//              using the shared pattern cache and sigmoid weights.
//
// Tie-break: strategies only replace the incumbent on strict improvement,
// so ties go to the earliest candidate in frequency-descending (then
// lexicographic) order — the lexicon's deterministic entry order.

package strategy

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/solver/internal/cache"
	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/lexicon"
)

// SeedWord is the fixed first guess, chosen offline as empirically optimal
// for this engine. Not recomputed at runtime.
const SeedWord = "tares"

// Guess is one history entry: a guessed word and the pattern it received.
type Guess struct {
	Word string
	Mask feedback.Pattern
}

// Guesser produces the next guess for the current game. The returned word
// must be a member of the lexicon; the game loop treats anything else as a
// contract violation.
type Guesser interface {
	Guess(history []Guess) string
}

// Strategy names accepted by New.
const (
	NameNaive    = "naive"
	NameWeighted = "weighted"
	NameCutoff   = "cutoff"
	NameEScore   = "escore"
)

// Names lists the available strategies in complexity order.
func Names() []string {
	return []string{NameNaive, NameWeighted, NameCutoff, NameEScore}
}

// New constructs a fresh strategy instance for one game. The lexicon and
// cache table are shared across games; per-game state is owned by the
// returned Guesser.
func New(name string, lex *lexicon.Lexicon, table *cache.Table) (Guesser, error) {
	switch name {
	case NameNaive:
		return NewNaive(lex), nil
	case NameWeighted:
		return NewWeighted(lex), nil
	case NameCutoff:
		return NewCutoff(lex), nil
	case NameEScore:
		return NewEScore(lex, table), nil
	default:
		return nil, fmt.Errorf("strategy: unknown strategy %q", name)
	}
}

// remaining is a copy-on-write view over the lexicon's entry slice. It
// starts borrowed (aliasing the shared immutable slice) and becomes owned
// on the first prune; once owned, later prunes filter in place.
type remaining struct {
	entries []lexicon.Entry
	owned   bool
}

func newRemaining(lex *lexicon.Lexicon) remaining {
	return remaining{entries: lex.Entries()}
}

// prune keeps only entries consistent with the latest observation.
func (r *remaining) prune(last Guess) {
	if r.owned {
		kept := r.entries[:0]
		for _, e := range r.entries {
			if feedback.Matches(last.Word, last.Mask, e.Word) {
				kept = append(kept, e)
			}
		}
		r.entries = kept
		return
	}
	kept := make([]lexicon.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if feedback.Matches(last.Word, last.Mask, e.Word) {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	r.owned = true
}

// pruneByCache is the cache-backed variant: candidates survive when their
// memoized pattern against the guessed word equals the observed one.
func (r *remaining) pruneByCache(table *cache.Table, guessRank int, last Guess) {
	ref := last.Mask.Index()
	row := table.Row(guessRank)
	keep := func(e lexicon.Entry) bool {
		idx, err := cache.Lookup(row, last.Word, e.Word, e.Rank)
		return err == nil && idx == ref
	}
	if r.owned {
		kept := r.entries[:0]
		for _, e := range r.entries {
			if keep(e) {
				kept = append(kept, e)
			}
		}
		r.entries = kept
		return
	}
	kept := make([]lexicon.Entry, 0, len(r.entries))
	for _, e := range r.entries {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	r.owned = true
}

// totalCount sums the raw frequency weight of the remaining entries.
func (r *remaining) totalCount() uint64 {
	var sum uint64
	for _, e := range r.entries {
		sum += e.Count
	}
	return sum
}
