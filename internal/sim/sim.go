// apps/solver/internal/sim/sim.go
//
// Batch simulation driver.
// Responsibilities:
//   - Run a strategy over the fixed evaluation answer list, one fresh
//     strategy instance per game.
//   - Optionally fan games out over an errgroup worker pool; the lexicon
//     and pattern-cache table are the only shared state and are safe to
//     share (immutable / write-once idempotent).
//   - Aggregate the score distribution. Games that exhaust the turn
//     ceiling count as failures and are excluded from the average —
//     numerator and denominator both.

package sim

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/solver/internal/cache"
	"github.com/robalobadob/wordle/apps/solver/internal/game"
	"github.com/robalobadob/wordle/apps/solver/internal/lexicon"
	"github.com/robalobadob/wordle/apps/solver/internal/strategy"
)

// Config selects what to simulate and how.
type Config struct {
	Strategy string // strategy name, see strategy.Names
	MaxGames int    // cap on games played; 0 means the full answer list
	Parallel int    // worker count; values <= 1 run sequentially
	Progress bool   // render a terminal progress bar
}

// Result is the outcome of one game.
type Result struct {
	Answer string
	Turns  int // 1-based turn the answer was found on; 0 if failed
	Solved bool
}

// Summary aggregates a whole run.
type Summary struct {
	Strategy   string
	Played     int
	Solved     int
	Failed     int
	TotalTurns int
	MinTurns   int
	MaxTurns   int
	Histogram  [game.MaxTurns + 1]int // index = turns; failures not counted
}

// Average is the mean turn count over solved games only.
func (s Summary) Average() float64 {
	if s.Solved == 0 {
		return 0
	}
	return float64(s.TotalTurns) / float64(s.Solved)
}

// Runner owns the shared run-wide resources.
type Runner struct {
	lex     *lexicon.Lexicon
	table   *cache.Table
	answers []string
}

// NewRunner wires a runner over the shared lexicon, cache table, and
// evaluation answer list.
func NewRunner(lex *lexicon.Lexicon, table *cache.Table, answers []string) *Runner {
	return &Runner{lex: lex, table: table, answers: answers}
}

// Run plays the configured batch and returns the summary plus per-game
// results in answer-list order. A strategy contract violation aborts the
// whole run: it signals a bug, not a simulation outcome.
func (r *Runner) Run(ctx context.Context, cfg Config) (Summary, []Result, error) {
	answers := r.answers
	if cfg.MaxGames > 0 && cfg.MaxGames < len(answers) {
		answers = answers[:cfg.MaxGames]
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.Default(int64(len(answers)))
	}

	session := game.NewSession(r.lex)
	results := make([]Result, len(answers))

	play := func(i int) error {
		guesser, err := strategy.New(cfg.Strategy, r.lex, r.table)
		if err != nil {
			return err
		}
		turns, solved, err := session.Play(answers[i], guesser)
		if err != nil {
			return fmt.Errorf("sim: game %q: %w", answers[i], err)
		}
		results[i] = Result{Answer: answers[i], Turns: turns, Solved: solved}
		if solved {
			log.Debug().Str("answer", answers[i]).Int("turns", turns).Msg("guessed")
		} else {
			log.Warn().Str("answer", answers[i]).Msg("failed to guess within the ceiling")
		}
		if bar != nil {
			_ = bar.Add(1)
		}
		return nil
	}

	if cfg.Parallel > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Parallel)
		for i := range answers {
			i := i
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				return play(i)
			})
		}
		if err := g.Wait(); err != nil {
			return Summary{}, nil, err
		}
	} else {
		for i := range answers {
			if err := ctx.Err(); err != nil {
				return Summary{}, nil, err
			}
			if err := play(i); err != nil {
				return Summary{}, nil, err
			}
		}
	}

	return summarize(cfg.Strategy, results), results, nil
}

func summarize(strategyName string, results []Result) Summary {
	s := Summary{Strategy: strategyName, Played: len(results)}
	for _, res := range results {
		if !res.Solved {
			s.Failed++
			continue
		}
		if s.Solved == 0 {
			s.MinTurns, s.MaxTurns = res.Turns, res.Turns
		} else {
			s.MinTurns = minOf(s.MinTurns, res.Turns)
			s.MaxTurns = maxOf(s.MaxTurns, res.Turns)
		}
		s.Solved++
		s.TotalTurns += res.Turns
		s.Histogram[res.Turns]++
	}
	return s
}
