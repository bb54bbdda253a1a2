// apps/solver/main.go
//
// Entry point for the Wordle strategy simulator.
//
// Default mode plays the configured strategy over the evaluation answer
// list and reports the score distribution. With -serve it instead exposes
// the suggest API for interactive use. With -db the run summary and
// per-game results are persisted to SQLite.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/cache"
	"github.com/robalobadob/wordle/apps/solver/internal/httpserver"
	"github.com/robalobadob/wordle/apps/solver/internal/lexicon"
	"github.com/robalobadob/wordle/apps/solver/internal/sim"
	"github.com/robalobadob/wordle/apps/solver/internal/store"
	"github.com/robalobadob/wordle/apps/solver/internal/strategy"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var (
		strategyName = flag.String("strategy", strategy.NameEScore,
			"strategy to simulate: "+strings.Join(strategy.Names(), "|"))
		maxGames = flag.Int("max", 0, "max number of games to play (0 = full answer list)")
		parallel = flag.Int("parallel", runtime.NumCPU(), "number of games to run concurrently")
		dbPath   = flag.String("db", os.Getenv("SOLVER_RESULTS_DB"), "SQLite path for persisting results (empty = don't persist)")
		serve    = flag.String("serve", "", "serve the suggest API on this address instead of simulating, e.g. :5180")
		progress = flag.Bool("progress", true, "show a progress bar while simulating")
	)
	flag.Parse()

	lex, err := lexicon.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load dictionary")
	}
	table := cache.New(lex.Len())
	log.Info().Int("words", lex.Len()).Msg("dictionary loaded")

	if *serve != "" {
		srv := httpserver.New(lex, table)
		log.Info().Str("addr", *serve).Msg("starting suggest server")
		if err := srv.Start(*serve); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
		return
	}

	answers, err := lexicon.LoadAnswers()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load answer list")
	}

	startedAt := time.Now()
	runner := sim.NewRunner(lex, table, answers)
	summary, results, err := runner.Run(context.Background(), sim.Config{
		Strategy: *strategyName,
		MaxGames: *maxGames,
		Parallel: *parallel,
		Progress: *progress,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	log.Info().
		Str("strategy", summary.Strategy).
		Int("played", summary.Played).
		Int("solved", summary.Solved).
		Int("failed", summary.Failed).
		Float64("average", summary.Average()).
		Dur("elapsed", time.Since(startedAt)).
		Msg("simulation finished")
	fmt.Printf("average score: %.2f\n", summary.Average())

	if *dbPath != "" {
		if err := persist(*dbPath, summary, results, startedAt); err != nil {
			log.Fatal().Err(err).Msg("failed to persist results")
		}
	}
}

// persist records the run in the SQLite results database.
func persist(dbPath string, summary sim.Summary, results []sim.Result, startedAt time.Time) error {
	st, err := store.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	rows := make([]store.GameResult, len(results))
	for i, r := range results {
		rows[i] = store.GameResult{Answer: r.Answer, Turns: r.Turns, Solved: r.Solved}
	}
	id, err := st.SaveRun(context.Background(), store.Run{
		Strategy:  summary.Strategy,
		Played:    summary.Played,
		Solved:    summary.Solved,
		Failed:    summary.Failed,
		Average:   summary.Average(),
		StartedAt: startedAt,
	}, rows)
	if err != nil {
		return err
	}
	log.Info().Int64("run_id", id).Str("db", dbPath).Msg("results persisted")
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
