// apps/solver/internal/httpserver/server.go
//
// HTTP surface for interactive solver assistance.
// Responsibilities:
//   - Router + middleware (request IDs, panic recovery, timeouts, JSON).
//   - GET  /health — liveness probe.
//   - GET  /v1/strategies — available strategy names.
//   - POST /v1/suggest — given the game so far, return the next guess and
//     how many candidates remain.
//
// The server is a thin adapter: it replays the posted history through a
// fresh strategy instance per request, so concurrent requests share only
// the lexicon and the write-once pattern cache.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/solver/internal/cache"
	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/lexicon"
	"github.com/robalobadob/wordle/apps/solver/internal/strategy"
)

// Server bundles the router with the shared solver resources.
type Server struct {
	r     *chi.Mux
	lex   *lexicon.Lexicon
	table *cache.Table
}

// New constructs a Server, installs middleware, and registers routes.
func New(lex *lexicon.Lexicon, table *cache.Table) *Server {
	s := &Server{r: chi.NewRouter(), lex: lex, table: table}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(30 * time.Second))
	s.r.Use(jsonContentType)

	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/v1/strategies", s.handleStrategies)
	s.r.Post("/v1/suggest", s.handleSuggest)

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// ----------------------------- handlers -----------------------------------

type historyEntry struct {
	Word    string `json:"word"`
	Pattern string `json:"pattern"` // 5 symbols of G/Y/X, e.g. "XYXGG"
}

type suggestRequest struct {
	Strategy string         `json:"strategy,omitempty"` // defaults to escore
	History  []historyEntry `json:"history"`
}

type suggestResponse struct {
	Guess     string `json:"guess"`
	Remaining int    `json:"remaining"`
	Turn      int    `json:"turn"`
}

func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string][]string{"strategies": strategy.Names()})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Strategy == "" {
		req.Strategy = strategy.NameEScore
	}

	history, err := s.parseHistory(req.History)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	guesser, err := strategy.New(req.Strategy, s.lex, s.table)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Replay earlier observations so the strategy's remaining set catches
	// up, then ask for the next guess.
	for i := range history {
		_ = guesser.Guess(history[:i])
	}
	guess := guesser.Guess(history)
	if guess == "" || !s.lex.Contains(guess) {
		// Inconsistent history (or a strategy bug) left nothing to suggest.
		writeError(w, http.StatusUnprocessableEntity, "no candidate consistent with history")
		return
	}

	remaining := s.countRemaining(history)
	log.Debug().
		Str("strategy", req.Strategy).
		Str("guess", guess).
		Int("remaining", remaining).
		Msg("suggest")

	_ = json.NewEncoder(w).Encode(suggestResponse{
		Guess:     guess,
		Remaining: remaining,
		Turn:      len(history) + 1,
	})
}

func (s *Server) parseHistory(entries []historyEntry) ([]strategy.Guess, error) {
	out := make([]strategy.Guess, 0, len(entries))
	for _, e := range entries {
		if !s.lex.Contains(e.Word) {
			return nil, errors.New("history word not in dictionary: " + e.Word)
		}
		mask, err := feedback.ParsePattern(e.Pattern)
		if err != nil {
			return nil, err
		}
		out = append(out, strategy.Guess{Word: e.Word, Mask: mask})
	}
	return out, nil
}

// countRemaining filters the full lexicon against the whole history.
func (s *Server) countRemaining(history []strategy.Guess) int {
	n := 0
	for _, e := range s.lex.Entries() {
		ok := true
		for _, h := range history {
			if !feedback.Matches(h.Word, h.Mask, e.Word) {
				ok = false
				break
			}
		}
		if ok {
			n++
		}
	}
	return n
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
