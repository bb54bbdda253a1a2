// apps/solver/internal/game/game.go
//
// Single-game simulation loop.
// Responsibilities:
//   - Drive one strategy against one hidden answer: request a guess, score
//     it, append the observation to the history, repeat.
//   - Enforce the strategy contract (every guess must be a lexicon word).
//   - Stop on a match or at the turn ceiling.
//
// The ceiling is deliberately far above Wordle's six-guess rule so slow
// strategies still produce a full score distribution for comparison
// instead of having their tail chopped off.

package game

import (
	"fmt"

	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
	"github.com/robalobadob/wordle/apps/solver/internal/lexicon"
	"github.com/robalobadob/wordle/apps/solver/internal/strategy"
)

// MaxTurns is the simulation turn ceiling per game.
const MaxTurns = 32

// Session plays games against one shared lexicon. Safe for concurrent use;
// all per-game state lives in the guesser and the local history.
type Session struct {
	lex *lexicon.Lexicon
}

// NewSession binds a session to the shared lexicon.
func NewSession(lex *lexicon.Lexicon) *Session {
	return &Session{lex: lex}
}

// Play runs one full game of guesser against answer.
//
// Returns:
//   - turns, true, nil  — solved on that turn (1-based).
//   - 0, false, nil     — turn ceiling exhausted without a match.
//   - 0, false, err     — the strategy broke its contract by returning a
//     word outside the lexicon, or the answer itself is invalid.
func (s *Session) Play(answer string, guesser strategy.Guesser) (int, bool, error) {
	if !feedback.IsValidWord(answer) {
		return 0, false, fmt.Errorf("game: invalid answer %q", answer)
	}

	var history []strategy.Guess
	for turn := 1; turn <= MaxTurns; turn++ {
		guess := guesser.Guess(history)
		if !s.lex.Contains(guess) {
			return 0, false, fmt.Errorf("game: guess %q on turn %d is not in the lexicon", guess, turn)
		}
		if guess == answer {
			return turn, true, nil
		}

		mask, err := feedback.Compute(answer, guess)
		if err != nil {
			return 0, false, fmt.Errorf("game: score %q vs %q: %w", guess, answer, err)
		}
		history = append(history, strategy.Guess{Word: guess, Mask: mask})
	}
	return 0, false, nil
}
