package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/solver/internal/lexicon"
	"github.com/robalobadob/wordle/apps/solver/internal/strategy"
)

// guesserFunc adapts a closure to the strategy.Guesser interface, the same
// trick the test suites use for scripted opponents.
type guesserFunc func(history []strategy.Guess) string

func (f guesserFunc) Guess(history []strategy.Guess) string { return f(history) }

func testSession(t *testing.T) *Session {
	t.Helper()
	lex, err := lexicon.Parse("right 100\nwrong 50\ntares 25\n")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return NewSession(lex)
}

func TestPlayFirstGuessCorrect(t *testing.T) {
	s := testSession(t)
	turns, solved, err := s.Play("right", guesserFunc(func([]strategy.Guess) string {
		return "right"
	}))
	assert.NoError(t, err)
	assert.True(t, solved)
	assert.Equal(t, 1, turns)
}

func TestPlayNthGuessCorrect(t *testing.T) {
	s := testSession(t)
	for n := 2; n <= 6; n++ {
		n := n
		turns, solved, err := s.Play("right", guesserFunc(func(history []strategy.Guess) string {
			if len(history) == n-1 {
				return "right"
			}
			return "wrong"
		}))
		assert.NoError(t, err)
		assert.True(t, solved)
		assert.Equal(t, n, turns)
	}
}

func TestPlaySecondGuessAfterScriptedFirst(t *testing.T) {
	s := testSession(t)
	turns, solved, err := s.Play("wrong", guesserFunc(func(history []strategy.Guess) string {
		if len(history) == 0 {
			return "right"
		}
		return "wrong"
	}))
	assert.NoError(t, err)
	assert.True(t, solved)
	assert.Equal(t, 2, turns)
}

func TestPlayExhaustsAtCeiling(t *testing.T) {
	s := testSession(t)
	calls := 0
	turns, solved, err := s.Play("right", guesserFunc(func(history []strategy.Guess) string {
		calls++
		return "wrong"
	}))
	assert.NoError(t, err)
	assert.False(t, solved)
	assert.Zero(t, turns)
	assert.Equal(t, MaxTurns, calls)
}

func TestPlayHistoryGrowsEachTurn(t *testing.T) {
	s := testSession(t)
	var lengths []int
	_, _, err := s.Play("right", guesserFunc(func(history []strategy.Guess) string {
		lengths = append(lengths, len(history))
		if len(history) == 3 {
			return "right"
		}
		return "wrong"
	}))
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, lengths)
}

func TestPlayContractViolation(t *testing.T) {
	s := testSession(t)
	_, _, err := s.Play("right", guesserFunc(func([]strategy.Guess) string {
		return "zzzzz"
	}))
	assert.Error(t, err)
}

func TestPlayInvalidAnswer(t *testing.T) {
	s := testSession(t)
	_, _, err := s.Play("nope", guesserFunc(func([]strategy.Guess) string {
		return "right"
	}))
	assert.Error(t, err)
}
