// apps/solver/internal/feedback/feedback.go
//
// Letter-feedback pattern engine.
// Responsibilities:
//   - Score a guess against a hidden answer with the classic two-pass
//     Wordle algorithm (duplicate-letter safe).
//   - Encode/decode the 5-slot Miss/Present/Hit pattern as a radix-3
//     index in [0, 243), used as a one-byte cache key.
//   - Test whether a past (guess, pattern) observation is consistent with
//     a candidate word, without knowing the true answer.
//
// Notes:
//   - Compute(answer, guess) is a pure function; both inputs must be
//     exactly five lowercase ASCII letters.
//   - The consistency check relies on the symmetry that guess G against
//     answer A yields pattern P iff guessing A against "answer" G does.

package feedback

import (
	"errors"
	"strings"
)

// WordLen is the fixed word length for the whole engine.
const WordLen = 5

// NumPatterns is the size of the pattern space: 3^WordLen.
const NumPatterns = 243

// Mark is the per-letter outcome of a guess, also a radix-3 digit.
type Mark uint8

const (
	MarkMiss    Mark = 0 // letter not in the answer (gray)
	MarkPresent Mark = 1 // letter in the answer, wrong position (yellow)
	MarkHit     Mark = 2 // letter in the correct position (green)
)

// Pattern is the full 5-letter outcome of one guess.
type Pattern [WordLen]Mark

// ErrInvalidWord is returned for inputs that are not 5 lowercase ASCII letters.
var ErrInvalidWord = errors.New("feedback: word must be 5 lowercase ascii letters")

// Compute scores guess against answer.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count remaining (non-hit) answer letters by letter index.
//
// Pass 2:
//   - For each non-hit guess letter: if there is remaining count for that
//     letter, mark Present and decrement the count; otherwise mark Miss.
//
// The per-letter counts ensure a repeated guess letter is marked Present at
// most as many times as unconsumed copies exist in the answer.
func Compute(answer, guess string) (Pattern, error) {
	var p Pattern
	if !IsValidWord(answer) || !IsValidWord(guess) {
		return p, ErrInvalidWord
	}

	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			p[i] = MarkHit
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < WordLen; i++ {
		if p[i] == MarkHit {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			p[i] = MarkPresent
			counts[j]--
		} else {
			p[i] = MarkMiss
		}
	}
	return p, nil
}

// Matches reports whether a past observation (guessed word + received mask)
// is consistent with candidate being the true answer.
func Matches(guessed string, mask Pattern, candidate string) bool {
	got, err := Compute(candidate, guessed)
	if err != nil {
		return false
	}
	return got == mask
}

// Index encodes the pattern as a radix-3 integer, position 0 being the most
// significant digit. The result fits in one byte.
func (p Pattern) Index() uint8 {
	var idx uint8
	for _, m := range p {
		idx = idx*3 + uint8(m)
	}
	return idx
}

// FromIndex decodes a radix-3 pattern index produced by Index.
func FromIndex(idx uint8) Pattern {
	var p Pattern
	for i := WordLen - 1; i >= 0; i-- {
		p[i] = Mark(idx % 3)
		idx /= 3
	}
	return p
}

// AllPatterns enumerates all 243 possible patterns in index order.
func AllPatterns() []Pattern {
	out := make([]Pattern, NumPatterns)
	for i := 0; i < NumPatterns; i++ {
		out[i] = FromIndex(uint8(i))
	}
	return out
}

// AllHit reports whether every position scored a Hit.
func (p Pattern) AllHit() bool {
	for _, m := range p {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// String renders the pattern with one letter per slot: G (hit), Y (present),
// X (miss). Handy in logs and test failures.
func (p Pattern) String() string {
	var b strings.Builder
	for _, m := range p {
		switch m {
		case MarkHit:
			b.WriteByte('G')
		case MarkPresent:
			b.WriteByte('Y')
		default:
			b.WriteByte('X')
		}
	}
	return b.String()
}

// ParsePattern is the inverse of String; it also accepts lowercase letters.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	if len(s) != WordLen {
		return p, errors.New("feedback: pattern must have 5 symbols")
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'G', 'g':
			p[i] = MarkHit
		case 'Y', 'y':
			p[i] = MarkPresent
		case 'X', 'x':
			p[i] = MarkMiss
		default:
			return p, errors.New("feedback: pattern symbols must be G/Y/X")
		}
	}
	return p, nil
}

// IsValidWord reports whether s is exactly 5 lowercase ASCII letters.
func IsValidWord(s string) bool {
	if len(s) != WordLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
