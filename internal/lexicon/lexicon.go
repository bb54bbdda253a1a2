// apps/solver/internal/lexicon/lexicon.go
//
// Frequency-annotated word list management.
//
// Responsibilities:
//   - Parse "<word> <count>" dictionary lines into an immutable Lexicon,
//     sorted by descending frequency with a stable lexicographic tie-break.
//   - Precompute per-entry rank (cache addressing) and sigmoid-squashed
//     plausibility weight.
//   - Load dictionary/answers from environment-provided files or fall back
//     to the embedded defaults in assets/.
//
// Constraints:
//   • Words must be 5 lowercase ASCII letters.
//   • Malformed dictionary lines are unrecoverable load errors.
//   • A Lexicon is never mutated after construction; strategies derive
//     their own shrinking remaining-candidate copies from Entries().

package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/robalobadob/wordle/apps/solver/assets"
	"github.com/robalobadob/wordle/apps/solver/internal/feedback"
)

// Environment variables overriding the embedded defaults.
const (
	EnvDictionaryFile = "SOLVER_DICTIONARY_FILE"
	EnvAnswersFile    = "SOLVER_ANSWERS_FILE"
)

// Sigmoid calibration for mapping raw frequency fractions to plausibility
// weights. Fitted against the full-size frequency corpus; refit if the
// dictionary changes. The steep K with a low X0 acts as a sharp cutoff:
// long-tail words squash toward 0 while everything above the inflection
// is treated as roughly equally plausible.
const (
	SigmoidL  = 1.0
	SigmoidK  = 30000000.0
	SigmoidX0 = 0.00000497
)

// Sigmoid squashes a raw probability through the fitted logistic curve.
func Sigmoid(p float64) float64 {
	return SigmoidL / (1.0 + math.Exp(-SigmoidK*(p-SigmoidX0)))
}

// Entry is one dictionary word with its derived weights.
type Entry struct {
	Word  string  // 5 lowercase ASCII letters
	Count uint64  // absolute corpus frequency
	P     float64 // sigmoid-squashed plausibility weight
	Rank  int     // position in frequency-descending order; cache row/column id
}

// Lexicon is the immutable, frequency-sorted dictionary for one process.
type Lexicon struct {
	entries []Entry
	rank    map[string]int
	total   uint64
}

// Parse builds a Lexicon from dictionary text, one "<word> <count>" line at
// a time. Blank lines are skipped; anything else malformed is fatal.
func Parse(text string) (*Lexicon, error) {
	var (
		entries []Entry
		total   uint64
	)
	sc := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		word, countStr, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("lexicon: line %d: expected \"word count\", got %q", lineNo, line)
		}
		if !feedback.IsValidWord(word) {
			return nil, fmt.Errorf("lexicon: line %d: invalid word %q", lineNo, word)
		}
		count, err := strconv.ParseUint(countStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("lexicon: line %d: invalid count %q: %w", lineNo, countStr, err)
		}
		entries = append(entries, Entry{Word: word, Count: count})
		total += count
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("lexicon: scan: %w", err)
	}
	if len(entries) == 0 {
		return nil, errors.New("lexicon: dictionary is empty")
	}

	// Frequency-descending with a lexicographic tie-break keeps ranks (and
	// therefore every downstream tie-break) deterministic across runs.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})

	rank := make(map[string]int, len(entries))
	for i := range entries {
		if _, dup := rank[entries[i].Word]; dup {
			return nil, fmt.Errorf("lexicon: duplicate word %q", entries[i].Word)
		}
		entries[i].Rank = i
		entries[i].P = Sigmoid(float64(entries[i].Count) / float64(total))
		rank[entries[i].Word] = i
	}

	return &Lexicon{entries: entries, rank: rank, total: total}, nil
}

// Load reads the dictionary from SOLVER_DICTIONARY_FILE if set, otherwise
// from the embedded default.
func Load() (*Lexicon, error) {
	if path := os.Getenv(EnvDictionaryFile); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
		}
		return Parse(string(b))
	}
	text, err := assets.Dictionary()
	if err != nil {
		return nil, fmt.Errorf("lexicon: embedded dictionary: %w", err)
	}
	return Parse(text)
}

// LoadAnswers reads the evaluation answer list (whitespace-delimited) from
// SOLVER_ANSWERS_FILE if set, otherwise from the embedded default.
func LoadAnswers() ([]string, error) {
	if path := os.Getenv(EnvAnswersFile); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("lexicon: read %s: %w", path, err)
		}
		var out []string
		for _, w := range strings.Fields(string(b)) {
			w = strings.ToLower(w)
			if !feedback.IsValidWord(w) {
				return nil, fmt.Errorf("lexicon: invalid answer word %q", w)
			}
			out = append(out, w)
		}
		if len(out) == 0 {
			return nil, errors.New("lexicon: answers list is empty")
		}
		return out, nil
	}
	return assets.AnswersList()
}

// Entries returns the full frequency-sorted entry slice. Callers must treat
// it as read-only; strategies copy before filtering.
func (l *Lexicon) Entries() []Entry { return l.entries }

// Len returns the number of dictionary words.
func (l *Lexicon) Len() int { return len(l.entries) }

// Total returns the summed corpus frequency.
func (l *Lexicon) Total() uint64 { return l.total }

// Contains reports whether w is a dictionary word.
func (l *Lexicon) Contains(w string) bool {
	_, ok := l.rank[w]
	return ok
}

// Rank returns the frequency rank of w, or -1 if absent.
func (l *Lexicon) Rank(w string) int {
	if r, ok := l.rank[w]; ok {
		return r
	}
	return -1
}
