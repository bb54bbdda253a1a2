package lexicon

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestParseSortsByFrequency(t *testing.T) {
	l, err := Parse("crane 10\ntares 500\nwrong 10\nright 90\n")
	assert.NoError(t, err)
	assert.Equal(t, 4, l.Len())

	words := make([]string, 0, l.Len())
	for _, e := range l.Entries() {
		words = append(words, e.Word)
	}
	// Descending count; equal counts fall back to lexicographic order.
	assert.Equal(t, []string{"tares", "right", "crane", "wrong"}, words)

	assert.Equal(t, 0, l.Rank("tares"))
	assert.Equal(t, 3, l.Rank("wrong"))
	assert.Equal(t, -1, l.Rank("slate"))
	assert.Equal(t, uint64(610), l.Total())
}

func TestParseRanksMatchEntries(t *testing.T) {
	l, err := Parse("abcde 5\nfghij 4\nklmno 3\n")
	assert.NoError(t, err)
	for i, e := range l.Entries() {
		assert.Equal(t, i, e.Rank)
		assert.Equal(t, i, l.Rank(e.Word))
	}
}

func TestParseMalformedLines(t *testing.T) {
	for _, text := range []string{
		"tares",           // missing separator
		"tares abc",       // non-numeric count
		"tares -3",        // negative count
		"tare 100",        // short word
		"taress 100",      // long word
		"tar3s 100",       // non-letter
		"TARES 100",       // uppercase
		"",                // empty dictionary
		"tares 1\ntares 2", // duplicate word
	} {
		_, err := Parse(text)
		assert.Error(t, err, "text=%q", text)
	}
}

func TestContains(t *testing.T) {
	l, err := Parse("tares 100\nright 50\n")
	assert.NoError(t, err)
	assert.True(t, l.Contains("tares"))
	assert.False(t, l.Contains("wrong"))
}

func TestSigmoidCutoff(t *testing.T) {
	// Well below the inflection: effectively impossible.
	assert.Less(t, Sigmoid(0.0), 0.01)
	// Well above: effectively certain.
	assert.Greater(t, Sigmoid(0.001), 0.99)
	// Monotonic through the cutoff region.
	prev := -1.0
	for _, p := range []float64{0, 1e-7, 1e-6, SigmoidX0, 1e-5, 1e-4, 1e-3} {
		s := Sigmoid(p)
		assert.Greater(t, s, prev)
		prev = s
	}
	// Inflection point sits at L/2.
	assert.InDelta(t, SigmoidL/2, Sigmoid(SigmoidX0), 1e-9)
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Setenv(EnvDictionaryFile, "")
	t.Setenv(EnvAnswersFile, "")

	l, err := Load()
	assert.NoError(t, err)
	assert.True(t, l.Contains("tares"), "seed guess must be in the default dictionary")

	answers, err := LoadAnswers()
	assert.NoError(t, err)
	assert.NotEmpty(t, answers)
	for _, a := range answers {
		assert.True(t, l.Contains(a), "answer %q missing from dictionary", a)
	}
}

func TestLoadFromFiles(t *testing.T) {
	dict := t.TempDir() + "/dict.txt"
	answers := t.TempDir() + "/answers.txt"
	assert.NoError(t, writeFile(dict, "tares 100\nright 50\nwrong 25\n"))
	assert.NoError(t, writeFile(answers, "right wrong\n"))

	t.Setenv(EnvDictionaryFile, dict)
	t.Setenv(EnvAnswersFile, answers)

	l, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 3, l.Len())

	ans, err := LoadAnswers()
	assert.NoError(t, err)
	assert.Equal(t, []string{"right", "wrong"}, ans)
}
