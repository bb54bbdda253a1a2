// apps/solver/assets/embed.go
//
// Embedded default word resources for the solver.
//   - dictionary.txt: one "<word> <frequency>" pair per line.
//   - answers.txt: the fixed evaluation answer list, one word per line.
//
// These are small defaults so the simulator runs out of the box; full-size
// corpora can be supplied via SOLVER_DICTIONARY_FILE / SOLVER_ANSWERS_FILE.

package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed dictionary.txt answers.txt
var FS embed.FS

// Dictionary returns the raw embedded dictionary text.
func Dictionary() (string, error) {
	b, err := FS.ReadFile("dictionary.txt")
	return string(b), err
}

// AnswersList returns the embedded evaluation answers, one per entry.
func AnswersList() ([]string, error) {
	f, err := FS.Open("answers.txt")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}
