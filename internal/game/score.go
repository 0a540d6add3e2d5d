// internal/game/score.go
//
// Guess scoring. Two rules are available:
//   - Classify (default): every position is judged on its own. A guessed
//     letter that is not in place is "present" whenever the solution contains
//     it anywhere, so a doubled letter can be reported present twice even if
//     the solution holds it once.
//   - ClassifyStandard: the classic two-pass rule that consumes solution
//     letters, so duplicates are only credited as often as they occur.

package game

import (
	"fmt"
	"strings"
)

// Scorer maps (guess, solution) to one Mark per guess position.
type Scorer func(guess, solution string) []Mark

// Scoring rule names accepted by ScorerFor.
const (
	RuleSimple   = "simple"
	RuleStandard = "standard"
)

// ScorerFor resolves a rule name to its Scorer. An empty name selects the
// simple rule.
func ScorerFor(rule string) (Scorer, error) {
	switch strings.ToLower(strings.TrimSpace(rule)) {
	case "", RuleSimple:
		return Classify, nil
	case RuleStandard:
		return ClassifyStandard, nil
	}
	return nil, fmt.Errorf("game: unknown scoring rule %q", rule)
}

// Classify scores each position independently:
// equal letter → correct; letter anywhere in solution → present; else absent.
func Classify(guess, solution string) []Mark {
	res := make([]Mark, len(guess))
	for i := 0; i < len(guess); i++ {
		switch {
		case i < len(solution) && guess[i] == solution[i]:
			res[i] = MarkCorrect
		case strings.IndexByte(solution, guess[i]) >= 0:
			res[i] = MarkPresent
		default:
			res[i] = MarkAbsent
		}
	}
	return res
}

// ClassifyStandard implements the two-pass Wordle rule.
//
// Pass 1 marks exact matches and counts the remaining solution letters.
// Pass 2 marks a non-matching guess letter present while unused copies of it
// remain, absent otherwise.
func ClassifyStandard(guess, solution string) []Mark {
	n := len(guess)
	res := make([]Mark, n)

	var counts [26]int
	for i := 0; i < n; i++ {
		if i < len(solution) && guess[i] == solution[i] {
			res[i] = MarkCorrect
		} else if i < len(solution) {
			if j := idx(solution[i]); j >= 0 {
				counts[j]++
			}
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		if j := idx(guess[i]); j >= 0 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25, or -1.
func idx(b byte) int {
	if b < 'A' || b > 'Z' {
		return -1
	}
	return int(b - 'A')
}
