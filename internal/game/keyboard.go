package game

// Keyboard reduces submitted guesses to the best-known mark per letter,
// using precedence correct > present > absent. Letters that were never
// guessed are absent from the map.
//
// It is recomputed from scratch on every call so a later, better mark always
// wins and a correct letter can never be downgraded.
func Keyboard(guesses []string, solution string, score Scorer) map[string]Mark {
	if score == nil {
		score = Classify
	}
	out := make(map[string]Mark)
	for _, g := range guesses {
		marks := score(g, solution)
		for i := 0; i < len(g) && i < len(marks); i++ {
			k := string(g[i])
			if marks[i].rank() > out[k].rank() {
				out[k] = marks[i]
			}
		}
	}
	return out
}
