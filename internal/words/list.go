// internal/words/list.go
//
// List is the ordered, non-empty word list a game draws its solution from.
// It doubles as the dictionary of accepted guesses.

package words

import (
	"crypto/rand"
	"math/big"
)

// FallbackWord is used when no word source yields anything.
const FallbackWord = "REACT"

// List is an immutable ordered word list with set lookup.
// Words are uppercase, five letters, A–Z.
type List struct {
	words []string
	set   map[string]struct{}
}

// NewList builds a List from already normalized words. Duplicates are kept
// once, in first-seen order.
func NewList(ws []string) List {
	l := List{set: make(map[string]struct{}, len(ws))}
	for _, w := range ws {
		if _, dup := l.set[w]; dup {
			continue
		}
		l.set[w] = struct{}{}
		l.words = append(l.words, w)
	}
	return l
}

// Fallback returns the singleton list holding FallbackWord.
func Fallback() List { return NewList([]string{FallbackWord}) }

// Len returns the number of words.
func (l List) Len() int { return len(l.words) }

// At returns the i-th word.
func (l List) At(i int) string { return l.words[i] }

// Contains reports whether w is an accepted guess. w must already be uppercase.
func (l List) Contains(w string) bool {
	_, ok := l.set[w]
	return ok
}

// Words returns a copy of the list.
func (l List) Words() []string { return append([]string(nil), l.words...) }

// RandomIndex returns a uniform index in [0,n) from crypto/rand.
func RandomIndex(n int) int {
	if n <= 1 {
		return 0
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}
