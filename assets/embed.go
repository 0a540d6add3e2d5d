// assets/embed.go
//
// Embedded static assets.
//   - words.txt: newline-delimited word list. It is both the solution pool
//     and the dictionary of accepted guesses, and is served verbatim at
//     GET /words.txt so remote clients load the same list.
package assets

import "embed"

//go:embed words.txt
var FS embed.FS

// WordsFile is the name of the embedded word list inside FS.
const WordsFile = "words.txt"

// WordsText returns the raw embedded word list.
func WordsText() []byte {
	b, _ := FS.ReadFile(WordsFile)
	return b
}
