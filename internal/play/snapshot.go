package play

import "github.com/robalobadob/wordle/apps/wordle-go/internal/game"

// KeyRows is the on-screen keyboard layout.
var KeyRows = [][]string{
	{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
	{"A", "S", "D", "F", "G", "H", "J", "K", "L"},
	{"ENTER", "Z", "X", "C", "V", "B", "N", "M", "DELETE"},
}

// Snapshot is everything a renderer needs to draw a table.
type Snapshot struct {
	ID          string                          `json:"id"`
	State       game.State                      `json:"state"`
	Row         int                             `json:"row"`
	Board       [game.Rows][game.Cols]game.Tile `json:"board"`
	Keys        [][]Key                         `json:"keys"`
	Message     string                          `json:"message,omitempty"`
	Error       string                          `json:"error,omitempty"`
	Solution    string                          `json:"solution,omitempty"`
	Celebration *Celebration                    `json:"celebration,omitempty"`
}

// Key is one on-screen key and its aggregated mark.
type Key struct {
	Key  string    `json:"key"`
	Mark game.Mark `json:"mark,omitempty"`
}

// Celebration is the staged reveal that replaces the result in the
// celebration variant.
type Celebration struct {
	Tiles    []string `json:"tiles"`
	Revealed int      `json:"revealed"`
	Total    int      `json:"total"`
	Done     bool     `json:"done"`
	Dialog   bool     `json:"dialog"`
}

func keys(kb map[string]game.Mark) [][]Key {
	out := make([][]Key, len(KeyRows))
	for i, row := range KeyRows {
		out[i] = make([]Key, len(row))
		for j, k := range row {
			out[i][j] = Key{Key: k, Mark: kb[k]}
		}
	}
	return out
}
