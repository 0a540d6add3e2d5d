// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Mark: per-letter classification of a guess (correct/present/absent).
//   - State: lifecycle of a session (loading → playing → won|lost).
//   - Tile and Outcome: what a submission produces for renderers.

package game

// Board dimensions.
const (
	Rows = 6 // guess slots per game
	Cols = 5 // letters per word
)

// Mark represents the classification of a single letter in a guess.
//   - "correct": right letter, right position.
//   - "present": letter occurs in the solution at another position.
//   - "absent":  letter does not occur in the solution.
//
// The zero value means "not classified yet".
type Mark string

const (
	MarkNone    Mark = ""
	MarkAbsent  Mark = "absent"
	MarkPresent Mark = "present"
	MarkCorrect Mark = "correct"
)

// rank orders marks for keyboard precedence: correct > present > absent > none.
func (m Mark) rank() int {
	switch m {
	case MarkCorrect:
		return 3
	case MarkPresent:
		return 2
	case MarkAbsent:
		return 1
	}
	return 0
}

// State is the coarse lifecycle of a Session.
type State string

const (
	StateLoading State = "loading"
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// Over reports whether the game has ended (won or lost).
func (s State) Over() bool { return s == StateWon || s == StateLost }

// Tile is one board cell as rendered: a letter plus its mark.
// Tiles of the in-progress row carry letters but no mark.
type Tile struct {
	Letter string `json:"letter"`
	Mark   Mark   `json:"mark,omitempty"`
}

// Outcome describes an accepted submission.
type Outcome struct {
	Row     int    // slot the guess was written to
	Guess   string // the submitted word
	Marks   []Mark // per-position classification
	State   State  // state after the submission
	Message string // win/loss text; empty while still playing
}
