// internal/game/session.go
//
// Session is the state machine for a single game.
// Responsibilities:
//   - Own the solution, the six guess slots, the current row, the
//     in-progress guess buffer, and the lifecycle state.
//   - Accept discrete input events (letter, delete, submit, reset).
//   - Validate submissions (length, dictionary) and score accepted guesses.
//
// A Session is not safe for concurrent use; hosts that share one between
// goroutines serialise access themselves.

package game

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

// Options customise a Session. Zero values select the defaults.
type Options struct {
	// Score classifies guesses; defaults to Classify.
	Score Scorer
	// Pick returns an index in [0,n) used by Reset; defaults to a uniform
	// crypto/rand draw.
	Pick func(n int) int
	// First, when set, picks the solution of the first game instead of Pick.
	First func(n int) int
}

// Session holds the state of one game.
type Session struct {
	score Scorer
	pick  func(n int) int
	first func(n int) int

	list     words.List
	solution string
	guesses  [Rows]string
	row      int
	buffer   []byte
	state    State
}

// NewSession returns a session in StateLoading. Call Start once the word
// list is available.
func NewSession(opts Options) *Session {
	s := &Session{
		score: opts.Score,
		pick:  opts.Pick,
		first: opts.First,
		state: StateLoading,
	}
	if s.score == nil {
		s.score = Classify
	}
	if s.pick == nil {
		s.pick = words.RandomIndex
	}
	return s
}

// Start installs the word list, draws the first solution, and enters
// StatePlaying. An empty list is replaced by words.Fallback(). Calling Start
// on a session that already left StateLoading is a no-op.
func (s *Session) Start(list words.List) {
	if s.state != StateLoading {
		return
	}
	if list.Len() == 0 {
		list = words.Fallback()
	}
	s.list = list
	pick := s.pick
	if s.first != nil {
		pick = s.first
	}
	s.solution = s.draw(pick)
	s.state = StatePlaying
}

// draw picks a solution from the list, clamping out-of-range picks.
func (s *Session) draw(pick func(n int) int) string {
	n := s.list.Len()
	i := pick(n)
	if i < 0 || i >= n {
		i = 0
	}
	return s.list.At(i)
}

// Type appends a letter to the guess buffer. Lower case is folded to upper
// case; anything that is not a letter, a full buffer, or a session that is
// not playing makes it a no-op.
func (s *Session) Type(r rune) {
	if s.state != StatePlaying || len(s.buffer) >= Cols {
		return
	}
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 'A' || r > 'Z' {
		return
	}
	s.buffer = append(s.buffer, byte(r))
}

// Delete removes the last buffered letter, if any.
func (s *Session) Delete() {
	if s.state != StatePlaying || len(s.buffer) == 0 {
		return
	}
	s.buffer = s.buffer[:len(s.buffer)-1]
}

// Submit validates the buffer and, if accepted, records it as a guess.
//
// Errors:
//   - ErrLoading / ErrGameOver when the session is not playing.
//   - ErrInvalidLength when the buffer is not exactly Cols letters.
//   - ErrNotInDictionary when the word is not in the list; the buffer is
//     kept so the player can edit it.
//
// On success the guess fills the current slot. A match wins; a miss on the
// last slot loses; otherwise the row advances and the buffer is cleared.
func (s *Session) Submit() (*Outcome, error) {
	switch s.state {
	case StateLoading:
		return nil, ErrLoading
	case StateWon, StateLost:
		return nil, ErrGameOver
	}
	guess := string(s.buffer)
	if len(guess) != Cols {
		return nil, ErrInvalidLength
	}
	if !s.list.Contains(guess) {
		return nil, ErrNotInDictionary
	}

	s.guesses[s.row] = guess
	out := &Outcome{Row: s.row, Guess: guess, Marks: s.score(guess, s.solution)}
	switch {
	case guess == s.solution:
		s.state = StateWon
		out.Message = "You won!"
	case s.row == Rows-1:
		s.state = StateLost
		out.Message = fmt.Sprintf("Game Over! The word was %s", s.solution)
	default:
		s.row++
		s.buffer = s.buffer[:0]
	}
	out.State = s.state
	return out, nil
}

// Press maps a named key from the input surface to a transition:
// a single A–Z letter in either case types it, "BACKSPACE"/"DELETE" deletes, "ENTER" submits.
// Unknown keys are ignored. The Outcome is non-nil only for an accepted
// submission.
func (s *Session) Press(key string) (*Outcome, error) {
	raw := strings.TrimSpace(key)
	if len(raw) == 1 {
		s.Type(rune(raw[0]))
		return nil, nil
	}
	if !isASCII(raw) {
		return nil, nil
	}
	switch strings.ToUpper(raw) {
	case "ENTER":
		return s.Submit()
	case "BACKSPACE", "DELETE":
		s.Delete()
	}
	return nil, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// Reset starts a new game from a finished one: a fresh random solution from
// the same list and all slots, row, and buffer cleared.
func (s *Session) Reset() error {
	if !s.state.Over() {
		return ErrNotOver
	}
	s.solution = s.draw(s.pick)
	s.guesses = [Rows]string{}
	s.row = 0
	s.buffer = s.buffer[:0]
	s.state = StatePlaying
	return nil
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Solution returns the hidden word. Hosts should only expose it once the
// game is over.
func (s *Session) Solution() string { return s.solution }

// Row returns the index of the slot the next guess fills.
func (s *Session) Row() int { return s.row }

// Buffer returns the in-progress guess.
func (s *Session) Buffer() string { return string(s.buffer) }

// List returns the word list in use.
func (s *Session) List() words.List { return s.list }

// submitted is the number of filled slots. The slot that ended the game does
// not advance the row but still counts.
func (s *Session) submitted() int {
	if s.state.Over() {
		return s.row + 1
	}
	return s.row
}

// Guesses returns the submitted guesses in slot order.
func (s *Session) Guesses() []string {
	return append([]string(nil), s.guesses[:s.submitted()]...)
}

// Keyboard returns the best-known mark per guessed letter. Only slots before
// Row are aggregated, so the guess that ended the game colours the board but
// not the keyboard.
func (s *Session) Keyboard() map[string]Mark {
	return Keyboard(s.guesses[:s.row], s.solution, s.score)
}

// Board renders the grid: submitted rows with marks, the in-progress row with
// the buffered letters, and empty tiles elsewhere.
func (s *Session) Board() [Rows][Cols]Tile {
	var b [Rows][Cols]Tile
	n := s.submitted()
	for r := 0; r < n; r++ {
		g := s.guesses[r]
		marks := s.score(g, s.solution)
		for c := 0; c < Cols && c < len(g); c++ {
			b[r][c] = Tile{Letter: string(g[c]), Mark: marks[c]}
		}
	}
	if s.state == StatePlaying {
		for c := 0; c < len(s.buffer); c++ {
			b[s.row][c] = Tile{Letter: string(s.buffer[c])}
		}
	}
	return b
}
