package game

import "errors"

// Submission and lifecycle errors. ErrInvalidLength and ErrNotInDictionary
// are advisory: they leave the session untouched and are shown to the player
// as transient messages.
var (
	ErrLoading         = errors.New("game: word list not loaded")
	ErrGameOver        = errors.New("game: finished")
	ErrNotOver         = errors.New("game: still in progress")
	ErrInvalidLength   = errors.New("game: guess must be 5 letters")
	ErrNotInDictionary = errors.New("game: guess not in word list")
)

// Advisory returns the player-facing text and a stable code for an advisory
// error. ok is false for any other error.
func Advisory(err error) (text, code string, ok bool) {
	switch {
	case errors.Is(err, ErrInvalidLength):
		return "Word must be 5 letters", "invalid_length", true
	case errors.Is(err, ErrNotInDictionary):
		return "Not in word list", "not_in_word_list", true
	}
	return "", "", false
}
