package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

// pickWord returns a picker that always selects w from the list.
func pickWord(t *testing.T, list words.List, w string) func(int) int {
	t.Helper()
	for i := 0; i < list.Len(); i++ {
		if list.At(i) == w {
			return func(int) int { return i }
		}
	}
	t.Fatalf("%s not in list", w)
	return nil
}

func newPlaying(t *testing.T, solution string, ws ...string) *Session {
	t.Helper()
	list := words.NewList(ws)
	s := NewSession(Options{Pick: pickWord(t, list, solution)})
	s.Start(list)
	require.Equal(t, StatePlaying, s.State())
	return s
}

func typeWord(s *Session, w string) {
	for _, r := range w {
		s.Type(r)
	}
}

func TestSession_LoadingIgnoresInput(t *testing.T) {
	s := NewSession(Options{})
	assert.Equal(t, StateLoading, s.State())

	typeWord(s, "CRANE")
	assert.Empty(t, s.Buffer())
	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrLoading)
	assert.ErrorIs(t, s.Reset(), ErrNotOver)
}

func TestSession_StartEmptyListFallsBack(t *testing.T) {
	s := NewSession(Options{})
	s.Start(words.List{})
	require.Equal(t, StatePlaying, s.State())
	assert.Equal(t, words.FallbackWord, s.Solution())

	typeWord(s, "react")
	out, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, StateWon, out.State)
}

func TestSession_FirstPickerOnlyForFirstGame(t *testing.T) {
	list := words.NewList([]string{"CRANE", "REACT"})
	s := NewSession(Options{
		First: func(int) int { return 1 },
		Pick:  func(int) int { return 0 },
	})
	s.Start(list)
	assert.Equal(t, "REACT", s.Solution())

	typeWord(s, "REACT")
	_, err := s.Submit()
	require.NoError(t, err)
	require.NoError(t, s.Reset())
	assert.Equal(t, "CRANE", s.Solution())
}

func TestSession_TypeAndDelete(t *testing.T) {
	s := newPlaying(t, "CRANE", "CRANE", "REACT")

	typeWord(s, "cr4a!")
	assert.Equal(t, "CRA", s.Buffer(), "non-letters are ignored, lower case folded")

	typeWord(s, "NEXYZ")
	assert.Equal(t, "CRANE", s.Buffer(), "buffer caps at five letters")

	s.Delete()
	assert.Equal(t, "CRAN", s.Buffer())
	for i := 0; i < 10; i++ {
		s.Delete()
	}
	assert.Empty(t, s.Buffer(), "delete on empty buffer is a no-op")
}

func TestSession_SubmitInvalidLength(t *testing.T) {
	s := newPlaying(t, "CRANE", "CRANE", "REACT")

	typeWord(s, "CRA")
	_, err := s.Submit()
	require.ErrorIs(t, err, ErrInvalidLength)
	assert.Equal(t, 0, s.Row())
	assert.Empty(t, s.Guesses())
	assert.Equal(t, "CRA", s.Buffer())

	s.Delete()
	s.Delete()
	s.Delete()
	_, err = s.Submit()
	require.ErrorIs(t, err, ErrInvalidLength)
	assert.Equal(t, 0, s.Row())
}

func TestSession_SubmitNotInDictionaryKeepsBuffer(t *testing.T) {
	s := newPlaying(t, "CRANE", "CRANE", "REACT")

	typeWord(s, "ZZZZZ")
	_, err := s.Submit()
	require.ErrorIs(t, err, ErrNotInDictionary)
	assert.Equal(t, "ZZZZZ", s.Buffer())
	assert.Equal(t, 0, s.Row())
	assert.Empty(t, s.Guesses())

	text, code, ok := Advisory(err)
	require.True(t, ok)
	assert.Equal(t, "Not in word list", text)
	assert.Equal(t, "not_in_word_list", code)
}

func TestSession_SubmitAdvancesRow(t *testing.T) {
	s := newPlaying(t, "CRANE", "CRANE", "REACT")

	typeWord(s, "REACT")
	out, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, 0, out.Row)
	assert.Equal(t, StatePlaying, out.State)
	assert.Empty(t, out.Message)
	assert.Equal(t, []Mark{MarkPresent, MarkPresent, MarkCorrect, MarkPresent, MarkAbsent}, out.Marks)
	assert.Equal(t, 1, s.Row())
	assert.Empty(t, s.Buffer())
	assert.Equal(t, []string{"REACT"}, s.Guesses())
}

func TestSession_Win(t *testing.T) {
	s := newPlaying(t, "CRANE", "CRANE", "REACT")

	typeWord(s, "REACT")
	_, err := s.Submit()
	require.NoError(t, err)

	typeWord(s, "CRANE")
	out, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, StateWon, out.State)
	assert.Equal(t, "You won!", out.Message)
	assert.Equal(t, 1, s.Row(), "the winning guess does not advance the row")
	assert.Equal(t, []string{"REACT", "CRANE"}, s.Guesses())

	// Terminal: no further transitions.
	s.Delete()
	s.Type('A')
	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrGameOver)
	assert.Equal(t, []string{"REACT", "CRANE"}, s.Guesses())
}

func TestSession_LoseAfterSixGuesses(t *testing.T) {
	s := newPlaying(t, "CRANE", "CRANE", "REACT")

	for i := 0; i < Rows; i++ {
		typeWord(s, "REACT")
		out, err := s.Submit()
		require.NoError(t, err)
		if i < Rows-1 {
			assert.Equal(t, StatePlaying, out.State)
			assert.Equal(t, i+1, s.Row())
		} else {
			assert.Equal(t, StateLost, out.State)
			assert.Equal(t, "Game Over! The word was CRANE", out.Message)
		}
	}
	assert.Equal(t, Rows-1, s.Row(), "row does not advance past 5")
	assert.Len(t, s.Guesses(), Rows)

	typeWord(s, "CRANE")
	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestSession_Press(t *testing.T) {
	s := newPlaying(t, "CRANE", "CRANE", "REACT")

	for _, k := range []string{"r", "E", "A", "C", "X", "backspace", "T", "F1", ""} {
		out, err := s.Press(k)
		require.NoError(t, err)
		assert.Nil(t, out)
	}
	assert.Equal(t, "REACT", s.Buffer())

	out, err := s.Press("ENTER")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "REACT", out.Guess)

	_, _ = s.Press("C")
	_, _ = s.Press("DELETE")
	assert.Empty(t, s.Buffer())

	_, err = s.Press("Enter")
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestSession_PressIgnoresNonASCIILetters(t *testing.T) {
	s := newPlaying(t, "CRANE", "CRANE")

	// These fold to S, I and K under Unicode case mapping.
	for _, k := range []string{"\u017f", "\u0131", "\u212a", "é", "ＥＮＴＥＲ"} {
		out, err := s.Press(k)
		require.NoError(t, err)
		assert.Nil(t, out)
	}
	assert.Empty(t, s.Buffer())
	assert.Equal(t, 0, s.Row())
}

func TestSession_ResetOnlyFromGameOver(t *testing.T) {
	s := newPlaying(t, "CRANE", "CRANE", "REACT")
	require.ErrorIs(t, s.Reset(), ErrNotOver)

	typeWord(s, "REACT")
	_, err := s.Submit()
	require.NoError(t, err)
	typeWord(s, "CRANE")
	_, err = s.Submit()
	require.NoError(t, err)
	require.Equal(t, StateWon, s.State())

	require.NoError(t, s.Reset())
	assert.Equal(t, StatePlaying, s.State())
	assert.Equal(t, 0, s.Row())
	assert.Empty(t, s.Buffer())
	assert.Empty(t, s.Guesses())
	assert.True(t, s.List().Contains(s.Solution()), "new solution comes from the list")
	assert.Empty(t, s.Keyboard())
}

func TestSession_ResetDrawsFromList(t *testing.T) {
	list := words.NewList([]string{"CRANE", "REACT", "TRAIN"})
	var calls []int
	s := NewSession(Options{Pick: func(n int) int {
		calls = append(calls, n)
		return len(calls) % n
	}})
	s.Start(list)

	for i := 0; i < 3; i++ {
		typeWord(s, s.Solution())
		_, err := s.Submit()
		require.NoError(t, err)
		require.NoError(t, s.Reset())
		assert.True(t, list.Contains(s.Solution()))
	}
	for _, n := range calls {
		assert.Equal(t, 3, n)
	}
}

func TestSession_BoardAndKeyboard(t *testing.T) {
	s := newPlaying(t, "CRANE", "CRANE", "REACT", "TRAIN")

	typeWord(s, "REACT")
	_, err := s.Submit()
	require.NoError(t, err)
	typeWord(s, "TRAI")

	b := s.Board()
	assert.Equal(t, Tile{Letter: "R", Mark: MarkPresent}, b[0][0])
	assert.Equal(t, Tile{Letter: "A", Mark: MarkCorrect}, b[0][2])
	assert.Equal(t, Tile{Letter: "T"}, b[1][0], "in-progress row carries no marks")
	assert.Equal(t, Tile{}, b[1][4])
	assert.Equal(t, Tile{}, b[5][4])

	kb := s.Keyboard()
	_, typed := kb["I"]
	assert.False(t, typed, "buffer letters never color the keyboard")
	assert.Equal(t, MarkPresent, kb["R"])

	typeWord(s, "N")
	_, err = s.Submit()
	require.NoError(t, err)
	assert.Equal(t, MarkCorrect, s.Keyboard()["R"])

	typeWord(s, "CRANE")
	_, err = s.Submit()
	require.NoError(t, err)
	b = s.Board()
	for c := 0; c < Cols; c++ {
		assert.Equal(t, MarkCorrect, b[2][c].Mark, "final row is scored once the game is over")
	}
	kb = s.Keyboard()
	assert.Equal(t, MarkPresent, kb["E"], "the row that ended the game is not aggregated")
	assert.Equal(t, MarkPresent, kb["C"])
}

func TestSession_StandardScorer(t *testing.T) {
	list := words.NewList([]string{"ABIDE", "SPEED"})
	s := NewSession(Options{Score: ClassifyStandard, Pick: func(int) int { return 0 }})
	s.Start(list)

	typeWord(s, "SPEED")
	out, err := s.Submit()
	require.NoError(t, err)
	assert.Equal(t, []Mark{MarkAbsent, MarkAbsent, MarkPresent, MarkAbsent, MarkPresent}, out.Marks)
}
