package main

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/config"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/notice/noticetest"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/play"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

func newTestModel(t *testing.T, celebration bool) (model, *noticetest.Scheduler) {
	t.Helper()
	sched := noticetest.New()
	tb, err := play.New("local", game.NewSession(game.Options{Pick: func(int) int { return 0 }}), play.Config{
		Celebration: celebration,
		RevealDelay: 10 * time.Millisecond,
		Scheduler:   sched,
	})
	require.NoError(t, err)
	t.Cleanup(tb.Close)
	return newModel(tb, words.Source{}), sched
}

func send(m model, msgs ...tea.Msg) model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	bksp  = tea.KeyMsg{Type: tea.KeyBackspace}
	ctrlR = tea.KeyMsg{Type: tea.KeyCtrlR}
	ctrlO = tea.KeyMsg{Type: tea.KeyCtrlO}
)

func loaded(ws ...string) wordsLoadedMsg { return wordsLoadedMsg{list: words.NewList(ws)} }

func TestModel_LoadingIgnoresKeys(t *testing.T) {
	m, _ := newTestModel(t, false)
	assert.Contains(t, m.View(), "Loading words")

	m = send(m, runes("crane"), enter)
	assert.Equal(t, game.StateLoading, m.table.State())

	m = send(m, loaded("CRANE", "REACT"))
	assert.Equal(t, game.StatePlaying, m.table.State())
	assert.NotContains(t, m.View(), "Loading words")
}

func TestModel_TypingAndWinning(t *testing.T) {
	m, sched := newTestModel(t, false)
	m = send(m, loaded("CRANE", "REACT"))

	m = send(m, runes("crx"), bksp, enter)
	assert.Contains(t, m.View(), "Word must be 5 letters")
	sched.Advance(2 * time.Second)
	assert.NotContains(t, m.View(), "Word must be 5 letters")

	m = send(m, runes("ane"), enter)
	assert.Equal(t, game.StateWon, m.table.State())
	assert.Contains(t, m.View(), "You won!")
	assert.Contains(t, m.View(), "play again")

	m = send(m, ctrlR)
	assert.Equal(t, game.StatePlaying, m.table.State())
}

func TestModel_CelebrationDialogToggle(t *testing.T) {
	m, sched := newTestModel(t, true)
	m = send(m, loaded("CRANE"), runes("crane"), enter)
	require.Equal(t, game.StateWon, m.table.State())

	sched.Advance(time.Second)
	assert.True(t, m.table.Snapshot().Celebration.Done)
	assert.NotContains(t, m.View(), "You won!")

	m = send(m, ctrlO)
	assert.True(t, m.table.Snapshot().Celebration.Dialog)
	assert.Contains(t, m.View(), "YES")

	m = send(m, ctrlO)
	assert.False(t, m.table.Snapshot().Celebration.Dialog)
}

func TestModel_QuitKeys(t *testing.T) {
	m, _ := newTestModel(t, false)
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestWaitForChange(t *testing.T) {
	m, _ := newTestModel(t, false)
	cmd := waitForChange(m.changes)

	m.table.Start(words.NewList([]string{"CRANE"}))
	assert.Equal(t, changedMsg{}, cmd())

	m.table.Close()
	assert.Nil(t, waitForChange(m.changes)())
}

func TestNewTable_FromConfig(t *testing.T) {
	var cfg config.Config
	cfg.Game.Scoring = config.ScoringStandard
	cfg.Game.SolutionMode = config.SolutionDaily
	cfg.Celebration.Enabled = true

	tb, err := newTable(cfg)
	require.NoError(t, err)
	defer tb.Close()
	assert.Equal(t, game.StateLoading, tb.State())

	cfg.Game.Scoring = "nope"
	_, err = newTable(cfg)
	assert.Error(t, err)
}
