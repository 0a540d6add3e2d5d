// cmd/wordle-tui/main.go
//
// Terminal client: one game session in-process, rendered with bubbletea.
// Reads the same environment as the server (WORDS_*, WORDLE_*, CELEBRATION_*,
// MESSAGE_TTL, REVEAL_TILE_DELAY).

package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/config"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/daily"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/play"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	var logOut io.Writer = io.Discard
	if cfg.TUI.LogFile != "" {
		f, err := os.OpenFile(cfg.TUI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		defer f.Close()
		logOut = f
	}
	config.SetupLogging(cfg.Log, logOut)

	table, err := newTable(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer table.Close()

	src := words.Source{URL: cfg.Words.URL, File: cfg.Words.File, Timeout: cfg.Words.FetchTimeout}
	p := tea.NewProgram(newModel(table, src), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error().Err(err).Msg("tui exited")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newTable builds a table whose session waits in the loading state until
// the word list arrives.
func newTable(cfg config.Config) (*play.Table, error) {
	scorer, err := game.ScorerFor(cfg.Game.Scoring)
	if err != nil {
		return nil, err
	}
	opts := game.Options{Score: scorer}
	if cfg.Game.SolutionMode == config.SolutionDaily {
		opts.First = daily.NewPicker(cfg.Game.DailySalt, nil).Pick
	}
	return play.New("local", game.NewSession(opts), play.Config{
		MessageTTL:      cfg.Game.MessageTTL,
		Celebration:     cfg.Celebration.Enabled,
		CelebrationText: cfg.Celebration.Text,
		RevealDelay:     cfg.Celebration.RevealDelay,
	})
}
