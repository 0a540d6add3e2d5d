// main.go
//
// wordle-go server: hosts one game table per browser session over HTTP and
// WebSocket.
//
// Startup order: .env → config → logging → word list → server.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/config"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/daily"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/httpserver"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/store"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		config.SetupLogging(config.Log{}, os.Stderr)
		log.Fatal().Err(err).Msg("load config")
	}
	config.SetupLogging(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	list := words.Load(ctx, words.Source{
		URL:     cfg.Words.URL,
		File:    cfg.Words.File,
		Timeout: cfg.Words.FetchTimeout,
	})

	scorer, err := game.ScorerFor(cfg.Game.Scoring)
	if err != nil {
		log.Fatal().Err(err).Msg("scoring rule")
	}

	var first func(n int) int
	if cfg.Game.SolutionMode == config.SolutionDaily {
		first = daily.NewPicker(cfg.Game.DailySalt, nil).Pick
	}

	srv, err := httpserver.New(httpserver.Options{
		Config: cfg,
		Store:  store.NewMemoryStore(),
		Words:  list,
		Scorer: scorer,
		First:  first,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("build server")
	}

	log.Info().
		Str("port", cfg.HTTP.Port).
		Str("scoring", cfg.Game.Scoring).
		Str("solutions", cfg.Game.SolutionMode).
		Bool("celebration", cfg.Celebration.Enabled).
		Msg("starting wordle-go")
	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
	log.Info().Msg("bye")
}
