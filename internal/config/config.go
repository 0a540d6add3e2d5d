// internal/config/config.go
//
// Runtime settings for the wordle-go server and terminal client.
//
// Values come from the environment (a `.env` file is loaded first by main
// via godotenv) and are parsed into typed structs with caarlos0/env.
// Load validates the result; callers pass the Config down explicitly.

package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Scoring rules and solution modes understood by the game.
const (
	ScoringSimple   = "simple"
	ScoringStandard = "standard"

	SolutionRandom = "random"
	SolutionDaily  = "daily"
)

// Config is the complete runtime configuration.
type Config struct {
	Log         Log
	HTTP        HTTP
	Session     Session
	Words       Words
	Game        Game
	Celebration Celebration
	TUI         TUI
}

// Log controls the global zerolog logger.
type Log struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"` // json|console
}

// HTTP controls the listener and the browser-facing middleware.
type HTTP struct {
	Port            string        `env:"PORT"             envDefault:"5175"`
	ClientOrigin    string        `env:"CLIENT_ORIGIN"    envDefault:"http://localhost:5173"`
	HandlerTimeout  time.Duration `env:"HTTP_TIMEOUT"     envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Session controls the signed cookie that binds a browser to its game and
// how long an untouched game is kept in memory.
type Session struct {
	Secret     string        `env:"SESSION_SECRET" envDefault:"dev_secret_change_me"`
	TTL        time.Duration `env:"SESSION_TTL"    envDefault:"24h"`
	CookieName string        `env:"COOKIE_NAME"    envDefault:"wordle_game"`
	Secure     bool          `env:"COOKIE_SECURE"  envDefault:"false"`
	IdleTTL    time.Duration `env:"IDLE_TTL"       envDefault:"1h"`
}

// Words selects the word source.
type Words struct {
	URL          string        `env:"WORDS_URL"`
	File         string        `env:"WORDS_FILE"`
	FetchTimeout time.Duration `env:"WORDS_FETCH_TIMEOUT" envDefault:"5s"`
}

// Game controls scoring and solution selection.
type Game struct {
	Scoring      string        `env:"WORDLE_SCORING"       envDefault:"simple"`
	SolutionMode string        `env:"WORDLE_SOLUTION_MODE" envDefault:"random"`
	DailySalt    string        `env:"DAILY_SALT"           envDefault:"local_dev_salt"`
	MessageTTL   time.Duration `env:"MESSAGE_TTL"          envDefault:"2s"`
}

// Celebration controls the proposal variant.
type Celebration struct {
	Enabled     bool          `env:"CELEBRATION_ENABLED" envDefault:"false"`
	Text        string        `env:"CELEBRATION_TEXT"`
	RevealDelay time.Duration `env:"REVEAL_TILE_DELAY"   envDefault:"150ms"`
}

// TUI controls the terminal client. The terminal is the UI, so logs go to
// LogFile or nowhere.
type TUI struct {
	LogFile string `env:"TUI_LOG_FILE"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	c.normalize()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Game.Scoring = strings.ToLower(strings.TrimSpace(c.Game.Scoring))
	c.Game.SolutionMode = strings.ToLower(strings.TrimSpace(c.Game.SolutionMode))
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error

	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format))
	}
	if c.HTTP.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.Session.Secret == "" {
		errs = append(errs, errors.New("SESSION_SECRET is required"))
	}
	if c.Session.CookieName == "" {
		errs = append(errs, errors.New("COOKIE_NAME is required"))
	}

	switch c.Game.Scoring {
	case ScoringSimple, ScoringStandard:
	default:
		errs = append(errs, fmt.Errorf("WORDLE_SCORING must be %s or %s, got %q", ScoringSimple, ScoringStandard, c.Game.Scoring))
	}
	switch c.Game.SolutionMode {
	case SolutionRandom, SolutionDaily:
	default:
		errs = append(errs, fmt.Errorf("WORDLE_SOLUTION_MODE must be %s or %s, got %q", SolutionRandom, SolutionDaily, c.Game.SolutionMode))
	}

	positive := map[string]time.Duration{
		"HTTP_TIMEOUT":        c.HTTP.HandlerTimeout,
		"SHUTDOWN_TIMEOUT":    c.HTTP.ShutdownTimeout,
		"SESSION_TTL":         c.Session.TTL,
		"IDLE_TTL":            c.Session.IdleTTL,
		"WORDS_FETCH_TIMEOUT": c.Words.FetchTimeout,
		"MESSAGE_TTL":         c.Game.MessageTTL,
		"REVEAL_TILE_DELAY":   c.Celebration.RevealDelay,
	}
	for _, k := range slices.Sorted(maps.Keys(positive)) {
		if positive[k] <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive", k))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return ":" + c.HTTP.Port }
