package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
	assert.Equal(t, ":5175", c.Addr())
	assert.Equal(t, "http://localhost:5173", c.HTTP.ClientOrigin)
	assert.Equal(t, 24*time.Hour, c.Session.TTL)
	assert.Equal(t, time.Hour, c.Session.IdleTTL)
	assert.Equal(t, 5*time.Second, c.Words.FetchTimeout)
	assert.Equal(t, ScoringSimple, c.Game.Scoring)
	assert.Equal(t, SolutionRandom, c.Game.SolutionMode)
	assert.Equal(t, 2*time.Second, c.Game.MessageTTL)
	assert.False(t, c.Celebration.Enabled)
	assert.Equal(t, 150*time.Millisecond, c.Celebration.RevealDelay)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("WORDLE_SCORING", " Standard ")
	t.Setenv("WORDLE_SOLUTION_MODE", "daily")
	t.Setenv("CELEBRATION_ENABLED", "true")
	t.Setenv("CELEBRATION_TEXT", "HELLO THERE")
	t.Setenv("REVEAL_TILE_DELAY", "50ms")
	t.Setenv("WORDS_URL", "http://example.test/words.txt")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.Addr())
	assert.Equal(t, ScoringStandard, c.Game.Scoring)
	assert.Equal(t, SolutionDaily, c.Game.SolutionMode)
	assert.True(t, c.Celebration.Enabled)
	assert.Equal(t, "HELLO THERE", c.Celebration.Text)
	assert.Equal(t, 50*time.Millisecond, c.Celebration.RevealDelay)
	assert.Equal(t, "http://example.test/words.txt", c.Words.URL)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad duration":   {"MESSAGE_TTL", "soon"},
		"zero duration":  {"IDLE_TTL", "0s"},
		"bad scoring":    {"WORDLE_SCORING", "fuzzy"},
		"bad mode":       {"WORDLE_SOLUTION_MODE", "weekly"},
		"bad log format": {"LOG_FORMAT", "xml"},
		"bad bool":       {"CELEBRATION_ENABLED", "maybe"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)
	c.Session.Secret = ""
	c.Game.Scoring = "x"

	err = c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
	assert.Contains(t, err.Error(), "WORDLE_SCORING")
}

func TestSetupLogging(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	SetupLogging(Log{Level: "warn", Format: "json"}, &buf)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	log.Info().Msg("hidden")
	log.Warn().Str("k", "v").Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"k":"v"`)

	buf.Reset()
	SetupLogging(Log{Level: "nonsense", Format: "json"}, &buf)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.Contains(t, buf.String(), "unknown LOG_LEVEL")
}
