// internal/words/words.go
//
// Word source: loads the word list once at startup.
//
// Source precedence (Load):
//   1. URL  – HTTP GET of a newline-delimited plain text resource.
//   2. File – local newline-delimited file.
//   3. The embedded assets/words.txt.
//
// Each line is trimmed and upper-cased; lines that are not exactly five
// letters A–Z are dropped. Any failure, or an empty result, falls back to
// the single word list ["REACT"] so the game always has a defined solution.
// Failures are logged, never returned.

package words

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-go/assets"
)

// ErrEmpty is returned when a source parses to zero usable words.
var ErrEmpty = errors.New("words: list is empty")

// Source selects where Load reads the word list from.
type Source struct {
	URL     string        // fetched when set
	File    string        // read when URL is empty
	Timeout time.Duration // per-fetch timeout; 0 means 5s
	Client  *http.Client  // defaults to http.DefaultClient
}

// Load resolves src to a List. It never fails: on any error it logs and
// returns Fallback().
func Load(ctx context.Context, src Source) List {
	ws, from, err := read(ctx, src)
	if err == nil && len(ws) == 0 {
		err = ErrEmpty
	}
	if err != nil {
		log.Warn().Err(err).Str("source", from).Str("fallback", FallbackWord).Msg("word source unavailable")
		return Fallback()
	}
	l := NewList(ws)
	log.Info().Str("source", from).Int("words", l.Len()).Msg("word list loaded")
	return l
}

func read(ctx context.Context, src Source) ([]string, string, error) {
	switch {
	case src.URL != "":
		ws, err := Fetch(ctx, src.Client, src.URL, src.Timeout)
		return ws, src.URL, err
	case src.File != "":
		ws, err := ReadFile(src.File)
		return ws, src.File, err
	default:
		ws, err := Parse(bytes.NewReader(assets.WordsText()))
		return ws, "embedded", err
	}
}

// Fetch GETs url and parses the body as a word list.
func Fetch(ctx context.Context, client *http.Client, url string, timeout time.Duration) ([]string, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("words: build request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("words: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("words: fetch %s: status %d", url, resp.StatusCode)
	}
	return Parse(resp.Body)
}

// ReadFile loads one word per line from path.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads one word per line, trims and upper-cases it, and keeps only
// valid five-letter words.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if Valid(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

// Valid reports whether w is exactly five uppercase letters A–Z.
func Valid(w string) bool {
	if len(w) != 5 {
		return false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return false
		}
	}
	return true
}
