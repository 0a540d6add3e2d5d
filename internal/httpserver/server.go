// internal/httpserver/server.go
//
// HTTP server wiring for the wordle-go backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs,
//     request logging).
//   - Public endpoints: "/", "/health", "/words.txt", "/debug/words".
//   - Game endpoints bound to a signed session cookie: /game/*.
//   - Daily endpoints: /daily, /daily/new.
//   - Run: serve, sweep idle tables, and shut down gracefully.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - The WebSocket endpoint is mounted outside the handler timeout; the
//     connection outlives the request context.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/config"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/notice"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/play"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/store"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

// Options are the dependencies of a Server.
type Options struct {
	Config config.Config
	Store  store.Store
	Words  words.List
	Scorer game.Scorer

	// First picks the first solution of every new game; nil means Pick.
	First func(n int) int
	// Pick picks solutions after a reset; nil means uniform random.
	Pick func(n int) int

	// Scheduler drives message and reveal timers; nil means real time.
	Scheduler notice.Scheduler
	// Now is the clock for sessions and idle tracking; nil means time.Now.
	Now func() time.Time
}

// Server bundles router, table store, and game settings.
type Server struct {
	r    *chi.Mux
	opts Options
	cfg  config.Config
}

// New constructs a Server, installs middleware, and registers routes.
// It fails when the celebration text does not fit the grid.
func New(opts Options) (*Server, error) {
	if opts.Store == nil {
		opts.Store = store.NewMemoryStore()
	}
	if opts.Scorer == nil {
		opts.Scorer = game.Classify
	}
	if opts.Scheduler == nil {
		opts.Scheduler = notice.Real
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Words.Len() == 0 {
		opts.Words = words.Fallback()
	}
	if opts.Config.Celebration.Enabled && opts.Config.Celebration.Text != "" {
		if _, err := play.Layout(opts.Config.Celebration.Text); err != nil {
			return nil, err
		}
	}

	s := &Server{r: chi.NewRouter(), opts: opts, cfg: opts.Config}

	// --- middleware ---
	s.r.Use(chimw.RequestID) // add X-Request-ID
	s.r.Use(chimw.RealIP)    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)   // one zerolog line per request
	s.r.Use(chimw.Recoverer) // recover from panics
	s.r.Use(cors(s.cfg.HTTP.ClientOrigin))

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(s.handlerTimeout())) // bound handler time
		r.Use(jsonContentType)                   // default JSON responses

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]any{
				"service": "wordle-go",
				"endpoints": []string{
					"/health", "/words.txt", "POST /game/new", "GET /game", "POST /game/key",
					"POST /game/reset", "POST /game/dialog", "GET /game/ws", "/daily",
				},
			})
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
		})

		// Debug: word list size
		r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, map[string]int{"words": s.opts.Words.Len()})
		})

		// Game endpoints, bound to the session cookie (or bearer token)
		r.Post("/game/new", s.handleNewGame)
		r.Get("/game", s.handleGetGame)
		r.Post("/game/key", s.handleKey)
		r.Post("/game/reset", s.handleReset)
		r.Post("/game/dialog", s.handleDialog)

		s.mountDaily(r)
	})

	s.r.Get("/words.txt", s.handleWordsFile)
	s.r.Get("/game/ws", s.handleWS)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s, nil
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Store exposes the table store.
func (s *Server) Store() store.Store { return s.opts.Store }

func (s *Server) handlerTimeout() time.Duration {
	if s.cfg.HTTP.HandlerTimeout > 0 {
		return s.cfg.HTTP.HandlerTimeout
	}
	return 10 * time.Second
}

// Run serves on cfg.Addr() until ctx is cancelled, sweeping idle tables in
// the background, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr(),
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	g, gctx := errgroup.WithContext(ctx)

	log.Info().Str("addr", srv.Addr).Msg("http server starting")

	g.Go(func() error {
		err := srv.ListenAndServe()
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		timeout := s.cfg.HTTP.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		log.Info().Msg("http server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		s.sweepLoop(gctx)
		return nil
	})

	return g.Wait()
}

// sweepLoop evicts tables idle for longer than IDLE_TTL.
func (s *Server) sweepLoop(ctx context.Context) {
	idle := s.cfg.Session.IdleTTL
	if idle <= 0 {
		return
	}
	ticker := time.NewTicker(sweepInterval(idle))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.opts.Store.Sweep(ctx, s.opts.Now(), idle); n > 0 {
				log.Info().Int("evicted", n).Int("live", s.opts.Store.Len()).Msg("idle games swept")
			}
		}
	}
}

// sweepInterval checks four times per idle period, between once a second
// and once a minute.
func sweepInterval(idle time.Duration) time.Duration {
	return min(max(idle/4, time.Second), time.Minute)
}

// newTable creates a started table with a fresh id. first overrides the
// first-solution picker when non-nil.
func (s *Server) newTable(first func(n int) int) (*play.Table, error) {
	if first == nil {
		first = s.opts.First
	}
	sess := game.NewSession(game.Options{
		Score: s.opts.Scorer,
		Pick:  s.opts.Pick,
		First: first,
	})
	sess.Start(s.opts.Words)
	return play.New(uuid.NewString(), sess, play.Config{
		MessageTTL:      s.cfg.Game.MessageTTL,
		Celebration:     s.cfg.Celebration.Enabled,
		CelebrationText: s.cfg.Celebration.Text,
		RevealDelay:     s.cfg.Celebration.RevealDelay,
		Scheduler:       s.opts.Scheduler,
		Now:             s.opts.Now,
	})
}

// handleWordsFile serves the active word list as newline-delimited text.
func (s *Server) handleWordsFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	ws := s.opts.Words.Words()
	for i := range ws {
		ws[i] = strings.ToLower(ws[i])
	}
	_, _ = w.Write([]byte(strings.Join(ws, "\n") + "\n"))
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
