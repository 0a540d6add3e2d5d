// internal/httpserver/routes_daily.go
//
// HTTP routes for the "word of the day" mode.
//   - GET  /daily     → today's date key and whether /game/new uses it
//   - POST /daily/new → start a game whose first solution is today's word
//
// Deterministic word selection is based on date + salt (internal/daily).
// Resets after a daily game draw at random like any other game.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/config"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/daily"
)

type dailyRes struct {
	Date    string `json:"date"`
	Default bool   `json:"default"` // true when /game/new starts on the daily word
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", s.handleDailyInfo)
		r.Post("/new", s.handleDailyNew)
	})
}

func (s *Server) handleDailyInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dailyRes{
		Date:    daily.DateKey(s.opts.Now()),
		Default: s.cfg.Game.SolutionMode == config.SolutionDaily,
	})
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	s.startGame(w, r, daily.NewPicker(s.dailySalt(), s.opts.Now).Pick)
}

func (s *Server) dailySalt() string {
	if s.cfg.Game.DailySalt == "" {
		return "local_dev_salt"
	}
	return s.cfg.Game.DailySalt
}
