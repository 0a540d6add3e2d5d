// internal/httpserver/routes_game.go
//
// Game endpoints. Every response body is the caller's table snapshot;
// advisory submission errors travel inside it (message + error code) with
// HTTP 200, because they are part of normal play.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/play"
)

// gameRes is a snapshot, plus the session token when one was just issued.
type gameRes struct {
	play.Snapshot
	Token string `json:"token,omitempty"`
}

type keyReq struct {
	Key string `json:"key"`
}

type dialogReq struct {
	Open bool `json:"open"`
}

// handleNewGame creates a table, binds it to the caller with a signed
// cookie, and drops the caller's previous table if any.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	s.startGame(w, r, nil)
}

func (s *Server) startGame(w http.ResponseWriter, r *http.Request, first func(n int) int) {
	ctx := r.Context()
	if prev, err := s.tableFor(ctx, r); err == nil {
		_ = s.opts.Store.Delete(ctx, prev.ID())
	}

	t, err := s.newTable(first)
	if err != nil {
		log.Error().Err(err).Msg("create table")
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	if err := s.opts.Store.Save(ctx, t); err != nil {
		log.Error().Err(err).Msg("save table")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	tok, exp, err := s.signSession(t.ID())
	if err != nil {
		log.Error().Err(err).Msg("sign session")
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)
	log.Info().Str("gameId", t.ID()).Msg("game started")
	writeJSON(w, http.StatusOK, gameRes{Snapshot: t.Snapshot(), Token: tok})
}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	t, err := s.tableFor(r.Context(), r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameRes{Snapshot: t.Snapshot()})
}

// handleKey applies one key press.
func (s *Server) handleKey(w http.ResponseWriter, r *http.Request) {
	t, err := s.tableFor(r.Context(), r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	var req keyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	err = t.Press(req.Key)
	snap := t.Snapshot()
	if _, code, ok := game.Advisory(err); ok {
		snap.Error = code
	}
	writeJSON(w, http.StatusOK, gameRes{Snapshot: snap})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	t, err := s.tableFor(r.Context(), r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	if err := t.Reset(); err != nil {
		writeTableError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameRes{Snapshot: t.Snapshot()})
}

func (s *Server) handleDialog(w http.ResponseWriter, r *http.Request) {
	t, err := s.tableFor(r.Context(), r)
	if err != nil {
		writeSessionError(w, err)
		return
	}
	var req dialogReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	if req.Open {
		err = t.OpenDialog()
	} else {
		err = t.CloseDialog()
	}
	if err != nil {
		writeTableError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gameRes{Snapshot: t.Snapshot()})
}

// tableErrorCode maps lifecycle errors to stable codes.
func tableErrorCode(err error) string {
	switch {
	case errors.Is(err, game.ErrNotOver):
		return "not_over"
	case errors.Is(err, play.ErrNoCelebration):
		return "no_celebration"
	}
	if _, code, ok := game.Advisory(err); ok {
		return code
	}
	return "internal"
}

func writeTableError(w http.ResponseWriter, err error) {
	code := tableErrorCode(err)
	status := http.StatusConflict
	if code == "internal" {
		status = http.StatusInternalServerError
	}
	writeError(w, status, code)
}
