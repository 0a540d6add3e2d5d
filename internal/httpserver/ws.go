// internal/httpserver/ws.go
//
// WebSocket endpoint for a single player's table.
//
// The server pushes {"type":"state","payload":<snapshot>} after every change,
// including changes no request caused (a message clearing itself, a reveal
// step). The client sends key/reset/dialog envelopes; failures come back as
// {"type":"error","payload":{"code":...,"message":...}}.

package httpserver

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/play"
)

const (
	pingEvery  = 25 * time.Second
	writeWait  = 10 * time.Second
	sendBuffer = 16
)

// Envelope is the frame format in both directions.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ErrorPayload is the payload of an "error" envelope.
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func (s *Server) upgrader() *websocket.Upgrader {
	return &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || origin == s.cfg.HTTP.ClientOrigin {
				return true
			}
			u, err := url.Parse(origin)
			return err == nil && u.Host == r.Host
		},
	}
}

// handleWS upgrades the caller's session to a push connection.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	t, err := s.tableFor(r.Context(), r)
	if err != nil {
		writeSessionError(w, err)
		return
	}

	ws, err := s.upgrader().Upgrade(w, r, nil)
	if err != nil {
		return
	}
	ws.SetReadLimit(4096)
	changes, unsubscribe := t.Subscribe()
	defer unsubscribe()

	send := make(chan []byte, sendBuffer)
	done := make(chan struct{})
	writerDone := make(chan struct{})

	// writer loop; the only goroutine that writes to ws
	go func() {
		defer close(writerDone)
		defer ws.Close()
		ticker := time.NewTicker(pingEvery)
		defer ticker.Stop()

		write := func(msg []byte) bool {
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			return ws.WriteMessage(websocket.TextMessage, msg) == nil
		}
		if !write(stateFrame(t)) {
			return
		}
		for {
			select {
			case <-done:
				return
			case _, ok := <-changes:
				if !ok {
					// table closed (swept or replaced)
					_ = ws.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseGoingAway, "game closed"),
						time.Now().Add(writeWait))
					return
				}
				if !write(stateFrame(t)) {
					return
				}
			case msg := <-send:
				if !write(msg) {
					return
				}
			case <-ticker.C:
				if err := ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
					return
				}
			}
		}
	}()

	reply := func(code, message string) {
		select {
		case send <- errorFrame(code, message):
		case <-writerDone:
		}
	}

	log.Debug().Str("gameId", t.ID()).Msg("ws attached")

	// reader loop
	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			break
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			reply("bad_json", "invalid json")
			continue
		}

		switch env.Type {
		case "key":
			var p keyReq
			if err := json.Unmarshal(env.Payload, &p); err != nil || p.Key == "" {
				reply("bad_input", "invalid payload")
				continue
			}
			if err := t.Press(p.Key); err != nil {
				text, code, _ := game.Advisory(err)
				reply(code, text)
			}

		case "reset":
			if err := t.Reset(); err != nil {
				reply(tableErrorCode(err), err.Error())
			}

		case "dialog":
			var p dialogReq
			if err := json.Unmarshal(env.Payload, &p); err != nil {
				reply("bad_input", "invalid payload")
				continue
			}
			if p.Open {
				err = t.OpenDialog()
			} else {
				err = t.CloseDialog()
			}
			if err != nil {
				reply(tableErrorCode(err), err.Error())
			}

		default:
			reply("unknown_type", "unknown message type")
		}
	}

	// disconnect
	close(done)
	<-writerDone
	log.Debug().Str("gameId", t.ID()).Msg("ws detached")
}

func stateFrame(t *play.Table) []byte {
	return mustEnvelope("state", t.Snapshot())
}

func errorFrame(code, message string) []byte {
	return mustEnvelope("error", ErrorPayload{Code: code, Message: message})
}

func mustEnvelope(typ string, v any) []byte {
	payload, _ := json.Marshal(v)
	b, _ := json.Marshal(Envelope{Type: typ, Payload: payload})
	return b
}
