package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/play"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/store"
)

var (
	errNoSession  = errors.New("httpserver: no session token")
	errBadSession = errors.New("httpserver: invalid session token")
)

// sessionClaims binds a browser to one game table.
type sessionClaims struct {
	GameID string `json:"gid"`
	jwt.RegisteredClaims
}

// ------------------------------ JWT & cookies ------------------------------

// signSession creates an HS256 JWT for the given game id, valid for SESSION_TTL.
func (s *Server) signSession(gameID string) (string, time.Time, error) {
	now := s.opts.Now()
	ttl := s.cfg.Session.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	exp := now.Add(ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		GameID: gameID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	ss, err := t.SignedString(s.secret())
	return ss, exp, err
}

// parseSession verifies a token and returns its game id.
func (s *Server) parseSession(token string) (string, error) {
	claims := &sessionClaims{}
	t, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret(), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.opts.Now))
	if err != nil || !t.Valid || claims.GameID == "" {
		return "", errBadSession
	}
	return claims.GameID, nil
}

func (s *Server) secret() []byte {
	if s.cfg.Session.Secret == "" {
		return []byte("dev_secret_change_me")
	}
	return []byte(s.cfg.Session.Secret)
}

func (s *Server) cookieName() string {
	if s.cfg.Session.CookieName == "" {
		return "wordle_game"
	}
	return s.cfg.Session.CookieName
}

// setSessionCookie writes the session cookie with appropriate security attributes.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	secure := s.cfg.Session.Secure
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName(),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from the Authorization header or
// the session cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cookieName()); err == nil {
		return c.Value
	}
	return ""
}

// tableFor resolves the caller's table from its session token.
func (s *Server) tableFor(ctx context.Context, r *http.Request) (*play.Table, error) {
	tok := s.bearerOrCookie(r)
	if tok == "" {
		return nil, errNoSession
	}
	id, err := s.parseSession(tok)
	if err != nil {
		return nil, err
	}
	return s.opts.Store.Get(ctx, id)
}

// writeSessionError maps tableFor errors to responses.
func writeSessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errNoSession):
		writeError(w, http.StatusUnauthorized, "no_session")
	case errors.Is(err, errBadSession):
		writeError(w, http.StatusUnauthorized, "invalid_session")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "game_not_found")
	default:
		writeError(w, http.StatusInternalServerError, "internal")
	}
}
