// internal/daily/daily.go
//
// Deterministic "word of the day" selection. Every game started on the same
// UTC day with the same salt begins with the same solution.

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Picker maps calendar days to word list positions.
type Picker struct {
	salt []byte
	now  func() time.Time
}

// NewPicker binds a picker to salt. now is read on every Pick; nil means
// time.Now.
func NewPicker(salt string, now func() time.Time) Picker {
	if now == nil {
		now = time.Now
	}
	return Picker{salt: []byte(salt), now: now}
}

// Pick returns today's position in a list of n words. Its signature matches
// game.Options.First.
func (p Picker) Pick(n int) int { return p.On(p.now(), n) }

// On returns the position for the UTC day of t: the leading 64 bits of
// HMAC-SHA256(salt, DateKey(t)), modulo n.
func (p Picker) On(t time.Time, n int) int {
	if n < 2 {
		return 0
	}
	mac := hmac.New(sha256.New, p.salt)
	_, _ = io.WriteString(mac, DateKey(t))
	return int(binary.BigEndian.Uint64(mac.Sum(nil)) % uint64(n))
}
