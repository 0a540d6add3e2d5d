// internal/notice/notice.go
//
// Timer-driven transient UI state.
//   - Message: advisory text that clears itself after a TTL.
//   - Reveal:  a staged, tile-by-tile reveal.
//
// Both key their pending timers by a generation counter. Starting a new
// message or reveal bumps the generation, so a callback scheduled by an
// earlier one finds a stale generation and does nothing.

package notice

import (
	"sync"
	"time"
)

// Timer is a cancellable one-shot timer.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// Real schedules on the runtime timer heap.
var Real Scheduler = realScheduler{}

// DefaultTTL is how long an advisory message stays up.
const DefaultTTL = 2 * time.Second

// Message holds the current status line.
type Message struct {
	mu       sync.Mutex
	sched    Scheduler
	ttl      time.Duration
	onChange func()

	text  string
	gen   uint64
	timer Timer
}

// NewMessage returns an empty Message. onChange (optional) runs after a
// timer clears the text, outside the Message lock.
func NewMessage(sched Scheduler, ttl time.Duration, onChange func()) *Message {
	if sched == nil {
		sched = Real
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Message{sched: sched, ttl: ttl, onChange: onChange}
}

// Show sets a transient text that clears after the TTL unless replaced first.
func (m *Message) Show(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	gen := m.replaceLocked(text)
	m.timer = m.sched.AfterFunc(m.ttl, func() { m.expire(gen) })
}

// Set sets a sticky text. Pending clears from earlier Shows are invalidated.
func (m *Message) Set(text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replaceLocked(text)
}

// Clear removes the text and cancels any pending clear.
func (m *Message) Clear() { m.Set("") }

// Text returns the current text.
func (m *Message) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

func (m *Message) replaceLocked(text string) uint64 {
	m.gen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.text = text
	return m.gen
}

func (m *Message) expire(gen uint64) {
	m.mu.Lock()
	if gen != m.gen {
		m.mu.Unlock()
		return // stale
	}
	m.text = ""
	m.timer = nil
	m.mu.Unlock()
	if m.onChange != nil {
		m.onChange()
	}
}
