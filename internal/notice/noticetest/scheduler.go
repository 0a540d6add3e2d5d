// Package noticetest provides a manually driven notice.Scheduler for tests.
package noticetest

import (
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/notice"
)

// Scheduler fires timers only when Advance moves its clock past them.
// Callbacks run synchronously on the goroutine calling Advance.
type Scheduler struct {
	mu      sync.Mutex
	now     time.Duration
	seq     int
	pending []*timer
}

type timer struct {
	s       *Scheduler
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

var _ notice.Scheduler = (*Scheduler)(nil)

// New returns a Scheduler at time zero.
func New() *Scheduler { return &Scheduler{} }

// AfterFunc registers f to run once the clock reaches now+d.
func (s *Scheduler) AfterFunc(d time.Duration, f func()) notice.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	t := &timer{s: s, at: s.now + d, seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	return t
}

// Stop cancels the timer; it reports whether it was still pending.
func (t *timer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward by d, firing due timers in time order,
// including timers scheduled by callbacks that fall inside the window.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	s.mu.Unlock()
	for {
		s.mu.Lock()
		next := s.nextDueLocked(target)
		if next == nil {
			s.now = target
			s.mu.Unlock()
			return
		}
		next.fired = true
		s.now = next.at
		s.mu.Unlock()
		next.f()
	}
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.pending {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func (s *Scheduler) nextDueLocked(target time.Duration) *timer {
	var best *timer
	live := s.pending[:0]
	for _, t := range s.pending {
		if t.stopped || t.fired {
			continue
		}
		live = append(live, t)
		if t.at > target {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	s.pending = live
	return best
}
