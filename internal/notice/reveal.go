package notice

import (
	"sync"
	"time"
)

// Reveal uncovers a fixed number of tiles one at a time.
type Reveal struct {
	mu       sync.Mutex
	sched    Scheduler
	onChange func()

	total int
	shown int
	delay time.Duration
	gen   uint64
	timer Timer
}

// NewReveal returns an idle Reveal. onChange (optional) runs after every
// timer-driven step, outside the Reveal lock.
func NewReveal(sched Scheduler, onChange func()) *Reveal {
	if sched == nil {
		sched = Real
	}
	return &Reveal{sched: sched, onChange: onChange}
}

// Start begins revealing n tiles, one every delay, replacing any reveal in
// progress.
func (r *Reveal) Start(n int, delay time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	gen := r.resetLocked()
	r.total = n
	r.delay = delay
	if n > 0 {
		r.scheduleLocked(gen)
	}
}

// Cancel stops the reveal and forgets its progress.
func (r *Reveal) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetLocked()
}

// Progress returns how many of total tiles are visible.
func (r *Reveal) Progress() (shown, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.shown, r.total
}

// Done reports whether a started reveal has shown every tile.
func (r *Reveal) Done() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.total > 0 && r.shown == r.total
}

func (r *Reveal) resetLocked() uint64 {
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.total, r.shown = 0, 0
	return r.gen
}

func (r *Reveal) scheduleLocked(gen uint64) {
	r.timer = r.sched.AfterFunc(r.delay, func() { r.step(gen) })
}

func (r *Reveal) step(gen uint64) {
	r.mu.Lock()
	if gen != r.gen || r.shown >= r.total {
		r.mu.Unlock()
		return
	}
	r.shown++
	if r.shown < r.total {
		r.scheduleLocked(gen)
	} else {
		r.timer = nil
	}
	r.mu.Unlock()
	if r.onChange != nil {
		r.onChange()
	}
}
