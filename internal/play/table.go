// internal/play/table.go
//
// Table hosts one game session for one client and layers the presentation
// state on top of it:
//   - transient advisory messages ("Word must be 5 letters", "Not in word list")
//     that clear themselves after a TTL;
//   - the sticky win/loss message (base variant), or the staged celebration
//     reveal and proposal dialog (celebration variant);
//   - change notifications for push transports.
//
// The session itself is single-threaded; Table serialises access with its
// own mutex so HTTP handlers, WebSocket readers, and timer callbacks can
// share it.

package play

import (
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/notice"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

// DefaultRevealDelay is the per-tile delay of the celebration reveal.
const DefaultRevealDelay = 150 * time.Millisecond

// ErrNoCelebration is returned for dialog events when the celebration
// variant is disabled.
var ErrNoCelebration = errors.New("play: celebration variant disabled")

// Config controls presentation behaviour. Zero values select defaults.
type Config struct {
	MessageTTL      time.Duration
	Celebration     bool
	CelebrationText string
	RevealDelay     time.Duration
	Scheduler       notice.Scheduler
	Now             func() time.Time
}

// Table is one player's game plus its presentation state.
type Table struct {
	id    string
	cfg   Config
	tiles []string

	mu         sync.Mutex
	session    *game.Session
	msg        *notice.Message
	reveal     *notice.Reveal
	dialog     bool
	lastActive time.Time

	subMu sync.Mutex
	subs  map[chan struct{}]struct{}
}

// New wraps session in a Table. It fails only when the celebration text
// does not fit the celebration grid.
func New(id string, session *game.Session, cfg Config) (*Table, error) {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.RevealDelay <= 0 {
		cfg.RevealDelay = DefaultRevealDelay
	}
	t := &Table{
		id:      id,
		cfg:     cfg,
		session: session,
		subs:    make(map[chan struct{}]struct{}),
	}
	if cfg.Celebration {
		text := cfg.CelebrationText
		if text == "" {
			text = DefaultCelebrationText
		}
		tiles, err := Layout(text)
		if err != nil {
			return nil, err
		}
		t.tiles = tiles
	}
	t.msg = notice.NewMessage(cfg.Scheduler, cfg.MessageTTL, t.notify)
	t.reveal = notice.NewReveal(cfg.Scheduler, t.notify)
	t.lastActive = cfg.Now()
	return t, nil
}

// ID returns the table identifier.
func (t *Table) ID() string { return t.id }

// Start hands the word list to a session that is still loading.
func (t *Table) Start(list words.List) {
	t.mu.Lock()
	t.session.Start(list)
	t.mu.Unlock()
	t.notify()
}

// Press applies one key from the input surface.
//
// Advisory errors (game.ErrInvalidLength, game.ErrNotInDictionary) are shown
// as transient messages and returned so callers can report them. Input while
// loading or after the game ended is ignored.
func (t *Table) Press(key string) error {
	t.mu.Lock()
	t.lastActive = t.cfg.Now()
	out, err := t.session.Press(key)
	if err != nil {
		if text, _, ok := game.Advisory(err); ok {
			t.msg.Show(text)
		} else {
			err = nil
		}
	} else if out != nil && out.State.Over() {
		t.finishLocked(out)
	}
	t.mu.Unlock()
	t.notify()
	return err
}

// finishLocked presents the end of the game. The celebration variant hides
// the result and starts the reveal; Won/Lost is unaffected either way.
func (t *Table) finishLocked(out *game.Outcome) {
	if t.cfg.Celebration {
		t.msg.Clear()
		t.reveal.Start(len(t.tiles), t.cfg.RevealDelay)
		return
	}
	t.msg.Set(out.Message)
}

// Reset starts a new game. It returns game.ErrNotOver while still playing.
func (t *Table) Reset() error {
	t.mu.Lock()
	t.lastActive = t.cfg.Now()
	err := t.session.Reset()
	if err == nil {
		t.msg.Clear()
		t.reveal.Cancel()
		t.dialog = false
	}
	t.mu.Unlock()
	if err == nil {
		t.notify()
	}
	return err
}

// OpenDialog opens the proposal dialog. It is a UI-only event and never
// touches the game state.
func (t *Table) OpenDialog() error { return t.setDialog(true) }

// CloseDialog closes the proposal dialog.
func (t *Table) CloseDialog() error { return t.setDialog(false) }

func (t *Table) setDialog(open bool) error {
	if !t.cfg.Celebration {
		return ErrNoCelebration
	}
	t.mu.Lock()
	if !t.session.State().Over() {
		t.mu.Unlock()
		return game.ErrNotOver
	}
	t.lastActive = t.cfg.Now()
	t.dialog = open
	t.mu.Unlock()
	t.notify()
	return nil
}

// LastActive returns the time of the last player action.
func (t *Table) LastActive() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastActive
}

// State returns the session state.
func (t *Table) State() game.State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.session.State()
}

// Snapshot renders the current view.
func (t *Table) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	st := t.session.State()
	snap := Snapshot{
		ID:      t.id,
		State:   st,
		Row:     t.session.Row(),
		Board:   t.session.Board(),
		Keys:    keys(t.session.Keyboard()),
		Message: t.msg.Text(),
	}
	if st.Over() {
		snap.Solution = t.session.Solution()
		if t.cfg.Celebration {
			snap.Celebration = t.celebrationLocked()
		}
	}
	return snap
}

func (t *Table) celebrationLocked() *Celebration {
	shown, _ := t.reveal.Progress()
	tiles := make([]string, len(t.tiles))
	copy(tiles, t.tiles[:shown])
	return &Celebration{
		Tiles:    tiles,
		Revealed: shown,
		Total:    len(t.tiles),
		Done:     t.reveal.Done(),
		Dialog:   t.dialog,
	}
}

// Subscribe returns a channel that receives a value after every change.
// Notifications coalesce: a slow reader sees at least one pending signal,
// never a backlog. cancel releases the subscription.
func (t *Table) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	t.subMu.Lock()
	t.subs[ch] = struct{}{}
	t.subMu.Unlock()
	return ch, func() { t.unsubscribe(ch) }
}

func (t *Table) unsubscribe(ch chan struct{}) {
	t.subMu.Lock()
	defer t.subMu.Unlock()
	if _, ok := t.subs[ch]; ok {
		delete(t.subs, ch)
		close(ch)
	}
}

func (t *Table) notify() {
	t.subMu.Lock()
	defer t.subMu.Unlock()
	for ch := range t.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Close stops pending timers and closes every subscription channel.
func (t *Table) Close() {
	t.mu.Lock()
	t.msg.Clear()
	t.reveal.Cancel()
	t.mu.Unlock()

	t.subMu.Lock()
	defer t.subMu.Unlock()
	for ch := range t.subs {
		delete(t.subs, ch)
		close(ch)
	}
}
