package window

import (
	"log/slog"
	"sync"
	"time"

	"github.com/modu-ai/moai-deck/internal/store"
)

// DefaultDebounce is the quiet period before a window state is written.
const DefaultDebounce = 600 * time.Millisecond

// Debouncer runs the most recently scheduled func once no new call has
// arrived for the delay. Each Trigger cancels the pending timer.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	fn    func()
	gen   uint64
}

// NewDebouncer creates a Debouncer with the given delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, replacing any pending func.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.fn = fn
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Flush runs the pending func now, if any.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	fn := d.fn
	d.fn = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop cancels the pending func without running it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
	d.fn = nil
}

// fire runs fn only if no Trigger, Flush or Stop happened since the timer
// for gen was scheduled.
func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	fn := d.fn
	d.fn = nil
	d.timer = nil
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Saver coalesces window state updates into debounced store writes.
// Intermediate states may be lost.
type Saver struct {
	store    *store.Store[State]
	debounce *Debouncer
	logger   *slog.Logger

	mu  sync.Mutex
	err error
}

// NewSaver creates a Saver writing to st after delay of quiet.
func NewSaver(st *store.Store[State], delay time.Duration, logger *slog.Logger) *Saver {
	if logger == nil {
		logger = slog.Default().With("module", "window")
	}
	return &Saver{store: st, debounce: NewDebouncer(delay), logger: logger}
}

// Update records s and schedules a write.
func (sv *Saver) Update(s State) {
	sv.debounce.Trigger(func() {
		err := sv.store.Save(s)
		if err != nil {
			sv.logger.Warn("failed to save window state", "error", err)
		}
		sv.mu.Lock()
		sv.err = err
		sv.mu.Unlock()
	})
}

// Flush writes the pending state immediately and returns the error of the
// last write, if it failed.
func (sv *Saver) Flush() error {
	sv.debounce.Flush()

	sv.mu.Lock()
	defer sv.mu.Unlock()
	err := sv.err
	sv.err = nil
	return err
}
