// Package debounce republishes a rapidly changing value only after it has
// stopped changing for a quiet period. It is built for the Bubble Tea loop:
// the timer is a tea.Tick command and settlement is a message.
package debounce

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultQuiet is the quiet period used when none is configured.
const DefaultQuiet = 500 * time.Millisecond

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// SettledMsg is delivered when a quiet period elapses. Only the message
// from the most recent Push settles the debouncer.
type SettledMsg struct {
	id  int
	tag int
}

// Debouncer holds the pending value between Push and Settle.
type Debouncer[T any] struct {
	id      int
	tag     int
	quiet   time.Duration
	pending T
}

// New returns a debouncer with its own id so that several debouncers can
// share one program without stealing each other's ticks.
func New[T any](quiet time.Duration) *Debouncer[T] {
	if quiet <= 0 {
		quiet = DefaultQuiet
	}
	return &Debouncer[T]{id: nextID(), quiet: quiet}
}

// ID identifies the debouncer in SettledMsg routing.
func (d *Debouncer[T]) ID() int { return d.id }

// Quiet returns the configured quiet period.
func (d *Debouncer[T]) Quiet() time.Duration { return d.quiet }

// Push records v as the pending value and restarts the quiet period.
func (d *Debouncer[T]) Push(v T) tea.Cmd {
	d.tag++
	d.pending = v
	id, tag := d.id, d.tag
	return tea.Tick(d.quiet, func(time.Time) tea.Msg {
		return SettledMsg{id: id, tag: tag}
	})
}

// Settle reports the pending value if msg is the tick of the latest Push.
func (d *Debouncer[T]) Settle(msg SettledMsg) (T, bool) {
	if msg.id != d.id || msg.tag != d.tag {
		var zero T
		return zero, false
	}
	return d.pending, true
}

// Owns reports whether msg was produced by this debouncer, stale or not.
func (d *Debouncer[T]) Owns(msg SettledMsg) bool {
	return msg.id == d.id
}

// Cancel drops the pending value; any outstanding tick becomes stale.
func (d *Debouncer[T]) Cancel() {
	d.tag++
	var zero T
	d.pending = zero
}
