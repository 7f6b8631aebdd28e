// Package search turns fast-changing text input into a minimal,
// order-correct sequence of remote lookups with a single authoritative
// result list.
package search

import (
	"context"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bustrip/internal/debounce"
	"bustrip/internal/eventbus"
)

// Lookup fetches results for a term. It must return a non-nil error on
// failure; an empty slice is a successful "no matches".
type Lookup[R any] func(ctx context.Context, term string) ([]R, error)

// ResultMsg carries a finished lookup back into the event loop.
type ResultMsg[R any] struct {
	ID         int
	Generation uint64
	Term       string
	Results    []R
	Err        error
}

// Options configures a Controller. Zero values pick defaults.
type Options struct {
	Quiet   time.Duration     // debounce quiet period
	Timeout time.Duration     // per-lookup deadline, 0 means none
	Bus     eventbus.EventBus // optional
}

// Controller owns the query, the debounced query, the results and the
// generation counter for one mounted search surface. All methods must be
// called from the Bubble Tea update loop.
type Controller[R any] struct {
	lookup    Lookup[R]
	debouncer *debounce.Debouncer[string]
	timeout   time.Duration
	bus       eventbus.EventBus

	query      string
	debounced  string
	results    []R
	generation uint64
	loading    bool
	err        error
}

// New creates a controller around lookup
func New[R any](lookup Lookup[R], opts Options) *Controller[R] {
	return &Controller[R]{
		lookup:    lookup,
		debouncer: debounce.New[string](opts.Quiet),
		timeout:   opts.Timeout,
		bus:       opts.Bus,
	}
}

// OnQueryChange records text for display and restarts the quiet period.
// It never dispatches a lookup by itself.
func (c *Controller[R]) OnQueryChange(text string) tea.Cmd {
	if text == c.query {
		return nil
	}
	c.query = text
	return c.debouncer.Push(text)
}

// Update handles the controller's own messages. It reports whether msg
// belonged to this controller.
func (c *Controller[R]) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case debounce.SettledMsg:
		if !c.debouncer.Owns(msg) {
			return false, nil
		}
		v, ok := c.debouncer.Settle(msg)
		if !ok {
			return true, nil
		}
		return true, c.settle(v)

	case ResultMsg[R]:
		if msg.ID != c.debouncer.ID() {
			return false, nil
		}
		c.apply(msg)
		return true, nil
	}
	return false, nil
}

// Retry re-dispatches the current debounced query. Used by the UI after a
// failure; a no-op when the query is blank.
func (c *Controller[R]) Retry() tea.Cmd {
	if strings.TrimSpace(c.debounced) == "" {
		return nil
	}
	return c.dispatch(c.debounced)
}

// Reset is called when the search surface goes away. In-flight lookups
// are invalidated, not cancelled.
func (c *Controller[R]) Reset() {
	c.debouncer.Cancel()
	c.query = ""
	c.debounced = ""
	c.generation++
	c.results = nil
	c.loading = false
	c.err = nil
}

// Query returns the raw text as typed
func (c *Controller[R]) Query() string { return c.query }

// DebouncedQuery returns the last settled query
func (c *Controller[R]) DebouncedQuery() string { return c.debounced }

// Results returns the last applied batch. Callers must not modify it.
func (c *Controller[R]) Results() []R { return c.results }

// Pending reports whether the typed query has not settled yet
func (c *Controller[R]) Pending() bool { return c.query != c.debounced }

// Loading reports whether the latest dispatched lookup is outstanding
func (c *Controller[R]) Loading() bool { return c.loading }

// Err returns the failure of the latest lookup, if it failed
func (c *Controller[R]) Err() error { return c.err }

// Generation returns the latest dispatched generation
func (c *Controller[R]) Generation() uint64 { return c.generation }

func (c *Controller[R]) settle(v string) tea.Cmd {
	if v == c.debounced {
		return nil
	}
	c.debounced = v

	if strings.TrimSpace(v) == "" {
		// bump so a late response for the previous term cannot repopulate
		c.generation++
		c.results = nil
		c.loading = false
		c.err = nil
		return nil
	}
	return c.dispatch(v)
}

func (c *Controller[R]) dispatch(term string) tea.Cmd {
	c.generation++
	g := c.generation
	c.loading = true
	c.err = nil
	c.publish(eventbus.SearchDispatchedEvent{Term: term, Generation: g})

	id, lookup, timeout := c.debouncer.ID(), c.lookup, c.timeout
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		results, err := lookup(ctx, term)
		return ResultMsg[R]{ID: id, Generation: g, Term: term, Results: results, Err: err}
	}
}

func (c *Controller[R]) apply(msg ResultMsg[R]) {
	if msg.Generation != c.generation {
		if msg.Err != nil {
			log.Printf("search: stale lookup %q (gen %d) failed: %v", msg.Term, msg.Generation, msg.Err)
			c.publish(eventbus.SearchFailedEvent{Term: msg.Term, Generation: msg.Generation, Stale: true, Err: msg.Err})
		} else {
			log.Printf("search: discarding stale results for %q (gen %d, latest %d)", msg.Term, msg.Generation, c.generation)
		}
		return
	}

	c.loading = false
	if msg.Err != nil {
		log.Printf("search: lookup %q failed: %v", msg.Term, msg.Err)
		c.err = msg.Err
		c.publish(eventbus.SearchFailedEvent{Term: msg.Term, Generation: msg.Generation, Err: msg.Err})
		return
	}

	c.err = nil
	c.results = msg.Results
	c.publish(eventbus.SearchCompletedEvent{Term: msg.Term, Generation: msg.Generation, Count: len(msg.Results)})
}

func (c *Controller[R]) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
