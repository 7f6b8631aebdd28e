package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type city struct {
	ID   string
	Name string
}

// fakeLookup records every term it is called with and answers from a table
type fakeLookup struct {
	mu      sync.Mutex
	calls   []string
	answers map[string][]city
	fail    map[string]error
}

func (f *fakeLookup) lookup(_ context.Context, term string) ([]city, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, term)
	if err := f.fail[term]; err != nil {
		return nil, err
	}
	return f.answers[term], nil
}

func (f *fakeLookup) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func newController(f *fakeLookup) *Controller[city] {
	return New[city](f.lookup, Options{Quiet: time.Millisecond})
}

// run feeds the tick produced by cmd back into the controller and returns
// the lookup command it dispatched, if any.
func settle(t *testing.T, c *Controller[city], tickCmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, tickCmd)
	handled, cmd := c.Update(tickCmd())
	require.True(t, handled)
	return cmd
}

func deliver(t *testing.T, c *Controller[city], lookupCmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, lookupCmd)
	handled, _ := c.Update(lookupCmd())
	require.True(t, handled)
}

func TestBurstDispatchesOnlyFinalValue(t *testing.T) {
	f := &fakeLookup{answers: map[string][]city{"Par": {{ID: "1", Name: "Paris"}}}}
	c := newController(f)

	t1 := c.OnQueryChange("P")
	t2 := c.OnQueryChange("Pa")
	t3 := c.OnQueryChange("Par")
	assert.Equal(t, "Par", c.Query())

	assert.Nil(t, settle(t, c, t1))
	assert.Nil(t, settle(t, c, t2))
	lookup := settle(t, c, t3)
	require.NotNil(t, lookup)
	assert.True(t, c.Loading())

	deliver(t, c, lookup)

	assert.Equal(t, []string{"Par"}, f.Calls())
	assert.Equal(t, []city{{ID: "1", Name: "Paris"}}, c.Results())
	assert.False(t, c.Loading())
	assert.NoError(t, c.Err())
}

func TestLatestGenerationWinsOverSlowEarlierResponse(t *testing.T) {
	f := &fakeLookup{answers: map[string][]city{
		"Par":  {{ID: "A", Name: "A"}},
		"Pari": {{ID: "B", Name: "B"}, {ID: "C", Name: "C"}},
	}}
	c := newController(f)

	slow := settle(t, c, c.OnQueryChange("Par"))
	require.NotNil(t, slow)
	assert.Equal(t, uint64(1), c.Generation())

	fast := settle(t, c, c.OnQueryChange("Pari"))
	require.NotNil(t, fast)
	assert.Equal(t, uint64(2), c.Generation())

	deliver(t, c, fast)
	deliver(t, c, slow)

	assert.Equal(t, []city{{ID: "B", Name: "B"}, {ID: "C", Name: "C"}}, c.Results())
	assert.False(t, c.Loading())
}

func TestSameTextDoesNotRedispatch(t *testing.T) {
	f := &fakeLookup{answers: map[string][]city{"Delhi": {{ID: "d", Name: "Delhi"}}}}
	c := newController(f)

	deliver(t, c, settle(t, c, c.OnQueryChange("Delhi")))

	// unchanged text does not even restart the timer
	assert.Nil(t, c.OnQueryChange("Delhi"))

	// edit and revert inside one window settles on the same value
	c.OnQueryChange("Delh")
	back := c.OnQueryChange("Delhi")
	assert.Nil(t, settle(t, c, back))

	assert.Equal(t, []string{"Delhi"}, f.Calls())
}

func TestBlankQueryClearsWithoutNetwork(t *testing.T) {
	f := &fakeLookup{answers: map[string][]city{"Goa": {{ID: "g", Name: "Goa"}}}}
	c := newController(f)

	deliver(t, c, settle(t, c, c.OnQueryChange("Goa")))
	require.Len(t, c.Results(), 1)

	assert.Nil(t, settle(t, c, c.OnQueryChange("   ")))
	assert.Empty(t, c.Results())
	assert.Equal(t, []string{"Goa"}, f.Calls())
}

func TestBlankQueryInvalidatesInFlightLookup(t *testing.T) {
	f := &fakeLookup{answers: map[string][]city{"Goa": {{ID: "g", Name: "Goa"}}}}
	c := newController(f)

	inFlight := settle(t, c, c.OnQueryChange("Goa"))
	assert.Nil(t, settle(t, c, c.OnQueryChange("")))

	deliver(t, c, inFlight)
	assert.Empty(t, c.Results())
}

func TestPaddedAndSingleCharacterQueriesPassThrough(t *testing.T) {
	f := &fakeLookup{}
	c := newController(f)

	deliver(t, c, settle(t, c, c.OnQueryChange("a")))
	deliver(t, c, settle(t, c, c.OnQueryChange(" pune ")))

	assert.Equal(t, []string{"a", " pune "}, f.Calls())
}

func TestFailurePreservesResults(t *testing.T) {
	boom := errors.New("timeout")
	f := &fakeLookup{
		answers: map[string][]city{"Pune": {{ID: "p", Name: "Pune"}}},
		fail:    map[string]error{"Punx": boom},
	}
	c := newController(f)

	deliver(t, c, settle(t, c, c.OnQueryChange("Pune")))
	deliver(t, c, settle(t, c, c.OnQueryChange("Punx")))

	assert.Equal(t, []city{{ID: "p", Name: "Pune"}}, c.Results())
	assert.ErrorIs(t, c.Err(), boom)
	assert.False(t, c.Loading())

	// a later success clears the error flag
	delete(f.fail, "Punx")
	deliver(t, c, c.Retry())
	assert.NoError(t, c.Err())
	assert.Empty(t, c.Results())
}

func TestRetryClearsErrorWhileInFlight(t *testing.T) {
	f := &fakeLookup{
		answers: map[string][]city{"Pune": {{ID: "p", Name: "Pune"}}},
		fail:    map[string]error{"Punx": errors.New("timeout")},
	}
	c := newController(f)

	deliver(t, c, settle(t, c, c.OnQueryChange("Pune")))
	deliver(t, c, settle(t, c, c.OnQueryChange("Punx")))
	require.Error(t, c.Err())

	retry := c.Retry()
	require.NotNil(t, retry)
	assert.NoError(t, c.Err())
	assert.True(t, c.Loading())
	assert.Equal(t, []city{{ID: "p", Name: "Pune"}}, c.Results())

	deliver(t, c, retry)
	assert.Error(t, c.Err())
	assert.Equal(t, []city{{ID: "p", Name: "Pune"}}, c.Results())
}

func TestPendingUntilSettled(t *testing.T) {
	c := newController(&fakeLookup{})
	assert.False(t, c.Pending())

	tick := c.OnQueryChange("P")
	assert.True(t, c.Pending())
	assert.False(t, c.Loading())

	settle(t, c, tick)
	assert.False(t, c.Pending())
}

func TestStaleFailureIsIgnored(t *testing.T) {
	f := &fakeLookup{
		answers: map[string][]city{"Agra": {{ID: "a", Name: "Agra"}}},
		fail:    map[string]error{"Agr": errors.New("503")},
	}
	c := newController(f)

	stale := settle(t, c, c.OnQueryChange("Agr"))
	latest := settle(t, c, c.OnQueryChange("Agra"))

	deliver(t, c, latest)
	deliver(t, c, stale)

	assert.NoError(t, c.Err())
	assert.Equal(t, []city{{ID: "a", Name: "Agra"}}, c.Results())
}

func TestResetInvalidatesAndClears(t *testing.T) {
	f := &fakeLookup{answers: map[string][]city{"Kota": {{ID: "k", Name: "Kota"}}}}
	c := newController(f)

	pendingTick := c.OnQueryChange("Kota")
	c.Reset()

	assert.Equal(t, "", c.Query())
	assert.Nil(t, settle(t, c, pendingTick))
	assert.Empty(t, f.Calls())

	inFlight := settle(t, c, c.OnQueryChange("Kota"))
	c.Reset()
	deliver(t, c, inFlight)
	assert.Empty(t, c.Results())
	assert.False(t, c.Loading())
}

func TestForeignMessagesAreNotHandled(t *testing.T) {
	a := newController(&fakeLookup{})
	b := newController(&fakeLookup{})

	tickA := a.OnQueryChange("x")
	handled, cmd := b.Update(tickA())
	assert.False(t, handled)
	assert.Nil(t, cmd)

	handled, _ = b.Update(tea.KeyMsg{})
	assert.False(t, handled)
}

func TestLookupReceivesDeadline(t *testing.T) {
	var hadDeadline bool
	c := New[city](func(ctx context.Context, term string) ([]city, error) {
		_, hadDeadline = ctx.Deadline()
		return nil, nil
	}, Options{Quiet: time.Millisecond, Timeout: time.Second})

	deliver(t, c, settle(t, c, c.OnQueryChange("Surat")))
	assert.True(t, hadDeadline)
}
