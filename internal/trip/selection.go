// Package trip holds the From/To/date selection that feeds a bus search.
package trip

import (
	"errors"
	"time"

	"bustrip/internal/domain"
)

// DateFormat is the wire format of the journey date
const DateFormat = "2006-01-02"

// labelFormat renders like "Mon 1-Sep"
const labelFormat = "Mon 2-Jan"

// ErrMissingCity is returned when a search is requested without both cities
var ErrMissingCity = errors.New("choose both a departure and a destination city")

// Selection is plain mutable state; nothing here talks to the network.
type Selection struct {
	From *domain.City
	To   *domain.City
	Date time.Time

	now func() time.Time
}

// NewSelection starts with no cities and today's date
func NewSelection(now func() time.Time) *Selection {
	if now == nil {
		now = time.Now
	}
	s := &Selection{now: now}
	s.Today()
	return s
}

// SetFrom sets the departure city
func (s *Selection) SetFrom(c domain.City) { s.From = &c }

// SetTo sets the destination city
func (s *Selection) SetTo(c domain.City) { s.To = &c }

// SetDate sets the journey date, dropping the time of day
func (s *Selection) SetDate(d time.Time) {
	s.Date = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// Today selects the current date
func (s *Selection) Today() { s.SetDate(s.now()) }

// Tomorrow selects the day after the current date
func (s *Selection) Tomorrow() { s.SetDate(s.now().AddDate(0, 0, 1)) }

// IsToday reports whether the selected date is today
func (s *Selection) IsToday() bool { return sameDay(s.Date, s.now()) }

// IsTomorrow reports whether the selected date is tomorrow
func (s *Selection) IsTomorrow() bool { return sameDay(s.Date, s.now().AddDate(0, 0, 1)) }

// Swap exchanges From and To
func (s *Selection) Swap() {
	s.From, s.To = s.To, s.From
}

// Label renders the selected date for display
func (s *Selection) Label() string {
	return s.Date.Format(labelFormat)
}

// Request builds the bus search request. The API matches cities by name.
func (s *Selection) Request() (domain.BusSearchRequest, error) {
	if s.From == nil || s.To == nil {
		return domain.BusSearchRequest{}, ErrMissingCity
	}
	return domain.BusSearchRequest{
		From: s.From.Name,
		To:   s.To.Name,
		Date: s.Date.Format(DateFormat),
	}, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
