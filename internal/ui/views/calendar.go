package views

import (
	"fmt"
	"strings"
	"time"
)

// MonthGrid returns the weeks of the month containing day, Monday first.
// Cells outside the month are zero times.
func MonthGrid(day time.Time) [][]time.Time {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	offset := (int(first.Weekday()) + 6) % 7

	var weeks [][]time.Time
	week := make([]time.Time, 7)
	col := offset
	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		week[col] = d
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week = make([]time.Time, 7)
			col = 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (r *Renderer) renderCalendar(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Subtitle.Render("Select your journey date"))
	b.WriteString("\n\n")

	cursor := state.CalendarCursor
	b.WriteString(r.styles.Highlight.Render(fmt.Sprintf("%s %d", cursor.Month(), cursor.Year())))
	b.WriteString("\n")

	for _, name := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		b.WriteString(r.styles.CalendarDay.Inherit(r.styles.Dim).Render(name))
	}
	b.WriteString("\n")

	for _, week := range MonthGrid(cursor) {
		for _, day := range week {
			if day.IsZero() {
				b.WriteString(r.styles.CalendarDay.Render(""))
				continue
			}
			style := r.styles.CalendarDay
			switch {
			case sameDay(day, cursor):
				style = r.styles.CalendarPick
			case sameDay(day, state.Today):
				style = r.styles.CalendarToday
			case day.Before(state.Today):
				style = style.Inherit(r.styles.Dim)
			}
			b.WriteString(style.Render(fmt.Sprintf("%d", day.Day())))
		}
		b.WriteString("\n")
	}
	return b.String()
}
