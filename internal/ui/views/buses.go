package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"bustrip/internal/domain"
)

// FormatMinutes renders a duration in minutes as "5h 30m"
func FormatMinutes(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%dh %dm", total/60, total%60)
}

// FormatPrice renders a fare with thousands separators
func FormatPrice(price float64) string {
	return "₹" + humanize.CommafWithDigits(price, 2)
}

// Departs describes a departure relative to now, e.g. "3 hours from now"
func Departs(bus domain.Bus, now time.Time) string {
	dep := bus.Departure()
	if dep.IsZero() {
		return "departure unknown"
	}
	if now.IsZero() {
		now = time.Now()
	}
	return humanize.RelTime(dep, now, "ago", "from now")
}

func (r *Renderer) renderBusList(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Subtitle.Render(fmt.Sprintf("%s → %s", state.From, state.To)))
	b.WriteString("  ")
	b.WriteString(r.styles.Dim.Render(state.DateLabel))
	b.WriteString("\n\n")

	if len(state.Buses) == 0 {
		if !state.Loading {
			b.WriteString(r.styles.Dim.Render("No buses found for this date. Press esc to change your search."))
		}
		return b.String()
	}

	b.WriteString(r.styles.Dim.Render(humanize.Comma(int64(len(state.Buses))) + " " + plural(len(state.Buses), "bus", "buses")))
	b.WriteString("\n")

	// Each card takes four lines
	perPage := r.listHeight(state, 12) / 4
	if perPage < 1 {
		perPage = 1
	}
	start := 0
	if state.BusIndex >= perPage {
		start = state.BusIndex - perPage + 1
	}
	end := start + perPage
	if end > len(state.Buses) {
		end = len(state.Buses)
	}
	if start > 0 {
		b.WriteString(r.styles.Scroll.Render("↑ (more above)"))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		b.WriteString(r.renderBusCard(state.Buses[i], i == state.BusIndex, state.Now))
		b.WriteString("\n")
	}
	if end < len(state.Buses) {
		b.WriteString(r.styles.Scroll.Render("↓ (more below)"))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) renderBusCard(bus domain.Bus, selected bool, now time.Time) string {
	card := r.styles.Card
	if selected {
		card = r.styles.CardSelected
	}

	name := bus.Name
	if bus.Number != "" {
		name = fmt.Sprintf("%s (%s)", bus.Name, bus.Number)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		r.styles.Highlight.Render(name), "  ", r.styles.Price.Render(FormatPrice(bus.Price)))

	times := fmt.Sprintf("%s ── %s  %s", bus.DepartureTime, bus.ArrivalTime, r.styles.Dim.Render(FormatMinutes(bus.Route.EstimatedTime)))

	seats := lipgloss.NewStyle().Foreground(lipgloss.Color(SeatColor(bus.SeatsAvailable))).
		Render(fmt.Sprintf("%d %s left", bus.SeatsAvailable, plural(bus.SeatsAvailable, "seat", "seats")))
	footer := seats + r.styles.Dim.Render(" · departs "+Departs(bus, now))

	return card.Render(strings.Join([]string{header, times, footer}, "\n"))
}

// RouteDetails renders the stop list shown in the pager
func RouteDetails(bus domain.Bus) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	section := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(title.Render(fmt.Sprintf("%s %s", bus.Name, bus.Number)))
	b.WriteString("\n\n")

	route := bus.Route
	label := route.Name
	if route.Number != "" {
		label = fmt.Sprintf("%s (%s)", route.Name, route.Number)
	}
	b.WriteString(section.Render("Route"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", label)
	fmt.Fprintf(&b, "  %s → %s\n", route.StartLocation, route.EndLocation)
	fmt.Fprintf(&b, "  %s km, about %s\n", humanize.FtoaWithDigits(route.Distance, 1), FormatMinutes(route.EstimatedTime))
	b.WriteString("\n")

	b.WriteString(section.Render("Journey"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s → %s %s\n", bus.From, bus.DepartureTime, bus.To, bus.ArrivalTime)
	fmt.Fprintf(&b, "  %s, %d seats available\n", FormatPrice(bus.Price), bus.SeatsAvailable)
	b.WriteString("\n")

	b.WriteString(section.Render(fmt.Sprintf("Stops (%d)", len(route.Stops))))
	b.WriteString("\n")
	if len(route.Stops) == 0 {
		b.WriteString(dim.Render("  No stop information for this route"))
		b.WriteString("\n")
	}
	for i, stop := range route.Stops {
		arrive := "--:--"
		if !stop.ArrivalTime.IsZero() {
			arrive = stop.ArrivalTime.Format("15:04")
		}
		depart := "--:--"
		if !stop.DepartureTime.IsZero() {
			depart = stop.DepartureTime.Format("15:04")
		}
		fmt.Fprintf(&b, "  %2d. %-24s arr %s  dep %s\n", i+1, stop.Name, arrive, depart)
	}
	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
