package views

import (
	"strings"
)

func (r *Renderer) renderHome(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Subtitle.Render("Plan your journey"))
	b.WriteString("\n\n")

	b.WriteString(r.renderSlot("From", state.From, "f"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("              ⇅ s to swap"))
	b.WriteString("\n")
	b.WriteString(r.renderSlot("To", state.To, "t"))
	b.WriteString("\n\n")

	date := r.styles.Highlight.Render(state.DateLabel)
	var chips []string
	chips = append(chips, r.chip("Today (n)", state.IsToday))
	chips = append(chips, r.chip("Tomorrow (m)", state.IsTomorrow))
	b.WriteString(r.styles.Label.Render("Date") + date + "   " + strings.Join(chips, " "))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Accent.Render("enter  Search buses"))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) renderSlot(label, city, key string) string {
	value := r.styles.Dim.Render("Select city (" + key + ")")
	if city != "" {
		value = r.styles.Highlight.Render(city)
	}
	return r.styles.Label.Render(label) + value
}

func (r *Renderer) chip(text string, active bool) string {
	if active {
		return r.styles.CalendarPick.UnsetWidth().Padding(0, 1).Render(text)
	}
	return r.styles.Dim.Padding(0, 1).Render(text)
}
