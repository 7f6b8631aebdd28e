package views

import (
	"fmt"
	"strings"
)

func (r *Renderer) renderCitySearch(state ViewState) string {
	var b strings.Builder
	title := "Leaving from"
	if state.CityTarget == "to" {
		title = "Going to"
	}
	b.WriteString(r.styles.Subtitle.Render(title))
	b.WriteString("\n\n")

	for _, field := range state.Fields {
		b.WriteString(r.renderField(field))
		b.WriteString("\n")
	}

	if state.SearchError != "" {
		b.WriteString(r.styles.StatusError.Render("⚠ " + state.SearchError + " (ctrl+r to retry)"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case len(state.Cities) > 0:
		items := make([]string, len(state.Cities))
		for i, c := range state.Cities {
			items[i] = cityLine(c.Name, c.State, c.Country)
		}
		b.WriteString(r.renderList(items, state.CityIndex, r.listHeight(state, 14)))
	case strings.TrimSpace(state.SearchQuery) == "":
		b.WriteString(r.styles.Dim.Render("Type to search cities"))
	case !state.Loading && !state.SearchPending && state.SearchError == "":
		b.WriteString(r.styles.Dim.Render(fmt.Sprintf("No cities match %q", state.SearchQuery)))
	}
	return b.String()
}

func cityLine(name, region, country string) string {
	var parts []string
	for _, p := range []string{region, country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return name
	}
	return name + "  " + strings.Join(parts, ", ")
}
