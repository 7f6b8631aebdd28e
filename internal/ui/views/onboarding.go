package views

import (
	"strings"
)

func (r *Renderer) renderOnboarding(state ViewState) string {
	var b strings.Builder
	if state.OnboardingStage == 0 {
		b.WriteString(r.styles.Subtitle.Render("Where are you travelling?"))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("Choose your country"))
	} else {
		b.WriteString(r.styles.Subtitle.Render("Choose your language"))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render("Country: " + state.Country + " (esc to change)"))
	}
	b.WriteString("\n\n")
	b.WriteString(r.renderList(state.Options, state.OptionIndex, r.listHeight(state, 12)))
	return b.String()
}
