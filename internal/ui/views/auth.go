package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (r *Renderer) renderForm(state ViewState, title, subtitle string) string {
	var b strings.Builder
	b.WriteString(r.styles.Subtitle.Render(title))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render(subtitle))
	b.WriteString("\n\n")

	for _, field := range state.Fields {
		b.WriteString(r.renderField(field))
		b.WriteString("\n")
		if msg := state.FieldErrors[field.Key]; msg != "" {
			b.WriteString(r.styles.FieldError.Render(msg))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *Renderer) renderField(field FieldView) string {
	box := r.styles.Field
	if field.Focused {
		box = r.styles.FieldFocused
	}
	label := r.styles.Label.Render(field.Label)
	return lipgloss.JoinHorizontal(lipgloss.Center, label, box.Render(field.Input))
}
