package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (r *Renderer) renderOTP(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Subtitle.Render("OTP Verification"))
	b.WriteString("\n")
	target := "your email"
	if state.CodeEmail != "" {
		target = state.CodeEmail
	}
	b.WriteString(r.styles.Dim.Render(fmt.Sprintf("Enter the %d-digit code sent to %s", len(state.Segments), target)))
	b.WriteString("\n\n")
	b.WriteString(r.RenderSegments(state.Segments, state.SegmentFocus))
	b.WriteString("\n")
	return b.String()
}

// RenderSegments draws one box per code digit, highlighting the focused one
func (r *Renderer) RenderSegments(segments []string, focus int) string {
	boxes := make([]string, len(segments))
	for i, s := range segments {
		style := r.styles.Segment
		switch {
		case i == focus:
			style = r.styles.SegmentFocus
		case s != "":
			style = r.styles.SegmentFilled
		}
		if s == "" {
			s = " "
		}
		boxes[i] = style.Render(s)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}
