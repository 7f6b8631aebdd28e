package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Label         lipgloss.Style
	Field         lipgloss.Style
	FieldFocused  lipgloss.Style
	FieldError    lipgloss.Style
	Segment       lipgloss.Style
	SegmentFocus  lipgloss.Style
	SegmentFilled lipgloss.Style
	Card          lipgloss.Style
	CardSelected  lipgloss.Style
	HelpBox       lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Accent        lipgloss.Style
	Price         lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusLoading lipgloss.Style
	StatusSuccess lipgloss.Style
	CalendarDay   lipgloss.Style
	CalendarToday lipgloss.Style
	CalendarPick  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Dim:      lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Label: lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(12),
		Field: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1).
			Width(36),
		FieldFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1).
			Width(36),
		FieldError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).PaddingLeft(12),
		Segment: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Width(3).
			Align(lipgloss.Center),
		SegmentFocus: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("226")).
			Width(3).
			Align(lipgloss.Center),
		SegmentFilled: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("78")).
			Width(3).
			Align(lipgloss.Center),
		Card: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("226")).
			Padding(0, 1),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg:   lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Accent:        lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Price:         lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		CalendarDay:   lipgloss.NewStyle().Width(4).Align(lipgloss.Right),
		CalendarToday: lipgloss.NewStyle().Width(4).Align(lipgloss.Right).Foreground(lipgloss.Color("33")).Bold(true),
		CalendarPick:  lipgloss.NewStyle().Width(4).Align(lipgloss.Right).Background(lipgloss.Color("99")).Foreground(lipgloss.Color("231")),
	}
}

// SeatColor returns the color for a seat count
func SeatColor(seats int) string {
	switch {
	case seats <= 0:
		return "203" // red, sold out
	case seats < 10:
		return "214" // yellow, filling up
	default:
		return "78" // green
	}
}
