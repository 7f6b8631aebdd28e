package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"bustrip/internal/domain"
	"bustrip/internal/ui/input/types"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Screen        types.Mode
	UserName      string
	StatusMessage string
	StatusIsError bool
	Loading       bool
	LoadingLabel  string
	Spinner       string
	ShowHelp      bool
	HelpModel     help.Model
	Keys          help.KeyMap

	// Onboarding
	OnboardingStage int // 0 country, 1 language
	Country         string
	Options         []string
	OptionIndex     int

	// Login, register and city search forms
	Fields      []FieldView
	FieldErrors map[string]string

	// Code entry
	Segments     []string
	SegmentFocus int
	CodeEmail    string

	// Home
	From       string
	To         string
	DateLabel  string
	IsToday    bool
	IsTomorrow bool

	// City search
	CityTarget    string
	Cities        []domain.City
	CityIndex     int
	SearchQuery   string
	SearchPending bool
	SearchError   string

	// Date picker
	CalendarCursor time.Time
	Today          time.Time

	// Bus list
	Buses    []domain.Bus
	BusIndex int
	Now      time.Time
}

// FieldView is one rendered form input
type FieldView struct {
	Key     string // validation field name
	Label   string
	Input   string
	Focused bool
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles exposes the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	switch state.Screen {
	case types.ModeOnboarding:
		content.WriteString(r.renderOnboarding(state))
	case types.ModeLogin:
		content.WriteString(r.renderForm(state, "Welcome back", "Sign in to book your next trip"))
	case types.ModeRegister:
		content.WriteString(r.renderForm(state, "Create account", "We will email you a verification code"))
	case types.ModeOTP:
		content.WriteString(r.renderOTP(state))
	case types.ModeHome:
		content.WriteString(r.renderHome(state))
	case types.ModeCitySearch:
		content.WriteString(r.renderCitySearch(state))
	case types.ModeDatePicker:
		content.WriteString(r.renderCalendar(state))
	case types.ModeBusList:
		content.WriteString(r.renderBusList(state))
	}

	if state.StatusMessage != "" {
		style := r.styles.Status
		if state.StatusIsError {
			style = style.Foreground(lipgloss.Color("203"))
		}
		content.WriteString("\n")
		content.WriteString(style.Render(state.StatusMessage))
	}

	// Push the key hints to the bottom line
	helpText := ""
	if !state.ShowHelp && state.Keys != nil {
		helpText = state.HelpModel.View(state.Keys)
	}
	if helpText != "" {
		currentLines := strings.Count(content.String(), "\n") + 1
		availableLines := state.Height - 2
		if availableLines <= 0 {
			availableLines = 22
		}
		if padding := availableLines - currentLines - 1; padding > 0 {
			content.WriteString(strings.Repeat("\n", padding))
		} else {
			content.WriteString("\n")
		}
		content.WriteString(helpText)
	}

	main := r.styles.Main.Render(content.String())

	if state.ShowHelp && state.Keys != nil {
		full := state.HelpModel
		full.ShowAll = true
		popup := r.styles.Subtitle.Render("Keys") + "\n\n" + full.View(state.Keys) + "\n\n" + r.styles.Dim.Render("? or esc to close")
		return r.popupRender.RenderPopupOverlay(main, popup, state.Height, state.Width, r.styles.HelpBox)
	}
	return main
}

func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render("bustrip")

	right := ""
	if state.Loading {
		label := state.LoadingLabel
		if label == "" {
			label = "Loading"
		}
		right = r.styles.StatusLoading.Render(fmt.Sprintf("%s %s", state.Spinner, label))
	}
	if state.UserName != "" {
		user := r.styles.Accent.Render(state.UserName)
		if right != "" {
			right = right + "  " + user
		} else {
			right = user
		}
	}
	if right == "" {
		return logo
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

// renderList draws items with a cursor, scrolled to keep it visible
func (r *Renderer) renderList(items []string, index, height int) string {
	if len(items) == 0 {
		return ""
	}
	visible := height
	if visible < 3 {
		visible = 3
	}
	start := 0
	if index >= visible {
		start = index - visible + 1
	}
	end := start + visible
	if end > len(items) {
		end = len(items)
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(r.styles.Scroll.Render("↑ (more above)"))
		b.WriteString("\n")
	}
	for i := start; i < end; i++ {
		if i == index {
			b.WriteString(r.styles.Highlight.Render("› " + items[i]))
		} else {
			b.WriteString("  " + items[i])
		}
		b.WriteString("\n")
	}
	if end < len(items) {
		b.WriteString(r.styles.Scroll.Render("↓ (more below)"))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) listHeight(state ViewState, reserved int) int {
	if state.Height <= 0 {
		return 10
	}
	return state.Height - reserved
}
