package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode, one per screen
type Mode int

const (
	ModeOnboarding Mode = iota
	ModeLogin
	ModeRegister
	ModeOTP
	ModeHome
	ModeCitySearch
	ModeDatePicker
	ModeBusList
)

func (m Mode) String() string {
	switch m {
	case ModeOnboarding:
		return "onboarding"
	case ModeLogin:
		return "login"
	case ModeRegister:
		return "register"
	case ModeOTP:
		return "otp"
	case ModeHome:
		return "home"
	case ModeCitySearch:
		return "city-search"
	case ModeDatePicker:
		return "date-picker"
	case ModeBusList:
		return "bus-list"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	// FocusedSegment is the code segment that currently owns the cursor
	FocusedSegment() int
	// Busy reports a request in flight that blocks submitting again
	Busy() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
