package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end", "left", "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// SelectAction picks the list item at Index
type SelectAction struct {
	Index int
}

func (a SelectAction) Type() string { return "select" }

// BackAction steps back inside a multi-stage screen
type BackAction struct{}

func (a BackAction) Type() string { return "back" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Field int
	Text  string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type FocusFieldAction struct {
	Delta int
}

func (a FocusFieldAction) Type() string { return "focus_field" }

type SubmitFormAction struct {
	Mode   Mode
	Values []string
}

func (a SubmitFormAction) Type() string { return "submit_form" }

type CancelAction struct{}

func (a CancelAction) Type() string { return "cancel" }

// Code entry actions, Index is the segment that had focus
type SegmentInputAction struct {
	Index int
	Text  string
}

func (a SegmentInputAction) Type() string { return "segment_input" }

type SegmentBackspaceAction struct {
	Index int
}

func (a SegmentBackspaceAction) Type() string { return "segment_backspace" }

type PasteClipboardAction struct {
	Index int
}

func (a PasteClipboardAction) Type() string { return "paste_clipboard" }

type ClearCodeAction struct{}

func (a ClearCodeAction) Type() string { return "clear_code" }

type ResendCodeAction struct{}

func (a ResendCodeAction) Type() string { return "resend_code" }

type VerifyCodeAction struct{}

func (a VerifyCodeAction) Type() string { return "verify_code" }

// Trip actions
type PickCityAction struct {
	Target string // "from" or "to"
}

func (a PickCityAction) Type() string { return "pick_city" }

type SwapCitiesAction struct{}

func (a SwapCitiesAction) Type() string { return "swap_cities" }

type SetDateAction struct {
	Day string // "today" or "tomorrow"
}

func (a SetDateAction) Type() string { return "set_date" }

type SearchBusesAction struct{}

func (a SearchBusesAction) Type() string { return "search_buses" }

type ShowRouteAction struct {
	Index int
}

func (a ShowRouteAction) Type() string { return "show_route" }

type RetryAction struct{}

func (a RetryAction) Type() string { return "retry" }

type LogoutAction struct{}

func (a LogoutAction) Type() string { return "logout" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
