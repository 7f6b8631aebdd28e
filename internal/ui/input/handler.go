package input

import (
	"bustrip/internal/ui/input/modes"
	"bustrip/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	forms       map[types.Mode]*modes.Form // Text fields for form modes
}

func New(start types.Mode) *Handler {
	h := &Handler{
		currentMode: start,
		modes:       make(map[types.Mode]types.ModeHandler),
		forms:       make(map[types.Mode]*modes.Form),
	}

	h.forms[types.ModeLogin] = modes.NewLoginForm()
	h.forms[types.ModeRegister] = modes.NewRegisterForm()
	h.forms[types.ModeCitySearch] = modes.NewCitySearchForm()

	// Register all mode handlers
	h.modes[types.ModeOnboarding] = modes.NewOnboardingMode()
	h.modes[types.ModeLogin] = modes.NewLoginMode(h.forms[types.ModeLogin])
	h.modes[types.ModeRegister] = modes.NewRegisterMode(h.forms[types.ModeRegister])
	h.modes[types.ModeOTP] = modes.NewOTPMode()
	h.modes[types.ModeHome] = modes.NewHomeMode()
	h.modes[types.ModeCitySearch] = modes.NewCitySearchMode(h.forms[types.ModeCitySearch])
	h.modes[types.ModeDatePicker] = modes.NewDatePickerMode()
	h.modes[types.ModeBusList] = modes.NewBusListMode()

	if form := h.forms[start]; form != nil {
		form.Focus(0)
	}
	return h
}

// HandleKey routes a key to the current mode. ChangeModeAction values are
// passed through untouched; the model applies them with ChangeMode.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	form := h.forms[h.currentMode]
	if !consumed && form == nil {
		return nil, nil
	}

	var cmds []tea.Cmd
	var allActions []types.Action

	for _, action := range actions {
		if focus, ok := action.(types.FocusFieldAction); ok {
			if form != nil {
				cmds = append(cmds, form.Move(focus.Delta))
			}
			continue
		}
		allActions = append(allActions, action)
	}

	// Keys the mode left alone go to the focused field
	if !consumed && form != nil {
		before := form.Value(form.Focused())
		cmds = append(cmds, form.Update(msg))
		if after := form.Value(form.Focused()); after != before {
			allActions = append(allActions, types.UpdateTextAction{Field: form.Focused(), Text: after})
		}
	}

	return allActions, tea.Batch(cmds...)
}

// ChangeMode leaves the current mode and enters mode, returning whatever
// actions the two modes emit on the way.
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	var actions []types.Action
	if old := h.modes[h.currentMode]; old != nil {
		actions = append(actions, old.Exit(ctx)...)
	}
	if form := h.forms[h.currentMode]; form != nil {
		form.Blur()
	}

	h.currentMode = mode

	if next := h.modes[mode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}

	var cmd tea.Cmd
	if form := h.forms[mode]; form != nil {
		cmd = form.Focus(0)
	}
	return actions, cmd
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName() string {
	if handler := h.modes[h.currentMode]; handler != nil {
		return handler.Name()
	}
	return ""
}

// Form returns the form of the current mode, nil for non-text modes
func (h *Handler) Form() *modes.Form {
	return h.forms[h.currentMode]
}

// FormFor returns the form owned by mode
func (h *Handler) FormFor(mode types.Mode) *modes.Form {
	return h.forms[mode]
}

// Update handles non-keyboard messages for the focused field
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if form := h.forms[h.currentMode]; form != nil {
		return form.Update(msg)
	}
	return nil
}
