package modes

import (
	"bustrip/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

// navigate maps the shared list movement keys to a NavigateAction
func navigate(msg tea.KeyMsg) (types.Action, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return types.NavigateAction{Direction: "up"}, true
	case tea.KeyDown:
		return types.NavigateAction{Direction: "down"}, true
	case tea.KeyPgUp:
		return types.NavigateAction{Direction: "pageup"}, true
	case tea.KeyPgDown:
		return types.NavigateAction{Direction: "pagedown"}, true
	case tea.KeyHome:
		return types.NavigateAction{Direction: "home"}, true
	case tea.KeyEnd:
		return types.NavigateAction{Direction: "end"}, true
	}

	switch msg.String() {
	case "j":
		return types.NavigateAction{Direction: "down"}, true
	case "k":
		return types.NavigateAction{Direction: "up"}, true
	case "g":
		return types.NavigateAction{Direction: "home"}, true
	case "G":
		return types.NavigateAction{Direction: "end"}, true
	}
	return nil, false
}

type OnboardingMode struct{}

func NewOnboardingMode() *OnboardingMode {
	return &OnboardingMode{}
}

func (m *OnboardingMode) Name() string {
	return "onboarding"
}

func (m *OnboardingMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *OnboardingMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *OnboardingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if action, ok := navigate(msg); ok {
		return []types.Action{action}, true
	}

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "esc", "backspace", "left", "h":
		if ctx.Busy() {
			return nil, true
		}
		return []types.Action{types.BackAction{}}, true
	case "enter", "right", "l", " ":
		if ctx.Busy() || ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.SelectAction{Index: ctx.CurrentIndex()}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}

type BusListMode struct{}

func NewBusListMode() *BusListMode {
	return &BusListMode{}
}

func (m *BusListMode) Name() string {
	return "buses"
}

func (m *BusListMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *BusListMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *BusListMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if action, ok := navigate(msg); ok {
		return []types.Action{action}, true
	}

	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "esc", "backspace":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHome}}, true
	case "enter", "o":
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.ShowRouteAction{Index: ctx.CurrentIndex()}}, true
	case "r":
		if ctx.Busy() {
			return nil, true
		}
		return []types.Action{types.RetryAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
