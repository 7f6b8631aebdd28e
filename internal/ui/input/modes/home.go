package modes

import (
	"bustrip/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

type HomeMode struct{}

func NewHomeMode() *HomeMode {
	return &HomeMode{}
}

func (m *HomeMode) Name() string {
	return "home"
}

func (m *HomeMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HomeMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HomeMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEnter:
		if ctx.Busy() {
			return nil, true
		}
		return []types.Action{types.SearchBusesAction{}}, true
	}

	switch msg.String() {
	case "f":
		return []types.Action{
			types.PickCityAction{Target: "from"},
			types.ChangeModeAction{Mode: types.ModeCitySearch},
		}, true
	case "t":
		return []types.Action{
			types.PickCityAction{Target: "to"},
			types.ChangeModeAction{Mode: types.ModeCitySearch},
		}, true
	case "s":
		return []types.Action{types.SwapCitiesAction{}}, true
	case "n":
		return []types.Action{types.SetDateAction{Day: "today"}}, true
	case "m":
		return []types.Action{types.SetDateAction{Day: "tomorrow"}}, true
	case "d":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeDatePicker}}, true
	case "L":
		return []types.Action{types.LogoutAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	}
	return nil, false
}
