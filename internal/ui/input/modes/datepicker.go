package modes

import (
	"bustrip/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

// DatePickerMode moves a day cursor over a month grid
type DatePickerMode struct{}

func NewDatePickerMode() *DatePickerMode {
	return &DatePickerMode{}
}

func (m *DatePickerMode) Name() string {
	return "date"
}

func (m *DatePickerMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *DatePickerMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *DatePickerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHome}}, true
	case tea.KeyEnter:
		return []types.Action{
			types.SelectAction{Index: -1},
			types.ChangeModeAction{Mode: types.ModeHome},
		}, true
	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	}

	switch msg.String() {
	case "h":
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case "l":
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "n":
		return []types.Action{types.SetDateAction{Day: "today"}}, true
	case "m":
		return []types.Action{types.SetDateAction{Day: "tomorrow"}}, true
	}
	return nil, false
}
