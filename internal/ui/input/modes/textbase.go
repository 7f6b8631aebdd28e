package modes

import (
	"bustrip/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

// FormMode is a base for modes that collect text through a Form
type FormMode struct {
	mode types.Mode
	name string
	back types.Mode
	form *Form
}

func NewFormMode(mode types.Mode, name string, back types.Mode, form *Form) FormMode {
	return FormMode{
		mode: mode,
		name: name,
		back: back,
		form: form,
	}
}

func (m FormMode) Name() string {
	return m.name
}

func (m FormMode) Form() *Form {
	return m.form
}

func (m FormMode) Enter(ctx types.Context) []types.Action {
	if m.form != nil {
		m.form.Reset()
	}
	return nil
}

func (m FormMode) Exit(ctx types.Context) []types.Action {
	if m.form != nil {
		m.form.Blur()
	}
	return nil
}

func (m FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		if m.back == m.mode {
			return nil, true
		}
		return []types.Action{
			types.CancelAction{},
			types.ChangeModeAction{Mode: m.back},
		}, true
	case "tab", "down":
		return []types.Action{types.FocusFieldAction{Delta: 1}}, true
	case "shift+tab", "up":
		return []types.Action{types.FocusFieldAction{Delta: -1}}, true
	case "enter":
		if ctx.Busy() {
			return nil, true
		}
		// Enter on any field but the last moves on
		if m.form != nil && m.form.Focused() < m.form.Len()-1 {
			return []types.Action{types.FocusFieldAction{Delta: 1}}, true
		}
		var values []string
		if m.form != nil {
			values = m.form.Values()
		}
		return []types.Action{types.SubmitFormAction{Mode: m.mode, Values: values}}, true
	default:
		// Let the main handler update the focused field
		return nil, false
	}
}
