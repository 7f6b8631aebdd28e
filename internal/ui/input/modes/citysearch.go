package modes

import (
	"bustrip/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

// NewCitySearchForm builds the single query field
func NewCitySearchForm() *Form {
	return NewForm(Field{Label: "City", Placeholder: "Start typing a city"})
}

// CitySearchMode drives a query field with a result list beneath it
type CitySearchMode struct {
	FormMode
}

func NewCitySearchMode(form *Form) *CitySearchMode {
	return &CitySearchMode{FormMode: NewFormMode(types.ModeCitySearch, "city-search", types.ModeHome, form)}
}

func (m *CitySearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case tea.KeyEnter:
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.SelectAction{Index: ctx.CurrentIndex()}}, true
	case tea.KeyTab, tea.KeyShiftTab:
		return nil, true
	}

	if msg.String() == "ctrl+r" {
		return []types.Action{types.RetryAction{}}, true
	}
	return m.FormMode.HandleKey(msg, ctx)
}
