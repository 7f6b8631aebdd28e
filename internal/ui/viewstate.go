package ui

import (
	inputtypes "bustrip/internal/ui/input/types"
	"bustrip/internal/ui/views"
)

// buildViewState collects everything the renderer needs for the current screen
func (m *Model) buildViewState() views.ViewState {
	mode := m.Mode()
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Screen:        mode,
		StatusMessage: m.status,
		StatusIsError: m.statusErr,
		Loading:       m.busy,
		LoadingLabel:  m.busyLabel,
		Spinner:       m.spinner.View(),
		ShowHelp:      m.showHelp,
		HelpModel:     m.help,
		Keys:          keysFor(mode),
		FieldErrors:   m.fieldErrors,
	}

	if user := m.session.User(); user != nil {
		state.UserName = user.FullName()
	}

	if form := m.inputHandler.Form(); form != nil {
		for i := 0; i < form.Len(); i++ {
			state.Fields = append(state.Fields, views.FieldView{
				Key:     fieldKey(mode, i),
				Label:   form.Label(i),
				Input:   form.View(i),
				Focused: i == form.Focused(),
			})
		}
	}

	switch mode {
	case inputtypes.ModeOnboarding:
		state.OnboardingStage = m.onboarding.stage
		state.Country = m.onboarding.country().Name
		state.Options = m.onboarding.options()
		state.OptionIndex = *m.onboarding.index()

	case inputtypes.ModeOTP:
		state.Segments = m.code.Segments()
		state.SegmentFocus = m.codeFocus
		state.CodeEmail = m.codeEmail

	case inputtypes.ModeCitySearch:
		state.CityTarget = m.cityTarget
		state.Cities = m.cities.Results()
		state.CityIndex = m.cityIndex
		state.SearchQuery = m.cities.Query()
		state.SearchPending = m.cities.Pending()
		if m.cities.Loading() {
			state.Loading = true
			state.LoadingLabel = "Searching cities"
		}
		if err := m.cities.Err(); err != nil {
			state.SearchError = "Could not load cities"
		}

	case inputtypes.ModeDatePicker:
		state.CalendarCursor = m.calendar
		state.Today = m.today()

	case inputtypes.ModeBusList:
		state.Buses = m.buses
		state.BusIndex = m.busIndex
		state.Now = m.now()
	}

	if sel := m.selection; sel != nil {
		if sel.From != nil {
			state.From = sel.From.Name
		}
		if sel.To != nil {
			state.To = sel.To.Name
		}
		state.DateLabel = sel.Label()
		state.IsToday = sel.IsToday()
		state.IsTomorrow = sel.IsTomorrow()
	}

	return state
}
