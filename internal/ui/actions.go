package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"bustrip/internal/api"
	"bustrip/internal/ui/input/modes"
	inputtypes "bustrip/internal/ui/input/types"
	"bustrip/internal/ui/views"
)

const pageSize = 10

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.ChangeModeAction:
		return m.setMode(a.Mode)

	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.SelectAction:
		return m.selectItem(a.Index)

	case inputtypes.BackAction:
		if m.onboarding.stage > 0 {
			m.onboarding.stage = 0
			m.onboarding.languageIndex = 0
		}

	case inputtypes.UpdateTextAction:
		return m.updateText(a)

	case inputtypes.SubmitFormAction:
		return m.submitForm(a)

	case inputtypes.CancelAction:
		m.setStatus("", false)

	case inputtypes.SegmentInputAction:
		m.code.OnSegmentChange(a.Index, a.Text)
		return m.afterCodeEdit()

	case inputtypes.SegmentBackspaceAction:
		m.code.Backspace(a.Index)
		return m.afterCodeEdit()

	case inputtypes.PasteClipboardAction:
		return readClipboard(a.Index)

	case inputtypes.ClearCodeAction:
		m.code.Reset()
		m.codeDone = ""

	case inputtypes.ResendCodeAction:
		if m.codeEmail == "" {
			return nil
		}
		m.busy = true
		m.busyLabel = "Sending a new code"
		return resendCode(m.backend, m.codeEmail, m.config.Timeout())

	case inputtypes.VerifyCodeAction:
		if !m.code.IsComplete() {
			m.setStatus("Please fill all OTP digits", true)
			return nil
		}
		return m.verify(m.code.Value())

	case inputtypes.PickCityAction:
		m.cityTarget = a.Target

	case inputtypes.SwapCitiesAction:
		m.selection.Swap()

	case inputtypes.SetDateAction:
		if a.Day == "tomorrow" {
			m.selection.Tomorrow()
		} else {
			m.selection.Today()
		}
		m.calendar = m.selection.Date

	case inputtypes.SearchBusesAction:
		return m.searchBuses()

	case inputtypes.ShowRouteAction:
		return m.showRoute(a.Index)

	case inputtypes.RetryAction:
		switch m.Mode() {
		case inputtypes.ModeCitySearch:
			return m.cities.Retry()
		case inputtypes.ModeBusList:
			return m.searchBuses()
		}

	case inputtypes.LogoutAction:
		return signOut(m.session, false)

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}

	return nil
}

// navigate moves the cursor of whatever the current screen shows
func (m *Model) navigate(direction string) {
	switch m.Mode() {
	case inputtypes.ModeOnboarding:
		moveCursor(m.onboarding.index(), len(m.onboarding.options()), direction)
	case inputtypes.ModeCitySearch:
		moveCursor(&m.cityIndex, len(m.cities.Results()), direction)
	case inputtypes.ModeBusList:
		moveCursor(&m.busIndex, len(m.buses), direction)
	case inputtypes.ModeDatePicker:
		m.moveCalendar(direction)
	case inputtypes.ModeOTP:
		switch direction {
		case "left":
			m.code.MoveFocus(m.codeFocus - 1)
		case "right":
			m.code.MoveFocus(m.codeFocus + 1)
		case "home":
			m.code.MoveFocus(0)
		case "end":
			m.code.MoveFocus(m.code.Len() - 1)
		}
	}
}

func moveCursor(index *int, total int, direction string) {
	if total == 0 {
		*index = 0
		return
	}
	switch direction {
	case "up":
		*index--
	case "down":
		*index++
	case "pageup":
		*index -= pageSize
	case "pagedown":
		*index += pageSize
	case "home":
		*index = 0
	case "end":
		*index = total - 1
	}
	if *index < 0 {
		*index = 0
	}
	if *index >= total {
		*index = total - 1
	}
}

// moveCalendar shifts the date cursor, never before today
func (m *Model) moveCalendar(direction string) {
	next := m.calendar
	switch direction {
	case "left":
		next = next.AddDate(0, 0, -1)
	case "right":
		next = next.AddDate(0, 0, 1)
	case "up":
		next = next.AddDate(0, 0, -7)
	case "down":
		next = next.AddDate(0, 0, 7)
	case "pageup":
		next = next.AddDate(0, -1, 0)
	case "pagedown":
		next = next.AddDate(0, 1, 0)
	}
	if today := m.today(); next.Before(today) {
		next = today
	}
	m.calendar = next
}

func (m *Model) today() time.Time {
	n := m.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, n.Location())
}

func (m *Model) selectItem(index int) tea.Cmd {
	switch m.Mode() {
	case inputtypes.ModeOnboarding:
		return m.chooseOnboardingOption(index)

	case inputtypes.ModeCitySearch:
		results := m.cities.Results()
		if index < 0 || index >= len(results) {
			return nil
		}
		city := results[index]
		if m.cityTarget == "to" {
			m.selection.SetTo(city)
		} else {
			m.selection.SetFrom(city)
		}
		return m.setMode(inputtypes.ModeHome)

	case inputtypes.ModeDatePicker:
		m.selection.SetDate(m.calendar)
	}
	return nil
}

func (m *Model) chooseOnboardingOption(index int) tea.Cmd {
	if m.busy {
		return nil
	}
	o := &m.onboarding
	if o.stage == 0 {
		if index < 0 || index >= len(o.countries) {
			return nil
		}
		o.countryIndex = index
		o.languageIndex = 0
		if len(o.country().AvailableLanguages) == 0 {
			return m.finishOnboarding(o.country().Name, "")
		}
		o.stage = 1
		return nil
	}

	languages := o.country().AvailableLanguages
	if index < 0 || index >= len(languages) {
		return nil
	}
	o.languageIndex = index
	return m.finishOnboarding(o.country().Name, languages[index])
}

func (m *Model) finishOnboarding(country, language string) tea.Cmd {
	if m.busy {
		return nil
	}
	m.busy = true
	m.busyLabel = "Saving"
	return completeOnboarding(m.store, m.bus, country, language)
}

func (m *Model) updateText(a inputtypes.UpdateTextAction) tea.Cmd {
	delete(m.fieldErrors, fieldKey(m.Mode(), a.Field))
	if m.Mode() == inputtypes.ModeCitySearch {
		m.cityIndex = 0
		return m.cities.OnQueryChange(a.Text)
	}
	return nil
}

func (m *Model) submitForm(a inputtypes.SubmitFormAction) tea.Cmd {
	value := func(i int) string {
		if i < len(a.Values) {
			return a.Values[i]
		}
		return ""
	}

	switch a.Mode {
	case inputtypes.ModeLogin:
		req := api.LoginRequest{
			Email:    strings.TrimSpace(value(modes.LoginEmail)),
			Password: value(modes.LoginPassword),
		}
		if err := api.Validate(req); err != nil {
			m.showError(err)
			return nil
		}
		m.fieldErrors = map[string]string{}
		m.busy = true
		m.busyLabel = "Signing in"
		return signIn(m.backend, req, m.config.Timeout())

	case inputtypes.ModeRegister:
		req := api.RegisterRequest{
			FirstName: strings.TrimSpace(value(modes.RegisterFirstName)),
			LastName:  strings.TrimSpace(value(modes.RegisterLastName)),
			Email:     strings.TrimSpace(value(modes.RegisterEmail)),
			Password:  value(modes.RegisterPassword),
		}
		if err := api.Validate(req); err != nil {
			m.showError(err)
			return nil
		}
		m.fieldErrors = map[string]string{}
		m.busy = true
		m.busyLabel = "Creating account"
		return register(m.backend, req, m.config.Timeout())
	}
	return nil
}

// afterCodeEdit clears stale messages and auto-verifies on completion
func (m *Model) afterCodeEdit() tea.Cmd {
	if m.statusErr {
		m.setStatus("", false)
	}
	if m.codeDone == "" {
		return nil
	}
	code := m.codeDone
	m.codeDone = ""
	if !m.config.OTP.AutoVerify || m.busy {
		return nil
	}
	return m.verify(code)
}

func (m *Model) verify(code string) tea.Cmd {
	if err := api.ValidateVerify(api.VerifyOTPRequest{Email: m.codeEmail, OTP: code}, m.config.OTP.Length); err != nil {
		m.showError(err)
		return nil
	}
	m.busy = true
	m.busyLabel = "Verifying"
	return verifyCode(m.backend, m.session, m.codeEmail, code, m.pending, m.config.Timeout())
}

func (m *Model) searchBuses() tea.Cmd {
	req, err := m.selection.Request()
	if err != nil {
		m.setStatus("Select both From and To cities", true)
		return nil
	}
	m.busSeq++
	m.busy = true
	m.busyLabel = "Searching buses"
	return fetchBuses(m.backend, req, m.busSeq, m.config.Timeout())
}

func (m *Model) showRoute(index int) tea.Cmd {
	if index < 0 || index >= len(m.buses) {
		return nil
	}
	if m.program == nil {
		m.setStatus("Route viewer is not available", true)
		return nil
	}
	return m.showRoutePager(views.RouteDetails(m.buses[index]))
}

// fieldKey maps a form field to the request field its errors are keyed by
func fieldKey(mode inputtypes.Mode, field int) string {
	var keys []string
	switch mode {
	case inputtypes.ModeLogin:
		keys = []string{"email", "password"}
	case inputtypes.ModeRegister:
		keys = []string{"firstName", "lastName", "email", "password"}
	}
	if field >= 0 && field < len(keys) {
		return keys[field]
	}
	return fmt.Sprintf("field%d", field)
}
