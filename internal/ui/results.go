package ui

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"bustrip/internal/api"
	"bustrip/internal/ui/input/modes"
	inputtypes "bustrip/internal/ui/input/types"
)

// handleResult applies the outcome of a finished command
func (m *Model) handleResult(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case countriesMsg:
		if msg.err != nil {
			log.Printf("Keeping built-in country list: %v", msg.err)
			return nil, true
		}
		if len(msg.countries) > 0 && m.onboarding.stage == 0 {
			current := m.onboarding.country().Name
			m.onboarding.countries = msg.countries
			m.onboarding.countryIndex = 0
			for i, c := range msg.countries {
				if c.Name == current {
					m.onboarding.countryIndex = i
				}
			}
		}
		return nil, true

	case onboardingSavedMsg:
		m.busy = false
		if msg.err != nil {
			log.Printf("Failed to save onboarding choices: %v", msg.err)
		}
		if m.session.IsAuthenticated() {
			return m.setMode(inputtypes.ModeHome), true
		}
		return m.setMode(inputtypes.ModeLogin), true

	case loginResultMsg:
		m.busy = false
		if msg.err != nil {
			m.showError(msg.err)
			return nil, true
		}
		m.pending = msg.resp
		m.codeEmail = msg.email
		cmd := m.setMode(inputtypes.ModeOTP)
		m.setStatus("We sent a verification code to "+msg.email, false)
		return cmd, true

	case registerResultMsg:
		m.busy = false
		if msg.err != nil {
			m.showError(msg.err)
			return nil, true
		}
		m.pending = nil
		m.codeEmail = msg.email
		cmd := m.setMode(inputtypes.ModeOTP)
		status := "We sent a verification code to " + msg.email
		if msg.resp != nil && msg.resp.Message != "" {
			status = msg.resp.Message
		}
		m.setStatus(status, false)
		return cmd, true

	case verifyResultMsg:
		m.busy = false
		if msg.err != nil {
			m.showError(msg.err)
			return nil, true
		}
		email := m.codeEmail
		m.pending = nil
		if msg.signedIn {
			cmd := m.setMode(inputtypes.ModeHome)
			if user := m.session.User(); user != nil {
				m.setStatus("Welcome, "+user.FullName(), false)
			}
			return cmd, true
		}
		cmd := m.setMode(inputtypes.ModeLogin)
		if form := m.inputHandler.FormFor(inputtypes.ModeLogin); form != nil {
			form.SetValue(modes.LoginEmail, email)
			form.Focus(modes.LoginPassword)
		}
		m.setStatus("Email verified. Please sign in.", false)
		return cmd, true

	case resendResultMsg:
		m.busy = false
		if msg.err != nil {
			m.showError(msg.err)
			return nil, true
		}
		m.code.Reset()
		status := "A new code is on its way"
		if msg.resp != nil {
			if msg.resp.Message != "" {
				status = msg.resp.Message
			}
			if msg.resp.RemainingTime > 0 {
				status = fmt.Sprintf("%s (next resend in %ds)", status, msg.resp.RemainingTime)
			}
		}
		m.setStatus(status, false)
		return nil, true

	case busesMsg:
		if msg.seq != m.busSeq {
			log.Printf("Discarding stale bus search %d", msg.seq)
			return nil, true
		}
		m.busy = false
		if api.IsUnauthorized(msg.err) && m.session.IsAuthenticated() {
			log.Printf("Bus search rejected the saved session, signing out")
			return signOut(m.session, true), true
		}
		if msg.err != nil {
			m.showError(msg.err)
			return nil, true
		}
		m.buses = msg.buses
		m.busIndex = 0
		if m.Mode() != inputtypes.ModeBusList {
			return m.setMode(inputtypes.ModeBusList), true
		}
		return nil, true

	case clipboardMsg:
		if msg.err != nil {
			log.Printf("Clipboard read failed: %v", msg.err)
			m.setStatus("Could not read the clipboard", true)
			return nil, true
		}
		if m.Mode() != inputtypes.ModeOTP {
			return nil, true
		}
		m.code.PasteAt(msg.index, msg.text)
		return m.afterCodeEdit(), true

	case routePagerMsg:
		if msg.err != nil {
			log.Printf("Route pager failed: %v", msg.err)
			m.setStatus("Could not open the route viewer", true)
		}
		return nil, true

	case logoutMsg:
		if msg.err != nil {
			log.Printf("Logout did not clear storage: %v", msg.err)
		}
		m.buses = nil
		cmd := m.setMode(inputtypes.ModeLogin)
		if msg.expired {
			m.setStatus("Your session has expired. Please sign in again.", true)
		} else {
			m.setStatus("Signed out", false)
		}
		return cmd, true
	}

	return nil, false
}
