package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"bustrip/internal/api"
	"bustrip/internal/domain"
	"bustrip/internal/eventbus"
	"bustrip/internal/session"
	"bustrip/internal/storage"
)

func withTimeout(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}

// fetchCountries returns a command that refreshes the onboarding countries
func fetchCountries(backend Backend, timeout time.Duration) tea.Cmd {
	if backend == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()
		countries, err := backend.Countries(ctx)
		return countriesMsg{countries: countries, err: err}
	}
}

// signIn returns a command that submits credentials
func signIn(backend Backend, req api.LoginRequest, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()
		resp, err := backend.Login(ctx, req)
		return loginResultMsg{email: req.Email, resp: resp, err: err}
	}
}

// register returns a command that creates an account
func register(backend Backend, req api.RegisterRequest, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()
		resp, err := backend.Register(ctx, req)
		return registerResultMsg{email: req.Email, resp: resp, err: err}
	}
}

// verifyCode returns a command that checks code for email. When pending is
// set the session is signed in once the code is accepted.
func verifyCode(backend Backend, sess *session.Session, email, code string, pending *api.LoginResponse, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()
		if _, err := backend.VerifyOTP(ctx, email, code); err != nil {
			return verifyResultMsg{err: err}
		}
		if pending == nil {
			return verifyResultMsg{}
		}
		if err := sess.Login(ctx, pending.User, pending.Token); err != nil {
			return verifyResultMsg{err: fmt.Errorf("saving session: %w", err)}
		}
		return verifyResultMsg{signedIn: true}
	}
}

// resendCode returns a command that asks for a fresh code
func resendCode(backend Backend, email string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()
		resp, err := backend.ResendOTP(ctx, email)
		return resendResultMsg{resp: resp, err: err}
	}
}

// fetchBuses returns a command that runs bus search request seq
func fetchBuses(backend Backend, req domain.BusSearchRequest, seq uint64, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(timeout)
		defer cancel()
		buses, err := backend.SearchBuses(ctx, req)
		return busesMsg{seq: seq, buses: buses, err: err}
	}
}

// readClipboard returns a command that reads the system clipboard
func readClipboard(index int) tea.Cmd {
	return func() tea.Msg {
		text, err := clipboard.ReadAll()
		return clipboardMsg{index: index, text: text, err: err}
	}
}

// completeOnboarding returns a command that stores the choices and
// announces them on the bus
func completeOnboarding(store storage.Store, bus eventbus.EventBus, country, language string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(5 * time.Second)
		defer cancel()

		var errs []error
		if store != nil {
			items := []struct{ key, value string }{
				{storage.KeyCountry, country},
				{storage.KeyLanguage, language},
				{storage.KeyHasOnboarded, strconv.FormatBool(true)},
			}
			for _, item := range items {
				if err := store.SetItem(ctx, item.key, item.value); err != nil {
					errs = append(errs, fmt.Errorf("saving %s: %w", item.key, err))
				}
			}
		}
		if bus != nil {
			bus.Publish(eventbus.OnboardingCompletedEvent{Country: country, Language: language})
		}
		return onboardingSavedMsg{err: errors.Join(errs...)}
	}
}

// signOut returns a command that clears the session
func signOut(sess *session.Session, expired bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := withTimeout(5 * time.Second)
		defer cancel()
		return logoutMsg{err: sess.Logout(ctx), expired: expired}
	}
}

// showRoutePager returns a command that shows content in ov, pausing and resuming rendering
func (m *Model) showRoutePager(content string) tea.Cmd {
	program := m.program
	pager := m.routes
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := pager.Show(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return routePagerMsg{err: err}
	}
}
