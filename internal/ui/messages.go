package ui

import (
	"bustrip/internal/api"
	"bustrip/internal/domain"
)

// countriesMsg carries the onboarding country list from the server
type countriesMsg struct {
	countries []domain.Country
	err       error
}

// loginResultMsg contains the result of a sign-in attempt
type loginResultMsg struct {
	email string
	resp  *api.LoginResponse
	err   error
}

// registerResultMsg contains the result of account creation
type registerResultMsg struct {
	email string
	resp  *api.StatusResponse
	err   error
}

// verifyResultMsg contains the result of a code verification.
// signedIn is set when the verification completed a pending sign-in.
type verifyResultMsg struct {
	signedIn bool
	err      error
}

// resendResultMsg contains the result of asking for a new code
type resendResultMsg struct {
	resp *api.ResendOTPResponse
	err  error
}

// busesMsg contains bus search results for request seq
type busesMsg struct {
	seq   uint64
	buses []domain.Bus
	err   error
}

// clipboardMsg carries clipboard text to paste at segment index
type clipboardMsg struct {
	index int
	text  string
	err   error
}

// routePagerMsg contains the result of a route pager command
type routePagerMsg struct {
	err error
}

// onboardingSavedMsg signals that onboarding choices were persisted
type onboardingSavedMsg struct {
	err error
}

// logoutMsg signals that the session was cleared
type logoutMsg struct {
	err     error
	expired bool
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
