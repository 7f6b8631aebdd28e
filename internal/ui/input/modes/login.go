package modes

import (
	"bustrip/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	LoginEmail = iota
	LoginPassword
)

// NewLoginForm builds the email and password form
func NewLoginForm() *Form {
	return NewForm(
		Field{Label: "Email", Placeholder: "you@example.com"},
		Field{Label: "Password", Placeholder: "6-16 characters", Secret: true, CharLimit: 16},
	)
}

type LoginMode struct {
	FormMode
}

func NewLoginMode(form *Form) *LoginMode {
	return &LoginMode{FormMode: NewFormMode(types.ModeLogin, "login", types.ModeLogin, form)}
}

func (m *LoginMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "ctrl+n" {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeRegister}}, true
	}
	return m.FormMode.HandleKey(msg, ctx)
}
