package modes

import "bustrip/internal/ui/input/types"

const (
	RegisterFirstName = iota
	RegisterLastName
	RegisterEmail
	RegisterPassword
)

// NewRegisterForm builds the account creation form
func NewRegisterForm() *Form {
	return NewForm(
		Field{Label: "First name", Placeholder: "Jane"},
		Field{Label: "Last name", Placeholder: "Doe"},
		Field{Label: "Email", Placeholder: "you@example.com"},
		Field{Label: "Password", Placeholder: "6-16 characters", Secret: true, CharLimit: 16},
	)
}

type RegisterMode struct {
	FormMode
}

func NewRegisterMode(form *Form) *RegisterMode {
	return &RegisterMode{FormMode: NewFormMode(types.ModeRegister, "register", types.ModeLogin, form)}
}
