package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Field describes one text input in a form
type Field struct {
	Label       string
	Placeholder string
	Secret      bool
	CharLimit   int
}

// Form is an ordered set of text inputs with a single focused field
type Form struct {
	fields []Field
	inputs []textinput.Model
	focus  int
}

func NewForm(fields ...Field) *Form {
	f := &Form{fields: fields}
	for _, field := range fields {
		ti := textinput.New()
		ti.Prompt = "" // Prompt is handled in the UI layer
		ti.Placeholder = field.Placeholder
		if field.CharLimit > 0 {
			ti.CharLimit = field.CharLimit
		}
		if field.Secret {
			ti.EchoMode = textinput.EchoPassword
			ti.EchoCharacter = '•'
		}
		f.inputs = append(f.inputs, ti)
	}
	return f
}

func (f *Form) Len() int {
	return len(f.inputs)
}

func (f *Form) Focused() int {
	return f.focus
}

func (f *Form) Label(i int) string {
	if i < 0 || i >= len(f.fields) {
		return ""
	}
	return f.fields[i].Label
}

func (f *Form) Value(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return f.inputs[i].Value()
}

func (f *Form) SetValue(i int, v string) {
	if i < 0 || i >= len(f.inputs) {
		return
	}
	f.inputs[i].SetValue(v)
}

// Values returns every field value in order
func (f *Form) Values() []string {
	values := make([]string, len(f.inputs))
	for i := range f.inputs {
		values[i] = f.inputs[i].Value()
	}
	return values
}

// Focus moves the cursor to field i, blurring the rest
func (f *Form) Focus(i int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(f.inputs) {
		i = len(f.inputs) - 1
	}
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
	return textinput.Blink
}

// Move shifts focus by delta, wrapping around
func (f *Form) Move(delta int) tea.Cmd {
	n := len(f.inputs)
	if n == 0 {
		return nil
	}
	return f.Focus(((f.focus+delta)%n + n) % n)
}

// Reset empties every field and focuses the first
func (f *Form) Reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	return f.Focus(0)
}

func (f *Form) Blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

// Update forwards a message to the focused field
func (f *Form) Update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// View renders field i
func (f *Form) View(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return f.inputs[i].View()
}
