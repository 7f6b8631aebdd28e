package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"bustrip/internal/ui/input/types"
)

// keyMap lists the bindings of one screen for the help view
type keyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return k.short }
func (k keyMap) FullHelp() [][]key.Binding { return k.full }

var (
	keyUpDown = key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "move"))
	keyPage   = key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page"))
	keyHelp   = key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help"))
	keyQuit   = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
	keyForce  = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))
	keyNext   = key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field"))
	keyPrev   = key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field"))
)

func keysFor(mode types.Mode) help.KeyMap {
	switch mode {
	case types.ModeOnboarding:
		choose := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose"))
		back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
		return keyMap{
			short: []key.Binding{keyUpDown, choose, back, keyQuit},
			full:  [][]key.Binding{{keyUpDown, keyPage}, {choose, back}, {keyHelp, keyQuit}},
		}

	case types.ModeLogin:
		submit := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "sign in"))
		register := key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "create account"))
		return keyMap{
			short: []key.Binding{keyNext, submit, register, keyForce},
			full:  [][]key.Binding{{keyNext, keyPrev}, {submit, register}, {keyForce}},
		}

	case types.ModeRegister:
		submit := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "register"))
		back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "sign in instead"))
		return keyMap{
			short: []key.Binding{keyNext, submit, back, keyForce},
			full:  [][]key.Binding{{keyNext, keyPrev}, {submit, back}, {keyForce}},
		}

	case types.ModeOTP:
		digits := key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("0-9", "type"))
		paste := key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste"))
		move := key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "move"))
		clearCode := key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear"))
		resend := key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "resend"))
		verify := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "verify"))
		back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
		return keyMap{
			short: []key.Binding{digits, paste, verify, resend, back},
			full:  [][]key.Binding{{digits, paste, move}, {clearCode, resend, verify}, {back, keyForce}},
		}

	case types.ModeHome:
		from := key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "from"))
		to := key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "to"))
		swap := key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "swap"))
		today := key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "today"))
		tomorrow := key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "tomorrow"))
		date := key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "pick date"))
		search := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search"))
		logout := key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "log out"))
		return keyMap{
			short: []key.Binding{from, to, swap, date, search, keyHelp},
			full:  [][]key.Binding{{from, to, swap}, {today, tomorrow, date}, {search, logout}, {keyHelp, keyQuit}},
		}

	case types.ModeCitySearch:
		choose := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose"))
		retry := key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "retry"))
		back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
		return keyMap{
			short: []key.Binding{keyUpDown, choose, retry, back},
			full:  [][]key.Binding{{keyUpDown, keyPage}, {choose, retry, back}, {keyForce}},
		}

	case types.ModeDatePicker:
		move := key.NewBinding(key.WithKeys("left", "right", "up", "down"), key.WithHelp("←↑↓→", "move"))
		month := key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "month"))
		choose := key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose"))
		back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))
		return keyMap{
			short: []key.Binding{move, month, choose, back},
			full:  [][]key.Binding{{move, month}, {choose, back}, {keyForce}},
		}

	case types.ModeBusList:
		route := key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "route stops"))
		refresh := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))
		back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
		return keyMap{
			short: []key.Binding{keyUpDown, route, refresh, back, keyHelp},
			full:  [][]key.Binding{{keyUpDown, keyPage}, {route, refresh, back}, {keyHelp, keyQuit}},
		}
	}
	return nil
}
