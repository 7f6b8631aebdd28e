package modes

import (
	"bustrip/internal/ui/input/types"
	tea "github.com/charmbracelet/bubbletea"
)

// OTPMode turns keys into segment edits for the code reducer
type OTPMode struct{}

func NewOTPMode() *OTPMode {
	return &OTPMode{}
}

func (m *OTPMode) Name() string {
	return "otp"
}

func (m *OTPMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.ClearCodeAction{}}
}

func (m *OTPMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *OTPMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	i := ctx.FocusedSegment()

	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyEsc:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeLogin}}, true
	case tea.KeyEnter:
		if ctx.Busy() {
			return nil, true
		}
		return []types.Action{types.VerifyCodeAction{}}, true
	case tea.KeyBackspace, tea.KeyDelete:
		return []types.Action{types.SegmentBackspaceAction{Index: i}}, true
	case tea.KeyLeft:
		return []types.Action{types.NavigateAction{Direction: "left"}}, true
	case tea.KeyRight:
		return []types.Action{types.NavigateAction{Direction: "right"}}, true
	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true
	case tea.KeyCtrlV:
		return []types.Action{types.PasteClipboardAction{Index: i}}, true
	case tea.KeyCtrlL:
		return []types.Action{types.ClearCodeAction{}}, true
	case tea.KeyCtrlR:
		if ctx.Busy() {
			return nil, true
		}
		return []types.Action{types.ResendCodeAction{}}, true
	case tea.KeyRunes:
		// Bracketed paste arrives as one message holding every rune
		return []types.Action{types.SegmentInputAction{Index: i, Text: string(msg.Runes)}}, true
	}
	return nil, false
}
