// Package otp treats a fixed number of single-digit segments as one code
// value with keyboard-natural navigation.
package otp

import "strings"

// DefaultLength is the number of segments in a verification code.
const DefaultLength = 6

// FocusHandle moves input focus to one segment. The host owns the handles;
// the reducer only calls them.
type FocusHandle interface {
	Focus()
}

// FocusFunc adapts a plain function to FocusHandle
type FocusFunc func()

// Focus calls f
func (f FocusFunc) Focus() { f() }

// Reducer holds the segment values and the recommended focus index.
type Reducer struct {
	segments []string
	focus    int
	handles  []FocusHandle

	// armed is true until completion has been reported; it re-arms on
	// Reset or once every segment is empty again.
	armed bool

	// OnChange is called with the full value after every mutation
	OnChange func(value string)
	// OnComplete is called once on the incomplete -> complete edge
	OnComplete func(value string)
}

// New creates a reducer with n segments. n < 1 falls back to DefaultLength.
func New(n int) *Reducer {
	if n < 1 {
		n = DefaultLength
	}
	return &Reducer{
		segments: make([]string, n),
		armed:    true,
	}
}

// Attach sets the per-segment focus handles. Missing handles are skipped.
func (r *Reducer) Attach(handles []FocusHandle) {
	r.handles = handles
}

// Len returns the number of segments
func (r *Reducer) Len() int { return len(r.segments) }

// FocusIndex returns the segment that should receive the next keystroke
func (r *Reducer) FocusIndex() int { return r.focus }

// Segment returns the value of segment i, "" when out of range
func (r *Reducer) Segment(i int) string {
	if !r.inRange(i) {
		return ""
	}
	return r.segments[i]
}

// Segments returns a copy of all segment values
func (r *Reducer) Segments() []string {
	return append([]string(nil), r.segments...)
}

// Value is the concatenation of all segments
func (r *Reducer) Value() string {
	return strings.Join(r.segments, "")
}

// IsComplete reports whether every segment holds a digit
func (r *Reducer) IsComplete() bool {
	for _, s := range r.segments {
		if len(s) != 1 || !isDigit(s[0]) {
			return false
		}
	}
	return true
}

// OnSegmentChange is the host entry point for text typed into segment i.
// Multi-character text is a paste.
func (r *Reducer) OnSegmentChange(i int, text string) {
	if len([]rune(text)) > 1 {
		r.PasteAt(i, text)
		return
	}
	r.SetDigit(i, text)
}

// SetDigit replaces segment i with the digit in raw, or clears it when raw
// is empty. Text with no digits at all is ignored.
func (r *Reducer) SetDigit(i int, raw string) {
	if !r.inRange(i) {
		return
	}
	digits := onlyDigits(raw)
	if raw != "" && digits == "" {
		return
	}
	if len(digits) > 1 {
		return
	}

	r.segments[i] = digits
	if len(digits) == 1 {
		for next := i + 1; next < len(r.segments); next++ {
			if r.segments[next] == "" {
				r.moveFocus(next)
				break
			}
		}
	}
	r.changed()
}

// PasteAt spreads the digits of raw over the segments starting at i,
// overwriting what is there.
func (r *Reducer) PasteAt(i int, raw string) {
	if !r.inRange(i) {
		return
	}
	digits := onlyDigits(raw)
	if room := len(r.segments) - i; len(digits) > room {
		digits = digits[:room]
	}
	if digits == "" {
		return
	}

	for k := 0; k < len(digits); k++ {
		r.segments[i+k] = digits[k : k+1]
	}
	r.moveFocus(min(i+len(digits), len(r.segments)-1))
	r.changed()
}

// Backspace clears segment i, or when it is already empty, clears the
// previous segment and moves focus there.
func (r *Reducer) Backspace(i int) {
	if !r.inRange(i) {
		return
	}
	if r.segments[i] != "" {
		r.segments[i] = ""
		r.moveFocus(i)
		r.changed()
		return
	}
	if i == 0 {
		return
	}
	r.segments[i-1] = ""
	r.moveFocus(i - 1)
	r.changed()
}

// MoveFocus points focus at segment i without editing anything
func (r *Reducer) MoveFocus(i int) {
	if r.inRange(i) {
		r.moveFocus(i)
	}
}

// Reset empties every segment and focuses the first one
func (r *Reducer) Reset() {
	for i := range r.segments {
		r.segments[i] = ""
	}
	r.armed = true
	r.moveFocus(0)
	if r.OnChange != nil {
		r.OnChange("")
	}
}

func (r *Reducer) changed() {
	value := r.Value()
	if r.OnChange != nil {
		r.OnChange(value)
	}

	switch {
	case value == "":
		r.armed = true
	case r.armed && r.IsComplete():
		r.armed = false
		if r.OnComplete != nil {
			r.OnComplete(value)
		}
	}
}

func (r *Reducer) moveFocus(i int) {
	r.focus = i
	if i < len(r.handles) && r.handles[i] != nil {
		r.handles[i].Focus()
	}
}

func (r *Reducer) inRange(i int) bool {
	return i >= 0 && i < len(r.segments)
}

func onlyDigits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
