package datepickerx

// Key names a keyboard key, using DOM KeyboardEvent.key values.
type Key string

const (
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyPageUp     Key = "PageUp"
	KeyPageDown   Key = "PageDown"
	KeyEnter      Key = "Enter"
	KeySpace      Key = " "
)

// HandleKey maps a key press onto the navigation and selection operations
// and reports whether the key was consumed. Left and right are mirrored
// for right-to-left locales. With no focused day, arrows focus the last
// hovered day (or the first of the month) and the remaining keys other
// than Home and End are ignored.
func (p *Picker) HandleKey(k Key) bool {
	if p.props.Disabled {
		return false
	}
	switch k {
	case KeyHome:
		p.NavigateHome()
		return true
	case KeyEnd:
		p.NavigateEnd()
		return true
	}

	if p.focused == "" {
		switch k {
		case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
			p.focusFallback()
			return true
		}
		return false
	}

	back, fwd := -1, 1
	if p.loc.IsRTL {
		back, fwd = 1, -1
	}
	switch k {
	case KeyArrowUp:
		p.MoveFocusByDays(-7)
	case KeyArrowDown:
		p.MoveFocusByDays(7)
	case KeyArrowLeft:
		p.MoveFocusByDays(back)
	case KeyArrowRight:
		p.MoveFocusByDays(fwd)
	case KeyPageUp:
		p.PageUp()
	case KeyPageDown:
		p.PageDown()
	case KeyEnter:
		p.SelectFocusedDate()
	case KeySpace:
		p.ToggleFocusedDate()
	default:
		return false
	}
	return true
}

// ParseKey maps common key spellings ("space", "pgup", "left", ...) to a
// Key. Unknown names are returned unchanged.
func ParseKey(s string) Key {
	switch s {
	case "home":
		return KeyHome
	case "end":
		return KeyEnd
	case "up":
		return KeyArrowUp
	case "down":
		return KeyArrowDown
	case "left":
		return KeyArrowLeft
	case "right":
		return KeyArrowRight
	case "pgup", "pageup":
		return KeyPageUp
	case "pgdown", "pagedown":
		return KeyPageDown
	case "enter", "return":
		return KeyEnter
	case "space", " ":
		return KeySpace
	}
	return Key(s)
}
