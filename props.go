package datepickerx

import (
	"time"

	"cloudeng.io/datetime"

	"github.com/comalice/datepickerx/binding"
)

// Props is the host supplied configuration of a Picker.
//
// Value ownership follows binding.Resolve: ValueLink wins over Value (or
// Controlled), which wins over DefaultValue. Month and DefaultMonth are
// 1-12; zero means unset, as does a zero Year or DefaultYear.
type Props struct {
	Value        *datetime.CalendarDate
	Controlled   bool
	ValueLink    *binding.Link
	DefaultValue *datetime.CalendarDate

	Min, Max *datetime.CalendarDate

	Locale string

	Month        time.Month
	Year         int
	DefaultMonth time.Month
	DefaultYear  int

	Disabled bool
	ReadOnly bool

	ShowOtherMonthDate                bool
	PreventFocusStyleForTouchAndClick bool

	OnSelectionChanged func(*datetime.CalendarDate)
	OnMonthChanged     func(month time.Month, year int)
}

// DefaultProps returns Props with the documented defaults applied.
func DefaultProps() Props {
	return Props{
		ShowOtherMonthDate:                true,
		PreventFocusStyleForTouchAndClick: true,
	}
}

func (p Props) source() binding.Source {
	return binding.Source{
		Value:      p.Value,
		Controlled: p.Controlled,
		Link:       p.ValueLink,
		Default:    p.DefaultValue,
	}
}

// PointerKind distinguishes mouse from touch input.
type PointerKind int

const (
	Mouse PointerKind = iota
	Touch
)

// Pointer describes a pointer event. Button is the mouse button (0 is the
// main button); Touches is the number of active touch points.
type Pointer struct {
	Kind    PointerKind
	Button  int
	Touches int
}

// MouseButton returns a mouse Pointer for button.
func MouseButton(button int) Pointer {
	return Pointer{Kind: Mouse, Button: button}
}

// SingleTouch returns a touch Pointer with one contact.
func SingleTouch() Pointer {
	return Pointer{Kind: Touch, Touches: 1}
}

// Primary reports whether a press comes from the main mouse button or a
// single touch.
func (p Pointer) Primary() bool {
	if p.Kind == Touch {
		return p.Touches == 1
	}
	return p.Button == 0
}

// primaryRelease is Primary for release events; a lifted touch no longer
// counts as an active contact so every touch release qualifies.
func (p Pointer) primaryRelease() bool {
	if p.Kind == Touch {
		return true
	}
	return p.Button == 0
}
