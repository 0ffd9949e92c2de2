package datepickerx

import (
	"fmt"

	"github.com/comalice/datepickerx/datekey"
	"github.com/comalice/datepickerx/grid"
	"github.com/comalice/datepickerx/internal/fsm"
)

// Wrapper states. IsFocused holds in focused and focusedPressed, IsActive
// in pressed and focusedPressed.
const (
	stateIdle           = "idle"
	stateFocused        = "focused"
	statePressed        = "pressed"
	stateFocusedPressed = "focused+pressed"
)

// Wrapper events.
const (
	evFocus   = "focus"
	evBlur    = "blur"
	evPress   = "press"
	evRelease = "release"
	evCancel  = "cancel"
)

type wrapper struct {
	m *fsm.Machine

	focus, blur, press, release, cancel fsm.EventID

	idle, focusedSt, pressedSt, both fsm.StateID
}

func newWrapper(p *Picker) *wrapper {
	seed := func(*fsm.Event, fsm.StateID, fsm.StateID) error {
		p.hasFocus = true
		p.seedFocus()
		return nil
	}
	lost := func(*fsm.Event, fsm.StateID, fsm.StateID) error {
		p.hasFocus = false
		p.focused = ""
		return nil
	}
	// Focus arriving while pressed is recorded but does not count as
	// keyboard focus.
	pointerFocus := func(*fsm.Event, fsm.StateID, fsm.StateID) error {
		p.hasFocus = true
		return nil
	}

	b := fsm.NewBuilder(stateIdle)
	b.State(stateIdle).
		On(evFocus, stateFocused, nil, seed).
		On(evPress, statePressed, nil, nil).
		OnInternal(evBlur, nil, lost)
	b.State(stateFocused).
		On(evBlur, stateIdle, nil, lost).
		On(evPress, stateFocusedPressed, nil, nil).
		OnInternal(evFocus, nil, seed)
	b.State(statePressed).
		On(evRelease, stateIdle, nil, nil).
		On(evCancel, stateIdle, nil, nil).
		OnInternal(evFocus, nil, pointerFocus).
		OnInternal(evBlur, nil, lost)
	b.State(stateFocusedPressed).
		On(evRelease, stateFocused, nil, nil).
		On(evCancel, stateFocused, nil, nil).
		On(evBlur, statePressed, nil, lost)

	m, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("datepickerx: wrapper machine: %v", err))
	}
	if err := m.Start(); err != nil {
		panic(fmt.Sprintf("datepickerx: wrapper machine: %v", err))
	}
	return &wrapper{
		m:         m,
		focus:     b.Event(evFocus),
		blur:      b.Event(evBlur),
		press:     b.Event(evPress),
		release:   b.Event(evRelease),
		cancel:    b.Event(evCancel),
		idle:      b.StateID(stateIdle),
		focusedSt: b.StateID(stateFocused),
		pressedSt: b.StateID(statePressed),
		both:      b.StateID(stateFocusedPressed),
	}
}

func (w *wrapper) send(id fsm.EventID) {
	// Wrapper actions never fail.
	_, _ = w.m.Send(fsm.Event{ID: id})
}

func (w *wrapper) focused() bool {
	return w.m.In(w.focusedSt) || w.m.In(w.both)
}

func (w *wrapper) pressed() bool {
	return w.m.In(w.pressedSt) || w.m.In(w.both)
}

// seedFocus picks the day to focus when the wrapper gains focus and no
// day is focused: the selected day if it is displayed, else today if
// today's month is displayed, else the first of the displayed month.
func (p *Picker) seedFocus() {
	if p.focused != "" {
		return
	}
	if p.selected != nil && grid.SameMonth(*p.selected, p.year, p.month) {
		p.focused = datekey.Encode(*p.selected)
		return
	}
	if today := p.today(); grid.SameMonth(today, p.year, p.month) {
		p.focused = datekey.Encode(today)
		return
	}
	p.focused = datekey.Encode(grid.FirstOfMonth(p.year, p.month))
}

// FocusWrapper handles the widget gaining input focus.
func (p *Picker) FocusWrapper() {
	if p.props.Disabled {
		return
	}
	p.wrapper.send(p.wrapper.focus)
}

// BlurWrapper handles the widget losing input focus. It clears the
// focused day.
func (p *Picker) BlurWrapper() {
	if p.props.Disabled {
		return
	}
	p.wrapper.send(p.wrapper.blur)
}

// WrapperPointerDown handles a press anywhere on the widget.
func (p *Picker) WrapperPointerDown(ptr Pointer) {
	if p.props.Disabled || !ptr.Primary() {
		return
	}
	p.wrapper.send(p.wrapper.press)
}

// WrapperPointerUp handles a release anywhere on the widget.
func (p *Picker) WrapperPointerUp(ptr Pointer) {
	if p.props.Disabled || !ptr.primaryRelease() {
		return
	}
	p.wrapper.send(p.wrapper.release)
}

// WrapperPointerCancel ends a press without a release, e.g. touch cancel.
// It is never gated.
func (p *Picker) WrapperPointerCancel() {
	p.wrapper.send(p.wrapper.cancel)
}

// FocusStyleVisible reports whether a focus indicator should be drawn
// around the widget. With PreventFocusStyleForTouchAndClick, focus gained
// through a press does not show one.
func (p *Picker) FocusStyleVisible() bool {
	if p.props.Disabled {
		return false
	}
	if p.props.PreventFocusStyleForTouchAndClick {
		return p.wrapper.focused()
	}
	return p.hasFocus
}
