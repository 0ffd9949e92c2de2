package datepickerx

import (
	"time"

	"github.com/comalice/datepickerx/datekey"
)

// DayPointerDown marks k as the pressed day. Only a primary press on a day
// within Min and Max counts, and not while disabled or read only.
func (p *Picker) DayPointerDown(k datekey.Key, ptr Pointer) error {
	d, err := p.decodeExternal("down", k)
	if err != nil {
		return err
	}
	if p.props.Disabled || p.props.ReadOnly || !ptr.Primary() || !p.withinRange(d) {
		return nil
	}
	p.active = k
	return nil
}

// DayPointerUp selects and focuses k if it is the day that received the
// matching DayPointerDown. A primary release on any other day drops the
// pressed day without selecting.
func (p *Picker) DayPointerUp(k datekey.Key, ptr Pointer) error {
	d, err := p.decodeExternal("up", k)
	if err != nil {
		return err
	}
	if p.props.Disabled || p.props.ReadOnly || !ptr.primaryRelease() {
		return nil
	}
	if p.active != k {
		p.active = ""
		return nil
	}
	p.CommitSelection(d.Day, time.Month(d.Month), d.Year)
	// Hovering normally focuses the day already, but the keyboard may
	// have moved focus since.
	p.focused = k
	p.active = ""
	return nil
}

// DayPointerEnter focuses k. Read only pickers still track hover.
func (p *Picker) DayPointerEnter(k datekey.Key) error {
	if _, err := p.decodeExternal("enter", k); err != nil {
		return err
	}
	if p.props.Disabled {
		return nil
	}
	p.focused = k
	return nil
}

// DayPointerLeave clears focus from k, remembering it as the last
// hovered day.
func (p *Picker) DayPointerLeave(k datekey.Key) error {
	if _, err := p.decodeExternal("leave", k); err != nil {
		return err
	}
	if p.props.Disabled || p.focused != k {
		return nil
	}
	p.lastHovered = k
	p.focused = ""
	return nil
}

// DayPointerCancel drops any pressed day. It is never gated.
func (p *Picker) DayPointerCancel(k datekey.Key) error {
	if _, err := p.decodeExternal("cancel", k); err != nil {
		return err
	}
	p.active = ""
	return nil
}
