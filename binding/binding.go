// Package binding reconciles the ways a host can own a picker's selected
// date into a single effective value and a single write path.
package binding

import (
	"fmt"

	"cloudeng.io/datetime"
)

// Mode says who owns the selected date.
type Mode int

const (
	// Uncontrolled: the picker owns the value, seeded from a default.
	Uncontrolled Mode = iota
	// ControlledValue: the host owns the value and learns of changes only
	// through the selection-changed notification.
	ControlledValue
	// ControlledLink: the host owns the value and receives change
	// requests through the link.
	ControlledLink
)

func (m Mode) String() string {
	switch m {
	case Uncontrolled:
		return "uncontrolled"
	case ControlledValue:
		return "controlled"
	case ControlledLink:
		return "linked"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Link pairs an externally owned value with its change request callback.
type Link struct {
	Value         *datetime.CalendarDate
	RequestChange func(*datetime.CalendarDate)
}

// Source is the value-related part of a picker's configuration. A nil
// Value with Controlled set is a controlled, empty selection.
type Source struct {
	Value      *datetime.CalendarDate
	Controlled bool
	Link       *Link
	Default    *datetime.CalendarDate
}

// Binder is the resolved form of a Source.
type Binder struct {
	mode  Mode
	value *datetime.CalendarDate
	link  *Link
	def   *datetime.CalendarDate
}

// Resolve picks the mode for src. A link wins over a plain value, which
// wins over a default.
func Resolve(src Source) Binder {
	switch {
	case src.Link != nil:
		return Binder{mode: ControlledLink, value: clone(src.Link.Value), link: src.Link}
	case src.Controlled || src.Value != nil:
		return Binder{mode: ControlledValue, value: clone(src.Value)}
	default:
		return Binder{mode: Uncontrolled, def: clone(src.Default)}
	}
}

// Mode returns the resolved mode.
func (b Binder) Mode() Mode { return b.mode }

// Controlled reports whether the host owns the value.
func (b Binder) Controlled() bool { return b.mode != Uncontrolled }

// Effective returns the host-owned value for the controlled modes and
// false for Uncontrolled.
func (b Binder) Effective() (*datetime.CalendarDate, bool) {
	if b.mode == Uncontrolled {
		return nil, false
	}
	return clone(b.value), true
}

// Initial returns the value a new picker starts with.
func (b Binder) Initial() *datetime.CalendarDate {
	if b.mode == Uncontrolled {
		return clone(b.def)
	}
	return clone(b.value)
}

// Write routes a new selection. It returns true when the caller should
// store d in its own state. In linked mode the link is asked to change
// and local state is left alone.
func (b Binder) Write(d *datetime.CalendarDate) bool {
	switch b.mode {
	case ControlledLink:
		if b.link.RequestChange != nil {
			b.link.RequestChange(clone(d))
		}
		return false
	case ControlledValue:
		return false
	}
	return true
}

func clone(d *datetime.CalendarDate) *datetime.CalendarDate {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
