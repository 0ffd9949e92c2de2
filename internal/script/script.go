// Package script parses line oriented input scripts and applies them to a
// picker. Each non-blank line that does not start with # is one event:
//
//	focus | blur
//	press [touch|button=N|touches=N] | release [...] | cancel
//	key NAME
//	down KEY [...] | up KEY [...] | enter KEY | leave KEY | cancel KEY
//	prev | next
//	select KEY | clear
//
// KEY is a date key such as 2024-3-15 and NAME a key name accepted by
// datepickerx.ParseKey.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"

	"github.com/comalice/datepickerx"
	"github.com/comalice/datepickerx/datekey"
)

// Op identifies the kind of a scripted event.
type Op int

const (
	Focus Op = iota + 1
	Blur
	Press
	Release
	CancelPress
	KeyPress
	DayDown
	DayUp
	DayEnter
	DayLeave
	DayCancel
	Prev
	Next
	Select
	Clear
)

var opNames = map[Op]string{
	Focus:       "focus",
	Blur:        "blur",
	Press:       "press",
	Release:     "release",
	CancelPress: "cancel",
	KeyPress:    "key",
	DayDown:     "down",
	DayUp:       "up",
	DayEnter:    "enter",
	DayLeave:    "leave",
	DayCancel:   "cancel",
	Prev:        "prev",
	Next:        "next",
	Select:      "select",
	Clear:       "clear",
}

func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Event is one parsed script line.
type Event struct {
	Line    int
	Op      Op
	Day     datekey.Key
	Key     datepickerx.Key
	Pointer datepickerx.Pointer
}

func (e Event) String() string {
	switch e.Op {
	case KeyPress:
		return fmt.Sprintf("key %q", string(e.Key))
	case DayDown, DayUp, DayEnter, DayLeave, DayCancel, Select:
		return e.Op.String() + " " + string(e.Day)
	}
	return e.Op.String()
}

// ParseError describes a bad script line.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a script from r. Every bad line is reported; the events from
// the good lines are returned along with the error.
func Parse(r io.Reader) ([]Event, error) {
	var (
		events []Event
		errs   errors.M
	)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ev, err := ParseLine(text)
		if err != nil {
			errs.Append(&ParseError{Line: line, Text: text, Err: err})
			continue
		}
		ev.Line = line
		events = append(events, ev)
	}
	errs.Append(sc.Err())
	return events, errs.Err()
}

// ParseString is like Parse for a string.
func ParseString(s string) ([]Event, error) {
	return Parse(strings.NewReader(s))
}

// ParseLine parses a single event.
func ParseLine(text string) (Event, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Event{}, fmt.Errorf("empty event")
	}
	verb, args := strings.ToLower(fields[0]), fields[1:]
	switch verb {
	case "focus", "blur", "prev", "next", "clear":
		if len(args) != 0 {
			return Event{}, fmt.Errorf("%s takes no arguments", verb)
		}
		return Event{Op: map[string]Op{
			"focus": Focus, "blur": Blur, "prev": Prev, "next": Next, "clear": Clear,
		}[verb]}, nil
	case "press", "release":
		ptr, err := parsePointer(args)
		if err != nil {
			return Event{}, err
		}
		op := Press
		if verb == "release" {
			op = Release
		}
		return Event{Op: op, Pointer: ptr}, nil
	case "key":
		if len(args) != 1 {
			return Event{}, fmt.Errorf("key takes one key name")
		}
		k := datepickerx.ParseKey(args[0])
		if !knownKey(k) {
			k = datepickerx.ParseKey(strings.ToLower(args[0]))
		}
		if !knownKey(k) {
			return Event{}, fmt.Errorf("unknown key %q", args[0])
		}
		return Event{Op: KeyPress, Key: k}, nil
	case "cancel":
		if len(args) == 0 {
			return Event{Op: CancelPress}, nil
		}
		fallthrough
	case "down", "up", "enter", "leave", "select":
		if len(args) == 0 {
			return Event{}, fmt.Errorf("%s needs a date key", verb)
		}
		k := datekey.Key(args[0])
		if _, err := datekey.Decode(k); err != nil {
			return Event{}, err
		}
		ev := Event{Day: k}
		switch verb {
		case "down", "up":
			ptr, err := parsePointer(args[1:])
			if err != nil {
				return Event{}, err
			}
			ev.Pointer = ptr
			ev.Op = DayDown
			if verb == "up" {
				ev.Op = DayUp
			}
			return ev, nil
		case "enter":
			ev.Op = DayEnter
		case "leave":
			ev.Op = DayLeave
		case "cancel":
			ev.Op = DayCancel
		case "select":
			ev.Op = Select
		}
		if len(args) != 1 {
			return Event{}, fmt.Errorf("%s takes one date key", verb)
		}
		return ev, nil
	}
	return Event{}, fmt.Errorf("unknown event %q", verb)
}

func knownKey(k datepickerx.Key) bool {
	switch k {
	case datepickerx.KeyHome, datepickerx.KeyEnd,
		datepickerx.KeyArrowUp, datepickerx.KeyArrowDown,
		datepickerx.KeyArrowLeft, datepickerx.KeyArrowRight,
		datepickerx.KeyPageUp, datepickerx.KeyPageDown,
		datepickerx.KeyEnter, datepickerx.KeySpace:
		return true
	}
	return false
}

func parsePointer(args []string) (datepickerx.Pointer, error) {
	ptr := datepickerx.MouseButton(0)
	for _, a := range args {
		name, val, hasVal := strings.Cut(a, "=")
		switch {
		case name == "touch" && !hasVal:
			ptr = datepickerx.SingleTouch()
		case name == "mouse" && !hasVal:
			ptr = datepickerx.MouseButton(0)
		case name == "button" && hasVal:
			n, err := strconv.Atoi(val)
			if err != nil {
				return ptr, fmt.Errorf("button: %w", err)
			}
			ptr = datepickerx.MouseButton(n)
		case name == "touches" && hasVal:
			n, err := strconv.Atoi(val)
			if err != nil {
				return ptr, fmt.Errorf("touches: %w", err)
			}
			ptr = datepickerx.Pointer{Kind: datepickerx.Touch, Touches: n}
		default:
			return ptr, fmt.Errorf("unknown pointer option %q", a)
		}
	}
	return ptr, nil
}

// Apply drives p with ev.
func Apply(p *datepickerx.Picker, ev Event) error {
	switch ev.Op {
	case Focus:
		p.FocusWrapper()
	case Blur:
		p.BlurWrapper()
	case Press:
		p.WrapperPointerDown(ev.Pointer)
	case Release:
		p.WrapperPointerUp(ev.Pointer)
	case CancelPress:
		p.WrapperPointerCancel()
	case KeyPress:
		p.HandleKey(ev.Key)
	case DayDown:
		return p.DayPointerDown(ev.Day, ev.Pointer)
	case DayUp:
		return p.DayPointerUp(ev.Day, ev.Pointer)
	case DayEnter:
		return p.DayPointerEnter(ev.Day)
	case DayLeave:
		return p.DayPointerLeave(ev.Day)
	case DayCancel:
		return p.DayPointerCancel(ev.Day)
	case Prev:
		p.PrevMonth()
	case Next:
		p.NextMonth()
	case Select:
		d, err := datekey.Decode(ev.Day)
		if err != nil {
			return err
		}
		p.CommitSelection(d.Day, time.Month(d.Month), d.Year)
	case Clear:
		st := p.State()
		p.CommitSelection(0, st.DisplayedMonth, st.DisplayedYear)
	default:
		return fmt.Errorf("unsupported event %v", ev.Op)
	}
	return nil
}

// ApplyAll applies events in order and returns every error encountered.
func ApplyAll(p *datepickerx.Picker, events []Event) error {
	var errs errors.M
	for _, ev := range events {
		if err := Apply(p, ev); err != nil {
			errs.Append(fmt.Errorf("line %d: %w", ev.Line, err))
		}
	}
	return errs.Err()
}
