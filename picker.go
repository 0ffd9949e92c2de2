// Package datepickerx is a rendering-independent calendar navigation and
// selection engine for date picker widgets.
//
// A Picker decides which month is displayed, which day is focused, pressed
// or selected, and how keyboard, pointer and prop-update events change that
// state. Rendering layers query it through Weeks, Day and the locale
// helpers and feed input back through its operations. All operations run
// synchronously; a Picker is not safe for concurrent use.
package datepickerx

import (
	"context"
	"log/slog"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"
	"github.com/google/uuid"

	"github.com/comalice/datepickerx/binding"
	"github.com/comalice/datepickerx/datekey"
	"github.com/comalice/datepickerx/grid"
	"github.com/comalice/datepickerx/internal/fsm"
	"github.com/comalice/datepickerx/locale"
	"github.com/comalice/datepickerx/notify"
)

// CalendarState is a snapshot of a Picker's state. Empty keys mean absent.
type CalendarState struct {
	SelectedDate   *datetime.CalendarDate
	DisplayedMonth time.Month
	DisplayedYear  int
	FocusedDateKey datekey.Key
	ActiveDay      datekey.Key
	LastHoveredDay datekey.Key
	IsFocused      bool
	IsActive       bool
}

// Picker is a single date picker instance.
type Picker struct {
	id      string
	props   Props
	binder  binding.Binder
	loc     locale.Descriptor
	locales *locale.Provider
	now     func() time.Time
	log     *slog.Logger
	pub     notify.Publisher

	selected    *datetime.CalendarDate
	month       time.Month
	year        int
	focused     datekey.Key
	active      datekey.Key
	lastHovered datekey.Key

	// hasFocus tracks input focus even when it arrived during a press and
	// so did not set IsFocused.
	hasFocus bool
	wrapper  *wrapper
}

// New creates a Picker from props. The logger is taken from ctx (see
// cloudeng.io/logging/ctxlog); ctx is not retained.
func New(ctx context.Context, props Props, opts ...Option) *Picker {
	p := &Picker{
		id:      uuid.NewString(),
		props:   props,
		locales: locale.Default(),
		now:     time.Now,
		log:     ctxlog.Logger(ctx),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With("picker", p.id)
	p.wrapper = newWrapper(p)

	p.binder = binding.Resolve(props.source())
	p.selected = p.binder.Initial()
	p.loc = p.locales.Resolve(props.Locale)

	today := p.today()
	switch {
	case validMonth(props.Month):
		p.month = props.Month
	case validMonth(props.DefaultMonth):
		p.month = props.DefaultMonth
	case p.selected != nil:
		p.month = time.Month(p.selected.Month)
	default:
		p.month = time.Month(today.Month)
	}
	switch {
	case props.Year != 0:
		p.year = props.Year
	case props.DefaultYear != 0:
		p.year = props.DefaultYear
	case p.selected != nil:
		p.year = p.selected.Year
	default:
		p.year = today.Year
	}
	p.log.Debug("picker created", "mode", p.binder.Mode(), "month", int(p.month), "year", p.year, "locale", p.loc.ID)
	return p
}

func validMonth(m time.Month) bool {
	return m >= time.January && m <= time.December
}

// ID returns the instance id, suitable for keying per-instance styles.
func (p *Picker) ID() string { return p.id }

// Props returns the current props.
func (p *Picker) Props() Props { return p.props }

// Mode returns the resolved value ownership mode.
func (p *Picker) Mode() binding.Mode { return p.binder.Mode() }

// State returns a snapshot of the current state.
func (p *Picker) State() CalendarState {
	var sel *datetime.CalendarDate
	if p.selected != nil {
		c := *p.selected
		sel = &c
	}
	return CalendarState{
		SelectedDate:   sel,
		DisplayedMonth: p.month,
		DisplayedYear:  p.year,
		FocusedDateKey: p.focused,
		ActiveDay:      p.active,
		LastHoveredDay: p.lastHovered,
		IsFocused:      p.wrapper.focused(),
		IsActive:       p.wrapper.pressed(),
	}
}

// WrapperState returns the name of the wrapper's focus/press state.
func (p *Picker) WrapperState() string {
	return p.wrapper.m.StateName(p.wrapper.m.Current())
}

// Machine returns the state machine tracking wrapper focus and press.
func (p *Picker) Machine() *fsm.Machine {
	return p.wrapper.m
}

func (p *Picker) today() datetime.CalendarDate {
	return datekey.FromTime(p.now())
}

// withinRange reports whether d satisfies the Min and Max props.
func (p *Picker) withinRange(d datetime.CalendarDate) bool {
	if p.props.Min != nil && datekey.Compare(d, *p.props.Min) < 0 {
		return false
	}
	if p.props.Max != nil && datekey.Compare(d, *p.props.Max) > 0 {
		return false
	}
	return true
}

// setDisplayed moves the displayed month, normalizing out-of-range months,
// and emits month-changed if it actually changed.
func (p *Picker) setDisplayed(year int, month time.Month) {
	year, month = grid.NormalizeMonth(year, month)
	if year == p.year && month == p.month {
		return
	}
	p.year, p.month = year, month
	p.log.Debug("month changed", "month", int(month), "year", year)
	if p.props.OnMonthChanged != nil {
		p.props.OnMonthChanged(month, year)
	}
	p.publish(notify.Notification{Kind: notify.MonthChanged, Month: month, Year: year})
}

func (p *Picker) emitSelection(d *datetime.CalendarDate) {
	if p.props.OnSelectionChanged != nil {
		p.props.OnSelectionChanged(clone(d))
	}
	p.publish(notify.Notification{Kind: notify.SelectionChanged, Date: clone(d)})
}

func (p *Picker) publish(n notify.Notification) {
	if p.pub == nil {
		return
	}
	n.PickerID = p.id
	p.pub.Publish(n)
}

// decodeExternal validates a key supplied by the host.
func (p *Picker) decodeExternal(op string, k datekey.Key) (datetime.CalendarDate, error) {
	d, err := datekey.Decode(k)
	if err != nil {
		p.log.Debug("rejected day key", "op", op, "key", string(k), "error", err)
	}
	return d, err
}

func clone(d *datetime.CalendarDate) *datetime.CalendarDate {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}
