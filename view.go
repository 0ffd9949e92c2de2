package datepickerx

import (
	"fmt"

	"cloudeng.io/datetime"

	"github.com/comalice/datepickerx/datekey"
	"github.com/comalice/datepickerx/grid"
	"github.com/comalice/datepickerx/locale"
)

// DayFlags describes how a single day cell should be presented.
type DayFlags struct {
	Selected        bool
	Focused         bool
	Active          bool
	DisabledByRange bool
	OtherMonth      bool
	Today           bool
	Weekend         bool
	// Hidden is set for other-month days when ShowOtherMonthDate is off.
	Hidden bool
}

// Weeks returns the displayed month's week rows in visual order.
func (p *Picker) Weeks() []grid.Week {
	weeks := grid.Weeks(p.year, p.month, p.loc.FirstDay)
	for i := range weeks {
		weeks[i] = p.loc.OrderWeek(weeks[i])
	}
	return weeks
}

// Day returns the presentation flags for d.
func (p *Picker) Day(d datetime.CalendarDate) DayFlags {
	k := datekey.Encode(d)
	other := !grid.SameMonth(d, p.year, p.month)
	return DayFlags{
		Selected:        p.selected != nil && datekey.Equal(*p.selected, d),
		Focused:         p.focused == k,
		Active:          !p.props.Disabled && !p.props.ReadOnly && p.active == k,
		DisabledByRange: !p.withinRange(d),
		OtherMonth:      other,
		Today:           datekey.Equal(p.today(), d),
		Weekend:         p.loc.IsWeekend(grid.Weekday(d)),
		Hidden:          other && !p.props.ShowOtherMonthDate,
	}
}

// Locale returns the resolved locale.
func (p *Picker) Locale() locale.Descriptor { return p.loc }

// MonthLabel returns the localized "Month Year" heading.
func (p *Picker) MonthLabel() string {
	return fmt.Sprintf("%s %d", p.loc.MonthName(p.month), p.year)
}

// DayNames returns the week header in visual order.
func (p *Picker) DayNames() [7]string { return p.loc.DayNames() }

// WeekendColumn returns the header column of the weekend day.
func (p *Picker) WeekendColumn() int { return p.loc.WeekendColumn() }
