package datepickerx

import (
	"time"

	"github.com/comalice/datepickerx/datekey"
	"github.com/comalice/datepickerx/grid"
)

// NavigateHome focuses the first day of the displayed month.
func (p *Picker) NavigateHome() {
	if p.props.Disabled {
		return
	}
	p.focused = datekey.Encode(grid.FirstOfMonth(p.year, p.month))
}

// NavigateEnd focuses the last day of the displayed month.
func (p *Picker) NavigateEnd() {
	if p.props.Disabled {
		return
	}
	p.focused = datekey.Encode(grid.LastDayOfMonth(p.year, p.month))
}

// MoveFocusByDays moves the focused day by n days. It does nothing when
// no day is focused. When the target lies outside the displayed month the
// display is paged to the target's month, which matters when focus sits on
// a visible day of a neighbouring month.
func (p *Picker) MoveFocusByDays(n int) {
	if p.props.Disabled || p.focused == "" {
		return
	}
	next := grid.AddDays(datekey.MustDecode(p.focused), n)
	if delta := monthIndex(next.Year, time.Month(next.Month)) - monthIndex(p.year, p.month); delta != 0 {
		p.shiftMonth(delta)
	}
	p.focused = datekey.Encode(next)
}

// focusFallback focuses the last hovered day, or the first of the month.
func (p *Picker) focusFallback() {
	if p.lastHovered != "" {
		p.focused = p.lastHovered
		return
	}
	p.NavigateHome()
}

// PageMonth shows the previous (dir < 0) or next (dir > 0) month. The
// focused and last hovered days are cleared.
func (p *Picker) PageMonth(dir int) {
	if p.props.Disabled {
		return
	}
	switch {
	case dir < 0:
		p.shiftMonth(-1)
	case dir > 0:
		p.shiftMonth(1)
	}
}

// PrevMonth is PageMonth(-1), as for a "previous month" button.
func (p *Picker) PrevMonth() { p.PageMonth(-1) }

// NextMonth is PageMonth(1), as for a "next month" button.
func (p *Picker) NextMonth() { p.PageMonth(1) }

func (p *Picker) shiftMonth(delta int) {
	p.focused = ""
	p.lastHovered = ""
	p.setDisplayed(p.year, p.month+time.Month(delta))
}

// PageUp moves the focused day to the same day of the previous month,
// clamped to that month's last day, and displays that month.
func (p *Picker) PageUp() { p.pageFocused(-1) }

// PageDown is PageUp towards the next month.
func (p *Picker) PageDown() { p.pageFocused(1) }

func (p *Picker) pageFocused(n int) {
	if p.props.Disabled || p.focused == "" {
		return
	}
	target := grid.AddMonthsClamped(datekey.MustDecode(p.focused), n)
	p.lastHovered = ""
	p.focused = datekey.Encode(target)
	p.setDisplayed(target.Year, time.Month(target.Month))
}

func monthIndex(year int, month time.Month) int {
	return year*12 + int(month) - 1
}
