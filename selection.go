package datepickerx

import (
	"time"

	"cloudeng.io/datetime"

	"github.com/comalice/datepickerx/binding"
	"github.com/comalice/datepickerx/datekey"
	"github.com/comalice/datepickerx/grid"
)

// SelectFocusedDate selects the focused day if it lies within Min and Max.
func (p *Picker) SelectFocusedDate() {
	if p.focused == "" {
		return
	}
	d := datekey.MustDecode(p.focused)
	if !p.withinRange(d) {
		p.log.Debug("selection blocked by range", "day", string(p.focused))
		return
	}
	p.CommitSelection(d.Day, time.Month(d.Month), d.Year)
}

// ToggleFocusedDate clears the selection if the focused day is selected and
// otherwise selects it. Days outside Min and Max are ignored. Clearing
// keeps the displayed month.
func (p *Picker) ToggleFocusedDate() {
	if p.focused == "" {
		return
	}
	d := datekey.MustDecode(p.focused)
	if !p.withinRange(d) {
		p.log.Debug("toggle blocked by range", "day", string(p.focused))
		return
	}
	if p.selected != nil && datekey.Equal(*p.selected, d) {
		p.CommitSelection(0, p.month, p.year)
		return
	}
	p.CommitSelection(d.Day, time.Month(d.Month), d.Year)
}

// CommitSelection is the single write path for the selected date. A day
// of 0 means no selection; month and year then only name the month to
// keep displayed. Out-of-range months and days are normalized.
//
// Nothing happens when the picker is disabled or read only. In linked mode
// the change is requested through the link; with a plain controlled value
// local state is left to the host. Otherwise the selection and displayed
// month are updated locally. In every case the selection-changed
// notification is emitted.
func (p *Picker) CommitSelection(day int, month time.Month, year int) {
	if p.props.Disabled || p.props.ReadOnly {
		p.log.Debug("commit blocked", "disabled", p.props.Disabled, "readOnly", p.props.ReadOnly)
		return
	}
	var sel *datetime.CalendarDate
	if day != 0 {
		d := grid.AddDays(grid.FirstOfMonth(year, month), day-1)
		sel = &d
		year, month = d.Year, time.Month(d.Month)
	}
	if p.binder.Write(sel) {
		p.selected = clone(sel)
		p.setDisplayed(year, month)
	}
	p.emitSelection(sel)
}

// PropsChanged applies new props. A controlled or linked value overwrites
// the selection; focus and the displayed month are kept unless Month or
// Year themselves changed.
func (p *Picker) PropsChanged(props Props) {
	prev := p.props
	p.props = props
	p.binder = binding.Resolve(props.source())
	if v, ok := p.binder.Effective(); ok {
		p.selected = v
	}
	p.loc = p.locales.Resolve(props.Locale)

	year, month := p.year, p.month
	if validMonth(props.Month) && props.Month != prev.Month {
		month = props.Month
	}
	if props.Year != 0 && props.Year != prev.Year {
		year = props.Year
	}
	if year != p.year || month != p.month {
		// Host driven; no month-changed notification.
		p.year, p.month = year, month
	}
	if props.Disabled || props.ReadOnly {
		p.active = ""
	}
}
