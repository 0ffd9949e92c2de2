// Package render draws a Picker as plain text and exports its interaction
// machine as Graphviz DOT. It also defines the style registry interface
// that styled rendering layers implement.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/comalice/datepickerx"
)

// Markers placed after a day number, in priority order.
const (
	markSelected = '*'
	markActive   = '!'
	markFocused  = '^'
	markToday    = '.'
	markDisabled = '-'
)

const cellWidth = 4

// Text renders p's displayed month in the style of cal(1). Each day is
// followed by a marker: '*' selected, '!' pressed, '^' focused, '.' today
// and '-' outside Min/Max. Hidden other-month days are left blank.
// Weekend header names are upper-cased.
func Text(p *datepickerx.Picker) string {
	var b strings.Builder
	width := 7 * cellWidth
	label := p.MonthLabel()
	if pad := (width - utf8.RuneCountInString(label)) / 2; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(label)
	b.WriteByte('\n')

	wc := p.WeekendColumn()
	for i, name := range p.DayNames() {
		cell := name
		if i == wc {
			cell = strings.ToUpper(name)
		}
		b.WriteString(padLeft(cell, cellWidth))
	}
	b.WriteByte('\n')

	for _, w := range p.Weeks() {
		for _, d := range w {
			f := p.Day(d)
			if f.Hidden {
				b.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			b.WriteString(padLeft(fmt.Sprintf("%d", d.Day), cellWidth-1))
			b.WriteRune(marker(f))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func marker(f datepickerx.DayFlags) rune {
	switch {
	case f.Selected:
		return markSelected
	case f.Active:
		return markActive
	case f.Focused:
		return markFocused
	case f.Today:
		return markToday
	case f.DisabledByRange:
		return markDisabled
	}
	return ' '
}

func padLeft(s string, n int) string {
	if w := utf8.RuneCountInString(s); w < n {
		return strings.Repeat(" ", n-w) + s
	}
	return s
}
