// Package grid builds the week rows of a month view and provides the pure
// date arithmetic the picker uses for navigation.
//
// All functions return new values; none of them mutate their arguments.
package grid

import (
	"time"

	"cloudeng.io/datetime"
)

// Week is one row of the month view, ordered from the first day of the week.
type Week [7]datetime.CalendarDate

// NormalizeMonth folds an out-of-range month into the adjacent year(s):
// month 0 is December of the previous year and month 13 is January of the
// next year.
func NormalizeMonth(year int, month time.Month) (int, time.Month) {
	m := int(month) - 1
	year += m / 12
	m %= 12
	if m < 0 {
		m += 12
		year--
	}
	return year, time.Month(m + 1)
}

// DaysIn returns the number of days in the (normalized) month.
func DaysIn(year int, month time.Month) int {
	year, month = NormalizeMonth(year, month)
	return datetime.DaysInMonth(year, datetime.Month(month))
}

// FirstOfMonth returns day 1 of the (normalized) month.
func FirstOfMonth(year int, month time.Month) datetime.CalendarDate {
	year, month = NormalizeMonth(year, month)
	return datetime.CalendarDate{Year: year, Month: datetime.Month(month), Day: 1}
}

// LastDayOfMonth returns the last day of the (normalized) month.
func LastDayOfMonth(year int, month time.Month) datetime.CalendarDate {
	year, month = NormalizeMonth(year, month)
	return datetime.CalendarDate{
		Year:  year,
		Month: datetime.Month(month),
		Day:   datetime.DaysInMonth(year, datetime.Month(month)),
	}
}

// Weeks returns the full weeks covering month, each starting on firstDay.
// Leading and trailing days are taken from the neighbouring months.
func Weeks(year int, month time.Month, firstDay time.Weekday) []Week {
	first := FirstOfMonth(year, month)
	last := LastDayOfMonth(year, month)
	fd := int(firstDay) % 7
	if fd < 0 {
		fd += 7
	}
	lead := (int(Weekday(first)) - fd + 7) % 7
	trail := (fd + 6 - int(Weekday(last)) + 7) % 7
	total := lead + last.Day + trail

	weeks := make([]Week, 0, total/7)
	cur := AddDays(first, -lead)
	for i := 0; i < total/7; i++ {
		var w Week
		for j := range w {
			w[j] = cur
			cur = AddDays(cur, 1)
		}
		weeks = append(weeks, w)
	}
	return weeks
}

// Weekday returns the day of the week for d.
func Weekday(d datetime.CalendarDate) time.Weekday {
	return toTime(d).Weekday()
}

// AddDays returns the date n days after d (n may be negative).
func AddDays(d datetime.CalendarDate, n int) datetime.CalendarDate {
	return fromTime(toTime(d).AddDate(0, 0, n))
}

// AddMonthsClamped moves d by n months keeping the day of month. When the
// target month is shorter, the result is the target month's last day
// rather than an overflow into the following month.
func AddMonthsClamped(d datetime.CalendarDate, n int) datetime.CalendarDate {
	year, month := NormalizeMonth(d.Year, time.Month(int(d.Month)+n))
	day := d.Day
	if max := datetime.DaysInMonth(year, datetime.Month(month)); day > max {
		day = max
	}
	return datetime.CalendarDate{Year: year, Month: datetime.Month(month), Day: day}
}

// SameMonth reports whether d falls in the given month and year.
func SameMonth(d datetime.CalendarDate, year int, month time.Month) bool {
	return d.Year == year && time.Month(d.Month) == month
}

func toTime(d datetime.CalendarDate) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 12, 0, 0, 0, time.UTC)
}

func fromTime(t time.Time) datetime.CalendarDate {
	y, m, day := t.Date()
	return datetime.CalendarDate{Year: y, Month: datetime.Month(m), Day: day}
}
