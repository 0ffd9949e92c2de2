package grid

import (
	"testing"
	"time"

	"cloudeng.io/datetime"
)

func cd(y int, m time.Month, d int) datetime.CalendarDate {
	return datetime.CalendarDate{Year: y, Month: datetime.Month(m), Day: d}
}

func TestWeeks_FullRowsStartOnFirstDay(t *testing.T) {
	for year := 1890; year <= 2110; year += 7 {
		for month := time.January; month <= time.December; month++ {
			for fd := time.Sunday; fd <= time.Saturday; fd++ {
				weeks := Weeks(year, month, fd)
				if len(weeks) < 4 || len(weeks) > 6 {
					t.Fatalf("Weeks(%d, %v, %v) returned %d rows", year, month, fd, len(weeks))
				}
				for i, w := range weeks {
					if got := Weekday(w[0]); got != fd {
						t.Fatalf("Weeks(%d, %v, %v) row %d starts on %v", year, month, fd, i, got)
					}
				}
				// Every day of the month appears exactly once, in order.
				seen := 0
				var prev datetime.CalendarDate
				for i, w := range weeks {
					for j, d := range w {
						if i+j > 0 && AddDays(prev, 1) != d {
							t.Fatalf("Weeks(%d, %v, %v) not contiguous at %v", year, month, fd, d)
						}
						prev = d
						if SameMonth(d, year, month) {
							seen++
						}
					}
				}
				if want := DaysIn(year, month); seen != want {
					t.Fatalf("Weeks(%d, %v, %v) covers %d days of the month, want %d", year, month, fd, seen, want)
				}
			}
		}
	}
}

func TestWeeks_KnownMonth(t *testing.T) {
	// March 2024 starts on a Friday.
	weeks := Weeks(2024, time.March, time.Sunday)
	if len(weeks) != 6 {
		t.Fatalf("got %d weeks, want 6", len(weeks))
	}
	if got, want := weeks[0][0], cd(2024, time.February, 25); got != want {
		t.Errorf("first cell = %v, want %v", got, want)
	}
	if got, want := weeks[5][6], cd(2024, time.April, 6); got != want {
		t.Errorf("last cell = %v, want %v", got, want)
	}

	weeks = Weeks(2024, time.March, time.Saturday)
	if got, want := weeks[0][0], cd(2024, time.February, 24); got != want {
		t.Errorf("saturday-first first cell = %v, want %v", got, want)
	}

	// February 2015 fits exactly into four Sunday-first weeks.
	if got := len(Weeks(2015, time.February, time.Sunday)); got != 4 {
		t.Errorf("February 2015 rows = %d, want 4", got)
	}
}

func TestLastDayOfMonth_Normalizes(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  datetime.CalendarDate
	}{
		{2024, time.February, cd(2024, time.February, 29)},
		{2023, time.February, cd(2023, time.February, 28)},
		{1900, time.February, cd(1900, time.February, 28)},
		{2000, time.February, cd(2000, time.February, 29)},
		{2024, 0, cd(2023, time.December, 31)},
		{2024, 13, cd(2025, time.January, 31)},
		{2024, -1, cd(2023, time.November, 30)},
		{2024, 26, cd(2026, time.February, 28)},
	}
	for _, tc := range tests {
		if got := LastDayOfMonth(tc.year, tc.month); got != tc.want {
			t.Errorf("LastDayOfMonth(%d, %d) = %v, want %v", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestAddMonthsClamped(t *testing.T) {
	tests := []struct {
		in   datetime.CalendarDate
		n    int
		want datetime.CalendarDate
	}{
		{cd(2023, time.March, 30), -1, cd(2023, time.February, 28)},
		{cd(2024, time.March, 30), -1, cd(2024, time.February, 29)},
		{cd(2024, time.January, 31), 1, cd(2024, time.February, 29)},
		{cd(2024, time.March, 31), 1, cd(2024, time.April, 30)},
		{cd(2024, time.December, 15), 1, cd(2025, time.January, 15)},
		{cd(2024, time.January, 15), -1, cd(2023, time.December, 15)},
	}
	for _, tc := range tests {
		if got := AddMonthsClamped(tc.in, tc.n); got != tc.want {
			t.Errorf("AddMonthsClamped(%v, %d) = %v, want %v", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestAddDays(t *testing.T) {
	if got, want := AddDays(cd(2024, time.November, 30), 1), cd(2024, time.December, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := AddDays(cd(2024, time.December, 1), 31), cd(2025, time.January, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := AddDays(cd(2024, time.March, 1), -1), cd(2024, time.February, 29); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNormalizeMonth(t *testing.T) {
	for _, tc := range []struct {
		y     int
		m     time.Month
		wantY int
		wantM time.Month
	}{
		{2024, 1, 2024, time.January},
		{2024, 12, 2024, time.December},
		{2024, 0, 2023, time.December},
		{2024, 13, 2025, time.January},
		{2024, -12, 2022, time.December},
		{2024, 25, 2026, time.January},
	} {
		y, m := NormalizeMonth(tc.y, tc.m)
		if y != tc.wantY || m != tc.wantM {
			t.Errorf("NormalizeMonth(%d, %d) = (%d, %v), want (%d, %v)", tc.y, tc.m, y, m, tc.wantY, tc.wantM)
		}
	}
}
