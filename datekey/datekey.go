// Package datekey provides the canonical, comparable string identifier for a
// calendar day used throughout the picker engine.
//
// A Key has the form "Y-M-D" with no zero padding, e.g. "2024-3-15". Keys are
// used for equality and lookup instead of comparing date values directly.
//
// Invariant: for every key accepted by Decode, Encode(Decode(k)) == k.
package datekey

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"cloudeng.io/datetime"
)

// Key identifies a single calendar day.
type Key string

// ErrMalformedKey is matched by errors.Is for every *MalformedKeyError.
var ErrMalformedKey = errors.New("malformed date key")

// MalformedKeyError is returned when a key does not denote a calendar day.
// Keys generated by the engine never produce it.
type MalformedKeyError struct {
	Key    Key
	Reason string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed date key %q: %s", string(e.Key), e.Reason)
}

// Is reports ErrMalformedKey as a match.
func (e *MalformedKeyError) Is(target error) bool {
	return target == ErrMalformedKey
}

var keyRe = regexp.MustCompile(`^(-?(?:0|[1-9][0-9]*))-([1-9][0-9]?)-([1-9][0-9]?)$`)

// Encode returns the key for d.
func Encode(d datetime.CalendarDate) Key {
	return Key(fmt.Sprintf("%d-%d-%d", d.Year, int(d.Month), d.Day))
}

// Decode parses k back into a calendar date.
func Decode(k Key) (datetime.CalendarDate, error) {
	m := keyRe.FindStringSubmatch(string(k))
	if m == nil {
		return datetime.CalendarDate{}, &MalformedKeyError{Key: k, Reason: "expected Y-M-D"}
	}
	year, err := strconv.Atoi(m[1])
	if err != nil {
		return datetime.CalendarDate{}, &MalformedKeyError{Key: k, Reason: "year out of range"}
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if month < 1 || month > 12 {
		return datetime.CalendarDate{}, &MalformedKeyError{Key: k, Reason: fmt.Sprintf("month %d out of range", month)}
	}
	if max := datetime.DaysInMonth(year, datetime.Month(month)); day > max {
		return datetime.CalendarDate{}, &MalformedKeyError{Key: k, Reason: fmt.Sprintf("day %d out of range for %s %d", day, time.Month(month), year)}
	}
	return datetime.CalendarDate{Year: year, Month: datetime.Month(month), Day: day}, nil
}

// MustDecode is like Decode but panics on error. It is used only for keys
// that were generated or validated by the engine.
func MustDecode(k Key) datetime.CalendarDate {
	d, err := Decode(k)
	if err != nil {
		panic(err)
	}
	return d
}

// Valid reports whether k decodes.
func (k Key) Valid() bool {
	_, err := Decode(k)
	return err == nil
}

// Date decodes k.
func (k Key) Date() (datetime.CalendarDate, error) {
	return Decode(k)
}

// Compare orders two dates by (year, month, day).
func Compare(a, b datetime.CalendarDate) int {
	switch {
	case a.Year != b.Year:
		return cmpInt(a.Year, b.Year)
	case a.Month != b.Month:
		return cmpInt(int(a.Month), int(b.Month))
	default:
		return cmpInt(a.Day, b.Day)
	}
}

// Equal reports whether a and b denote the same day.
func Equal(a, b datetime.CalendarDate) bool {
	return Compare(a, b) == 0
}

// EqualPtr is like Equal but treats two nil values as equal.
func EqualPtr(a, b *datetime.CalendarDate) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Equal(*a, *b)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// FromTime returns the calendar day of t in t's location.
func FromTime(t time.Time) datetime.CalendarDate {
	y, m, d := t.Date()
	return datetime.CalendarDate{Year: y, Month: datetime.Month(m), Day: d}
}

// ToTime returns midnight of d in loc. A nil loc means time.Local.
func ToTime(d datetime.CalendarDate, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}
