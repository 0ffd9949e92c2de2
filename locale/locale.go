// Package locale resolves locale identifiers to the month names, day names
// and week layout used to render a calendar.
//
// Locale tables are data: the built-in tables are embedded from
// locales.yaml and hosts may supply their own with LoadYAML. Resolution
// never fails; an unknown id yields the English descriptor.
package locale

import (
	_ "embed"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"cloudeng.io/datetime"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Descriptor is a fully populated locale.
type Descriptor struct {
	ID          string
	MonthNames  [12]string
	DayNamesMin [7]string // Sunday first
	FirstDay    time.Weekday
	WeekEnd     time.Weekday
	IsRTL       bool
}

// English is the fallback descriptor.
var English = Descriptor{
	ID: "en",
	MonthNames: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	DayNamesMin: [7]string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"},
	FirstDay:    time.Sunday,
	WeekEnd:     time.Saturday,
}

// Entry is a possibly partial locale as it appears in a table. Nil fields
// are filled from English when the entry is resolved.
type Entry struct {
	MonthNames  []string `yaml:"monthNames"`
	DayNamesMin []string `yaml:"dayNamesMin"`
	FirstDay    *int     `yaml:"firstDay"`
	WeekEnd     *int     `yaml:"weekEnd"`
	IsRTL       *bool    `yaml:"isRTL"`
}

// Table maps locale ids to entries.
type Table map[string]Entry

// Provider resolves locale ids against one or more tables. Later tables
// override earlier ones entry by entry.
type Provider struct {
	entries map[string]Descriptor
}

// NewProvider returns a Provider for the merged tables.
func NewProvider(tables ...Table) *Provider {
	p := &Provider{entries: map[string]Descriptor{}}
	for _, t := range tables {
		for id, e := range t {
			p.entries[id] = e.merge(id)
		}
	}
	return p
}

// LoadYAML decodes a table from r.
func LoadYAML(r io.Reader) (Table, error) {
	var t Table
	if err := yaml.NewDecoder(r).Decode(&t); err != nil {
		return nil, fmt.Errorf("decoding locale table: %w", err)
	}
	for id, e := range t {
		if err := e.validate(); err != nil {
			return nil, fmt.Errorf("locale %q: %w", id, err)
		}
	}
	return t, nil
}

//go:embed locales.yaml
var builtin []byte

var (
	defaultOnce     sync.Once
	defaultProvider *Provider
)

// Builtin returns a fresh copy of the embedded table, for hosts that
// extend it with tables of their own.
func Builtin() Table {
	var t Table
	if err := yaml.Unmarshal(builtin, &t); err != nil {
		panic(fmt.Sprintf("locale: embedded tables: %v", err))
	}
	return t
}

// Default returns the Provider for the embedded tables.
func Default() *Provider {
	defaultOnce.Do(func() {
		defaultProvider = NewProvider(Builtin())
	})
	return defaultProvider
}

// Resolve is Default().Resolve(id).
func Resolve(id string) Descriptor {
	return Default().Resolve(id)
}

// Resolve returns the descriptor for id. It tries the id as given, then its
// canonical BCP 47 form, then its base language. Anything else, including
// the empty id, resolves to English.
func (p *Provider) Resolve(id string) Descriptor {
	if id == "" {
		return English
	}
	if d, ok := p.entries[id]; ok {
		return d
	}
	tag, err := language.Parse(id)
	if err != nil {
		return English
	}
	if d, ok := p.entries[tag.String()]; ok {
		return d
	}
	if base, conf := tag.Base(); conf != language.No {
		if d, ok := p.entries[base.String()]; ok {
			return d
		}
	}
	return English
}

// Known is Default().Known().
func Known() []string {
	return Default().Known()
}

// Known returns the ids in p, sorted.
func (p *Provider) Known() []string {
	ids := make([]string, 0, len(p.entries))
	for id := range p.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (e Entry) validate() error {
	if n := len(e.MonthNames); n != 0 && n != 12 {
		return fmt.Errorf("monthNames has %d entries, want 12", n)
	}
	if n := len(e.DayNamesMin); n != 0 && n != 7 {
		return fmt.Errorf("dayNamesMin has %d entries, want 7", n)
	}
	if e.FirstDay != nil && (*e.FirstDay < 0 || *e.FirstDay > 6) {
		return fmt.Errorf("firstDay %d out of range", *e.FirstDay)
	}
	if e.WeekEnd != nil && (*e.WeekEnd < 0 || *e.WeekEnd > 6) {
		return fmt.Errorf("weekEnd %d out of range", *e.WeekEnd)
	}
	return nil
}

// merge fills every missing or unusable field of e from English.
func (e Entry) merge(id string) Descriptor {
	d := English
	d.ID = id
	if len(e.MonthNames) == 12 {
		copy(d.MonthNames[:], e.MonthNames)
	}
	if len(e.DayNamesMin) == 7 {
		copy(d.DayNamesMin[:], e.DayNamesMin)
	}
	if e.FirstDay != nil && *e.FirstDay >= 0 && *e.FirstDay <= 6 {
		d.FirstDay = time.Weekday(*e.FirstDay)
	}
	if e.WeekEnd != nil && *e.WeekEnd >= 0 && *e.WeekEnd <= 6 {
		d.WeekEnd = time.Weekday(*e.WeekEnd)
	}
	if e.IsRTL != nil {
		d.IsRTL = *e.IsRTL
	}
	return d
}

// MonthName returns the name of m.
func (d Descriptor) MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return d.MonthNames[m-1]
}

// DayNames returns the header row: day names starting at FirstDay, in
// visual order (reversed for right-to-left locales).
func (d Descriptor) DayNames() [7]string {
	var out [7]string
	for i := range out {
		out[i] = d.DayNamesMin[(int(d.FirstDay)+i)%7]
	}
	if d.IsRTL {
		reverse(out[:])
	}
	return out
}

// WeekendColumn returns the visual header column of the weekend day.
func (d Descriptor) WeekendColumn() int {
	col := (int(d.WeekEnd) - int(d.FirstDay) + 7) % 7
	if d.IsRTL {
		col = 6 - col
	}
	return col
}

// IsWeekend reports whether wd is the locale's weekend day.
func (d Descriptor) IsWeekend(wd time.Weekday) bool {
	return wd == d.WeekEnd
}

// OrderWeek returns a copy of week in visual order.
func (d Descriptor) OrderWeek(week [7]datetime.CalendarDate) [7]datetime.CalendarDate {
	if d.IsRTL {
		reverse(week[:])
	}
	return week
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
