// Package config reads picker configurations from YAML.
//
// A configuration names the same things as datepickerx.Props: the value
// ownership mode, the value or default value, the min/max range, the
// displayed month and the display switches. Dates may be written either
// as YYYY-MM-DD or as date keys (2024-3-5).
package config

import (
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/datetime"
	"cloudeng.io/errors"

	"github.com/comalice/datepickerx"
	"github.com/comalice/datepickerx/binding"
	"github.com/comalice/datepickerx/datekey"
)

// Config is the YAML form of a picker configuration.
type Config struct {
	Locale       string `yaml:"locale"`
	Mode         string `yaml:"mode"` // uncontrolled, controlled or linked
	Value        string `yaml:"value"`
	DefaultValue string `yaml:"default_value"`
	Min          string `yaml:"min"`
	Max          string `yaml:"max"`
	Month        int    `yaml:"month"`
	Year         int    `yaml:"year"`
	DefaultMonth int    `yaml:"default_month"`
	DefaultYear  int    `yaml:"default_year"`
	Disabled     bool   `yaml:"disabled"`
	ReadOnly     bool   `yaml:"read_only"`

	// Pointers so that an absent key keeps the Props default of true.
	ShowOtherMonthDate                *bool `yaml:"show_other_month_date"`
	PreventFocusStyleForTouchAndClick *bool `yaml:"prevent_focus_style_for_touch_and_click"`
}

// Parse parses and validates a YAML configuration.
func Parse(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdutil.ParseYAMLConfig(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ParseFile is like Parse but reads the configuration from file.
func ParseFile(file string) (Config, error) {
	var cfg Config
	if err := cmdutil.ParseYAMLConfigFile(file, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", file, err)
	}
	return cfg, nil
}

// ParseDate accepts YYYY-MM-DD or a date key. The empty string is the
// empty date.
func ParseDate(s string) (*datetime.CalendarDate, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		d := datekey.FromTime(t)
		return &d, nil
	}
	d, err := datekey.Decode(datekey.Key(s))
	if err != nil {
		return nil, fmt.Errorf("date %q: %w", s, err)
	}
	return &d, nil
}

// ParseMode maps a mode name to a binding.Mode; the empty name is
// uncontrolled.
func ParseMode(s string) (binding.Mode, error) {
	switch s {
	case "", "uncontrolled":
		return binding.Uncontrolled, nil
	case "controlled":
		return binding.ControlledValue, nil
	case "linked":
		return binding.ControlledLink, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var errs errors.M
	if _, err := ParseMode(c.Mode); err != nil {
		errs.Append(err)
	}
	dates := map[string]*datetime.CalendarDate{}
	for _, f := range []struct {
		name, val string
	}{
		{"value", c.Value},
		{"default_value", c.DefaultValue},
		{"min", c.Min},
		{"max", c.Max},
	} {
		d, err := ParseDate(f.val)
		if err != nil {
			errs.Append(fmt.Errorf("%s: %w", f.name, err))
			continue
		}
		dates[f.name] = d
	}
	if lo, hi := dates["min"], dates["max"]; lo != nil && hi != nil && datekey.Compare(*lo, *hi) > 0 {
		errs.Append(fmt.Errorf("min %s is after max %s", datekey.Encode(*lo), datekey.Encode(*hi)))
	}
	for _, f := range []struct {
		name string
		val  int
	}{
		{"month", c.Month},
		{"default_month", c.DefaultMonth},
	} {
		if f.val < 0 || f.val > 12 {
			errs.Append(fmt.Errorf("%s: %d is not a month (1-12, or 0 for unset)", f.name, f.val))
		}
	}
	if c.Value != "" && c.Mode == "" {
		errs.Append(fmt.Errorf("value is set but mode is not; use default_value for an uncontrolled picker"))
	}
	return errs.Err()
}

// Props converts the configuration to picker props. In linked mode
// requestChange becomes the link's change callback.
func (c Config) Props(requestChange func(*datetime.CalendarDate)) (datepickerx.Props, error) {
	if err := c.Validate(); err != nil {
		return datepickerx.Props{}, err
	}
	mode, _ := ParseMode(c.Mode)
	value, _ := ParseDate(c.Value)
	def, _ := ParseDate(c.DefaultValue)
	lo, _ := ParseDate(c.Min)
	hi, _ := ParseDate(c.Max)

	p := datepickerx.DefaultProps()
	p.Locale = c.Locale
	p.DefaultValue = def
	p.Min, p.Max = lo, hi
	p.Month = time.Month(c.Month)
	p.Year = c.Year
	p.DefaultMonth = time.Month(c.DefaultMonth)
	p.DefaultYear = c.DefaultYear
	p.Disabled = c.Disabled
	p.ReadOnly = c.ReadOnly
	if c.ShowOtherMonthDate != nil {
		p.ShowOtherMonthDate = *c.ShowOtherMonthDate
	}
	if c.PreventFocusStyleForTouchAndClick != nil {
		p.PreventFocusStyleForTouchAndClick = *c.PreventFocusStyleForTouchAndClick
	}
	switch mode {
	case binding.ControlledValue:
		p.Value = value
		p.Controlled = true
	case binding.ControlledLink:
		p.ValueLink = &binding.Link{Value: value, RequestChange: requestChange}
	}
	return p, nil
}
