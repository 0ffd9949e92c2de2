package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cloudeng.io/datetime"

	"github.com/comalice/datepickerx/binding"
	"github.com/comalice/datepickerx/datekey"
)

const sample = `
locale: nl
mode: controlled
value: 2024-03-15
min: 2024-3-1
max: 2024-03-28
default_month: 3
default_year: 2024
read_only: true
show_other_month_date: false
`

func TestParse_Sample(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	p, err := cfg.Props(nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Locale != "nl" || !p.ReadOnly || p.Disabled {
		t.Errorf("props = %+v", p)
	}
	if !p.Controlled || p.Value == nil || datekey.Encode(*p.Value) != "2024-3-15" {
		t.Errorf("value = %v controlled=%v", p.Value, p.Controlled)
	}
	if datekey.Encode(*p.Min) != "2024-3-1" || datekey.Encode(*p.Max) != "2024-3-28" {
		t.Errorf("range = %v..%v", p.Min, p.Max)
	}
	if p.DefaultMonth != time.March || p.DefaultYear != 2024 {
		t.Errorf("default month = %v %v", p.DefaultMonth, p.DefaultYear)
	}
	if p.ShowOtherMonthDate {
		t.Error("show_other_month_date: false was ignored")
	}
	if !p.PreventFocusStyleForTouchAndClick {
		t.Error("absent prevent_focus_style_for_touch_and_click should default to true")
	}
}

func TestProps_Linked(t *testing.T) {
	cfg, err := Parse([]byte("mode: linked\nvalue: 2024-1-31\n"))
	if err != nil {
		t.Fatal(err)
	}
	var got *datetime.CalendarDate
	p, err := cfg.Props(func(d *datetime.CalendarDate) { got = d })
	if err != nil {
		t.Fatal(err)
	}
	if p.ValueLink == nil || p.Value != nil {
		t.Fatalf("linked props = %+v", p)
	}
	src := binding.Source{Link: p.ValueLink}
	b := binding.Resolve(src)
	if b.Mode() != binding.ControlledLink {
		t.Fatalf("mode = %v", b.Mode())
	}
	want := datetime.CalendarDate{Year: 2024, Month: 2, Day: 1}
	b.Write(&want)
	if got == nil || *got != want {
		t.Errorf("RequestChange got %v, want %v", got, want)
	}
}

func TestProps_Uncontrolled(t *testing.T) {
	cfg, err := Parse([]byte("default_value: 2024-02-29\n"))
	if err != nil {
		t.Fatal(err)
	}
	p, err := cfg.Props(nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Controlled || p.ValueLink != nil || p.Value != nil {
		t.Errorf("uncontrolled props = %+v", p)
	}
	if p.DefaultValue == nil || datekey.Encode(*p.DefaultValue) != "2024-2-29" {
		t.Errorf("default value = %v", p.DefaultValue)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg, err := Parse([]byte(`
mode: sideways
min: 2024-03-20
max: 2024-03-01
value: 2023-02-29
month: 13
default_month: -1
`))
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{
		`unknown mode "sideways"`,
		"min 2024-3-20 is after max 2024-3-1",
		"value:",
		"month: 13",
		"default_month: -1",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
	if _, err := cfg.Props(nil); err == nil {
		t.Error("Props accepted an invalid config")
	}
}

func TestValidate_ValueWithoutMode(t *testing.T) {
	if _, err := Parse([]byte("value: 2024-03-15\n")); err == nil {
		t.Error("value without mode should be rejected")
	}
}

func TestParse_BadYAML(t *testing.T) {
	if _, err := Parse([]byte("month: [1\n")); err == nil {
		t.Error("expected a YAML error")
	}
	if _, err := Parse([]byte("month: march\n")); err == nil {
		t.Error("expected a type error")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "picker.yaml")
	if err := os.WriteFile(file, []byte(sample), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := ParseFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Locale != "nl" {
		t.Errorf("locale = %q", cfg.Locale)
	}
	if _, err := ParseFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestParseDate(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"2024-03-05", "2024-3-5"},
		{"2024-3-5", "2024-3-5"},
		{"2000-02-29", "2000-2-29"},
	} {
		d, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q): %v", tc.in, err)
			continue
		}
		if got := string(datekey.Encode(*d)); got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if d, err := ParseDate(""); d != nil || err != nil {
		t.Errorf("ParseDate(\"\") = %v, %v", d, err)
	}
	for _, bad := range []string{"2024/03/05", "1900-2-29", "tomorrow"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded", bad)
		}
	}
}
