// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/comalice/datepickerx"
	"github.com/comalice/datepickerx/internal/config"
)

// today is fixed so that runs are comparable.
func today() time.Time {
	return time.Date(2024, time.June, 10, 12, 0, 0, 0, time.UTC)
}

// NewPicker creates a picker for March 2024 with an optional selection.
func NewPicker(locale string, opts ...datepickerx.Option) *datepickerx.Picker {
	props := datepickerx.DefaultProps()
	props.Locale = locale
	props.DefaultMonth = time.March
	props.DefaultYear = 2024
	opts = append([]datepickerx.Option{datepickerx.WithClock(today)}, opts...)
	return datepickerx.New(context.Background(), props, opts...)
}

// GenNavigationScript creates a script of n keyboard events that walks
// the focus around, pages months and toggles selections.
func GenNavigationScript(n int) string {
	keys := []string{"right", "down", "left", "pgdown", "space", "up", "pgup", "enter", "home", "end"}
	var b strings.Builder
	b.WriteString("focus\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "key %s\n", keys[i%len(keys)])
	}
	return b.String()
}

// GenPointerScript creates a script of n hover/click sequences across the
// days of March 2024.
func GenPointerScript(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		k := fmt.Sprintf("2024-3-%d", i%31+1)
		fmt.Fprintf(&b, "enter %s\ndown %s\nup %s\nleave %s\n", k, k, k, k)
	}
	return b.String()
}

// GenConfigYAML generates a picker configuration document.
func GenConfigYAML(locale string, withRange bool) []byte {
	cfg := config.Config{
		Locale:       locale,
		Mode:         "uncontrolled",
		DefaultValue: "2024-03-15",
		DefaultMonth: 3,
		DefaultYear:  2024,
	}
	if withRange {
		cfg.Min, cfg.Max = "2024-01-01", "2024-12-31"
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		panic(err)
	}
	return data
}
