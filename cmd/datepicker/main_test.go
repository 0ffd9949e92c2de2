package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := out
	out = &buf
	t.Cleanup(func() { out = prev })
	return &buf
}

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}
	return file
}

func common(cfg string) CommonFlags {
	return CommonFlags{Config: cfg, Today: "2024-06-10"}
}

func TestShow(t *testing.T) {
	buf := capture(t)
	cfg := writeFile(t, "picker.yaml", "locale: nl\ndefault_value: 2024-03-15\n")
	if err := show(context.Background(), &showFlags{CommonFlags: common(cfg)}, nil); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"maart 2024", "  ma", "ZO", " 15*"} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}

func TestShow_FlagOverrides(t *testing.T) {
	buf := capture(t)
	fv := &showFlags{CommonFlags: common("")}
	fv.Month, fv.Year, fv.Locale = 2, 2025, "fr"
	if err := show(context.Background(), fv, nil); err != nil {
		t.Fatal(err)
	}
	if first := strings.SplitN(buf.String(), "\n", 2)[0]; !strings.Contains(first, "2025") {
		t.Errorf("heading = %q", first)
	}
}

func TestShow_BadConfig(t *testing.T) {
	capture(t)
	cfg := writeFile(t, "picker.yaml", "mode: sideways\n")
	if err := show(context.Background(), &showFlags{CommonFlags: common(cfg)}, nil); err == nil {
		t.Error("expected a configuration error")
	}
}

func TestReplay(t *testing.T) {
	buf := capture(t)
	cfg := writeFile(t, "picker.yaml", "default_month: 3\ndefault_year: 2024\n")
	scr := writeFile(t, "events.txt", "focus\nkey right\nkey enter\nkey pgdown\n")
	if err := replay(context.Background(), &replayFlags{CommonFlags: common(cfg)}, []string{scr}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"-> selection-changed 2024-3-2",
		"-> month-changed 4 2024",
		`final: wrapper=focused month=2024-4 selected=2024-3-2 focused="2024-4-2"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}

func TestReplay_Linked(t *testing.T) {
	buf := capture(t)
	cfg := writeFile(t, "picker.yaml", "mode: linked\nvalue: 2024-03-15\n")
	scr := writeFile(t, "events.txt", "select 2024-3-20\n")
	if err := replay(context.Background(), &replayFlags{CommonFlags: common(cfg)}, []string{scr}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "change requested: 2024-3-20") {
		t.Errorf("missing change request:\n%s", got)
	}
	if !strings.Contains(got, "selected=2024-3-15") {
		t.Errorf("linked selection changed locally:\n%s", got)
	}
}

func TestReplay_BadScript(t *testing.T) {
	capture(t)
	scr := writeFile(t, "events.txt", "focus\nwobble\n")
	err := replay(context.Background(), &replayFlags{CommonFlags: common("")}, []string{scr})
	if err == nil || !strings.Contains(err.Error(), "wobble") {
		t.Errorf("replay error = %v", err)
	}
}

func TestGraph(t *testing.T) {
	buf := capture(t)
	if err := graph(context.Background(), &graphFlags{CommonFlags: common("")}, nil); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "digraph Picker {") || !strings.Contains(got, `"focused+pressed"`) {
		t.Errorf("unexpected DOT output:\n%s", got)
	}
}

func TestLocales(t *testing.T) {
	buf := capture(t)
	extra := writeFile(t, "extra.yaml", "ka:\n  firstDay: 1\n")
	if err := locales(context.Background(), &localesFlags{LocaleFile: extra}, nil); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"ar     rtl", "ka     ltr first=Monday", "zh-CN"} {
		if !strings.Contains(got, want) {
			t.Errorf("output does not contain %q:\n%s", want, got)
		}
	}
}
