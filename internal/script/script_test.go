package script

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/comalice/datepickerx"
	"github.com/comalice/datepickerx/datekey"
)

func fixedNow() time.Time {
	return time.Date(2024, time.June, 10, 9, 30, 0, 0, time.UTC)
}

func march2024(t *testing.T) *datepickerx.Picker {
	t.Helper()
	props := datepickerx.DefaultProps()
	props.DefaultMonth = time.March
	props.DefaultYear = 2024
	return datepickerx.New(context.Background(), props, datepickerx.WithClock(fixedNow))
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		in   string
		want Event
	}{
		{"focus", Event{Op: Focus}},
		{"BLUR", Event{Op: Blur}},
		{"press touch", Event{Op: Press, Pointer: datepickerx.SingleTouch()}},
		{"release button=2", Event{Op: Release, Pointer: datepickerx.MouseButton(2)}},
		{"cancel", Event{Op: CancelPress}},
		{"cancel 2024-3-5", Event{Op: DayCancel, Day: "2024-3-5"}},
		{"key PageUp", Event{Op: KeyPress, Key: datepickerx.KeyPageUp}},
		{"key left", Event{Op: KeyPress, Key: datepickerx.KeyArrowLeft}},
		{"key space", Event{Op: KeyPress, Key: datepickerx.KeySpace}},
		{"down 2024-3-5 touches=2", Event{Op: DayDown, Day: "2024-3-5", Pointer: datepickerx.Pointer{Kind: datepickerx.Touch, Touches: 2}}},
		{"up 2024-3-5", Event{Op: DayUp, Day: "2024-3-5", Pointer: datepickerx.MouseButton(0)}},
		{"enter 2024-3-5", Event{Op: DayEnter, Day: "2024-3-5"}},
		{"leave 2024-3-5", Event{Op: DayLeave, Day: "2024-3-5"}},
		{"select 2024-2-29", Event{Op: Select, Day: "2024-2-29"}},
		{"clear", Event{Op: Clear}},
		{"prev", Event{Op: Prev}},
		{"next", Event{Op: Next}},
	}
	for _, tc := range tests {
		got, err := ParseLine(tc.in)
		if err != nil {
			t.Errorf("ParseLine(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseLine(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParse_CollectsErrors(t *testing.T) {
	events, err := ParseString(`
# comment
focus
jump
key Tab
down 2024-03-05
enter
prev
select 2023-2-29
up 2024-3-5 pen
`)
	if err == nil {
		t.Fatal("expected errors")
	}
	if len(events) != 2 {
		t.Fatalf("got %d good events, want 2: %v", len(events), events)
	}
	if events[0].Line != 3 || events[1].Line != 8 {
		t.Errorf("line numbers = %d, %d", events[0].Line, events[1].Line)
	}
	msg := err.Error()
	for _, want := range []string{
		`line 4: "jump"`,
		`line 5: "key Tab"`,
		`line 6: "down 2024-03-05"`,
		`line 7: "enter"`,
		`line 9: "select 2023-2-29"`,
		`line 10: "up 2024-3-5 pen"`,
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q does not mention %q", msg, want)
		}
	}
}

func TestApplyAll_KeyboardSelection(t *testing.T) {
	p := march2024(t)
	events, err := ParseString("focus\nkey right\nkey Enter\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := ApplyAll(p, events); err != nil {
		t.Fatal(err)
	}
	st := p.State()
	if st.SelectedDate == nil || datekey.Encode(*st.SelectedDate) != "2024-3-2" {
		t.Errorf("selected = %v, want 2024-3-2", st.SelectedDate)
	}
	if st.FocusedDateKey != "2024-3-2" || !st.IsFocused {
		t.Errorf("focus = %q (%v)", st.FocusedDateKey, st.IsFocused)
	}
}

func TestApplyAll_PointerAndClear(t *testing.T) {
	p := march2024(t)
	events, err := ParseString(`
enter 2024-3-20
down 2024-3-20
up 2024-3-20
next
clear
`)
	if err != nil {
		t.Fatal(err)
	}
	if err := ApplyAll(p, events); err != nil {
		t.Fatal(err)
	}
	st := p.State()
	if st.SelectedDate != nil {
		t.Errorf("selection not cleared: %v", st.SelectedDate)
	}
	if st.DisplayedMonth != time.April || st.DisplayedYear != 2024 {
		t.Errorf("displayed = %v %d, want April 2024", st.DisplayedMonth, st.DisplayedYear)
	}
}

func TestRun_FromChannel(t *testing.T) {
	p := march2024(t)
	events, err := ParseString("select 2024-3-9\nprev\nprev\n")
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := Run(ctx, p, Feed(ctx, events)); err != nil {
		t.Fatal(err)
	}
	st := p.State()
	if st.DisplayedMonth != time.January {
		t.Errorf("displayed month = %v, want January", st.DisplayedMonth)
	}
	if datekey.Encode(*st.SelectedDate) != "2024-3-9" {
		t.Errorf("selected = %v", st.SelectedDate)
	}
}

func TestRun_Canceled(t *testing.T) {
	p := march2024(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := NewChannelSource(make(chan Event))
	if err := Run(ctx, p, src); err == nil || !strings.Contains(err.Error(), "context canceled") {
		t.Errorf("Run on canceled context = %v", err)
	}
}
