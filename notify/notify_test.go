package notify

import (
	"testing"
	"time"

	"cloudeng.io/datetime"
)

func TestChannelPublisher_Delivery(t *testing.T) {
	ch := make(chan Notification, 10)
	p := NewChannelPublisher(ch)

	d := datetime.CalendarDate{Year: 2024, Month: 3, Day: 15}
	p.Publish(Notification{Kind: SelectionChanged, PickerID: "p1", Date: &d})

	select {
	case got := <-ch:
		if got.Kind != SelectionChanged {
			t.Errorf("Kind mismatch: got %v, want %v", got.Kind, SelectionChanged)
		}
		if got.PickerID != "p1" {
			t.Errorf("PickerID mismatch: got %q, want %q", got.PickerID, "p1")
		}
		if got.String() != "selection-changed 2024-3-15" {
			t.Errorf("String() = %q", got.String())
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("No notification delivered")
	}
}

func TestChannelPublisher_BackpressureDrop(t *testing.T) {
	ch := make(chan Notification, 1)
	p := NewChannelPublisher(ch)
	p.Publish(Notification{Kind: MonthChanged, Month: time.April, Year: 2024})
	p.Publish(Notification{Kind: MonthChanged, Month: time.May, Year: 2024})

	if got := p.Dropped(); got != 1 {
		t.Errorf("Dropped() = %d, want 1", got)
	}
	if got := <-ch; got.Month != time.April {
		t.Errorf("kept %v, want the first notification", got)
	}
}

func TestChannelPublisher_Close(t *testing.T) {
	ch := make(chan Notification, 1)
	p := NewChannelPublisher(ch)
	if err := p.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if _, ok := <-ch; ok {
		t.Error("channel still open")
	}
}

func TestMulti(t *testing.T) {
	var a, b []Notification
	m := Multi{
		FuncPublisher(func(n Notification) { a = append(a, n) }),
		nil,
		FuncPublisher(func(n Notification) { b = append(b, n) }),
	}
	m.Publish(Notification{Kind: SelectionChanged})
	if len(a) != 1 || len(b) != 1 {
		t.Errorf("got %d and %d notifications, want 1 each", len(a), len(b))
	}
	if got := a[0].String(); got != "selection-changed <none>" {
		t.Errorf("String() = %q", got)
	}
	if got := (Notification{Kind: MonthChanged, Month: time.January, Year: 2025}).String(); got != "month-changed 1 2025" {
		t.Errorf("String() = %q", got)
	}
}
