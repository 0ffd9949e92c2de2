// Package notify publishes picker notifications to interested parties
// outside the host's callbacks.
package notify

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Kind identifies a notification.
type Kind int

const (
	SelectionChanged Kind = iota + 1
	MonthChanged
)

func (k Kind) String() string {
	switch k {
	case SelectionChanged:
		return "selection-changed"
	case MonthChanged:
		return "month-changed"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Notification is a single outward event. Date is set (possibly to nil)
// for SelectionChanged; Month and Year are set for MonthChanged.
type Notification struct {
	Kind     Kind
	PickerID string
	Date     *datetime.CalendarDate
	Month    time.Month
	Year     int
}

func (n Notification) String() string {
	switch n.Kind {
	case SelectionChanged:
		if n.Date == nil {
			return "selection-changed <none>"
		}
		return fmt.Sprintf("selection-changed %d-%d-%d", n.Date.Year, int(n.Date.Month), n.Date.Day)
	case MonthChanged:
		return fmt.Sprintf("month-changed %d %d", int(n.Month), n.Year)
	}
	return n.Kind.String()
}

// Publisher receives notifications synchronously from the picker.
// Implementations must not block.
type Publisher interface {
	Publish(Notification)
}

// FuncPublisher adapts a function to Publisher.
type FuncPublisher func(Notification)

func (f FuncPublisher) Publish(n Notification) { f(n) }

// ChannelPublisher forwards notifications to a Go channel. Publish never
// blocks: when the channel is full the notification is dropped and
// counted.
type ChannelPublisher struct {
	ch      chan<- Notification
	dropped int
}

// NewChannelPublisher creates a ChannelPublisher with the given output channel.
func NewChannelPublisher(ch chan<- Notification) *ChannelPublisher {
	return &ChannelPublisher{ch: ch}
}

func (p *ChannelPublisher) Publish(n Notification) {
	select {
	case p.ch <- n:
	default:
		p.dropped++
	}
}

// Dropped returns the number of notifications lost to backpressure.
func (p *ChannelPublisher) Dropped() int {
	return p.dropped
}

func (p *ChannelPublisher) Close() error {
	close(p.ch)
	return nil
}

// Multi publishes to each non-nil publisher in order.
type Multi []Publisher

func (m Multi) Publish(n Notification) {
	for _, p := range m {
		if p != nil {
			p.Publish(n)
		}
	}
}
