package script

import (
	"context"

	"cloudeng.io/errors"

	"github.com/comalice/datepickerx"
)

// ChannelSource is a stream of events backed by a channel.
type ChannelSource struct {
	ch chan Event
}

// NewChannelSource returns a ChannelSource reading from ch. The producer
// closes ch when it is done.
func NewChannelSource(ch chan Event) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Events returns the receive-only channel for events.
func (s *ChannelSource) Events() <-chan Event {
	return s.ch
}

// Feed returns a ChannelSource that delivers events and then closes. It
// stops early when ctx is canceled.
func Feed(ctx context.Context, events []Event) *ChannelSource {
	ch := make(chan Event)
	go func() {
		defer close(ch)
		for _, ev := range events {
			select {
			case ch <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()
	return NewChannelSource(ch)
}

// Run applies events from src to p until src closes or ctx is canceled.
// Errors from individual events are collected; cancellation is returned
// along with them.
func Run(ctx context.Context, p *datepickerx.Picker, src *ChannelSource) error {
	var errs errors.M
	for {
		select {
		case ev, ok := <-src.Events():
			if !ok {
				return errs.Err()
			}
			if err := Apply(p, ev); err != nil {
				errs.Append(err)
			}
		case <-ctx.Done():
			errs.Append(ctx.Err())
			return errs.Err()
		}
	}
}
