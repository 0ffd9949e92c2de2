// Package testutil drives pickers from scripted events so the same
// scenario can be checked both synchronously and through an event stream.
package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/comalice/datepickerx"
	"github.com/comalice/datepickerx/internal/script"
	"github.com/comalice/datepickerx/notify"
)

// PickerAdapter provides a common interface over the ways a picker can be
// driven.
type PickerAdapter interface {
	Start(ctx context.Context) error
	Stop() error
	Send(line string) error
	State() datepickerx.CalendarState
	Notifications() []string
	WaitForStability(timeout time.Duration) error
}

type recorder struct {
	mu  sync.Mutex
	log []string
}

func (r *recorder) Publish(n notify.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log = append(r.log, n.String())
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.log...)
}

// newRecordedPicker creates a picker whose notifications go to rec. The
// recorder is installed before opts, so an explicit WithPublisher in opts
// replaces it.
func newRecordedPicker(props datepickerx.Props, rec *recorder, opts []datepickerx.Option) *datepickerx.Picker {
	all := append([]datepickerx.Option{datepickerx.WithPublisher(rec)}, opts...)
	return datepickerx.New(context.Background(), props, all...)
}

// DirectAdapter applies each event as soon as it is sent.
type DirectAdapter struct {
	p   *datepickerx.Picker
	rec *recorder
}

// NewDirectAdapter creates a DirectAdapter for a new picker.
func NewDirectAdapter(props datepickerx.Props, opts ...datepickerx.Option) *DirectAdapter {
	rec := &recorder{}
	return &DirectAdapter{p: newRecordedPicker(props, rec, opts), rec: rec}
}

func (a *DirectAdapter) Start(ctx context.Context) error { return nil }

func (a *DirectAdapter) Stop() error { return nil }

func (a *DirectAdapter) Send(line string) error {
	ev, err := script.ParseLine(line)
	if err != nil {
		return err
	}
	return script.Apply(a.p, ev)
}

func (a *DirectAdapter) State() datepickerx.CalendarState { return a.p.State() }

func (a *DirectAdapter) Notifications() []string { return a.rec.snapshot() }

func (a *DirectAdapter) WaitForStability(timeout time.Duration) error { return nil }

// Picker returns the driven picker.
func (a *DirectAdapter) Picker() *datepickerx.Picker { return a.p }

// StreamAdapter feeds events to the picker from a separate goroutine
// through a script.ChannelSource.
type StreamAdapter struct {
	p   *datepickerx.Picker
	rec *recorder

	mu      sync.Mutex
	cond    *sync.Cond
	sent    int
	applied int
	errs    []error

	ch     chan script.Event
	cancel context.CancelFunc
	done   chan struct{}
}

// NewStreamAdapter creates a StreamAdapter for a new picker.
func NewStreamAdapter(props datepickerx.Props, opts ...datepickerx.Option) *StreamAdapter {
	rec := &recorder{}
	a := &StreamAdapter{
		p:    newRecordedPicker(props, rec, opts),
		rec:  rec,
		ch:   make(chan script.Event, 16),
		done: make(chan struct{}),
	}
	a.cond = sync.NewCond(&a.mu)
	return a
}

func (a *StreamAdapter) Start(ctx context.Context) error {
	ctx, a.cancel = context.WithCancel(ctx)
	src := script.NewChannelSource(a.ch)
	go func() {
		defer close(a.done)
		for {
			select {
			case ev, ok := <-src.Events():
				if !ok {
					return
				}
				a.mu.Lock()
				if err := script.Apply(a.p, ev); err != nil {
					a.errs = append(a.errs, err)
				}
				a.applied++
				a.cond.Broadcast()
				a.mu.Unlock()
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (a *StreamAdapter) Stop() error {
	if a.cancel != nil {
		a.cancel()
		<-a.done
	}
	return nil
}

// Send parses line and queues it. Errors from applying the event are
// reported by WaitForStability.
func (a *StreamAdapter) Send(line string) error {
	ev, err := script.ParseLine(line)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.sent++
	a.mu.Unlock()
	a.ch <- ev
	return nil
}

func (a *StreamAdapter) State() datepickerx.CalendarState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.p.State()
}

func (a *StreamAdapter) Notifications() []string { return a.rec.snapshot() }

// WaitForStability waits until every sent event has been applied and
// returns the first error any of them produced.
func (a *StreamAdapter) WaitForStability(timeout time.Duration) error {
	timer := time.AfterFunc(timeout, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.cond.Broadcast()
	})
	defer timer.Stop()
	deadline := time.Now().Add(timeout)
	a.mu.Lock()
	defer a.mu.Unlock()
	for a.applied < a.sent {
		if !time.Now().Before(deadline) {
			return fmt.Errorf("timed out with %d of %d events applied", a.applied, a.sent)
		}
		a.cond.Wait()
	}
	if len(a.errs) > 0 {
		return a.errs[0]
	}
	return nil
}

// RunLines sends each line to a and waits for them to be applied.
func RunLines(a PickerAdapter, timeout time.Duration, lines ...string) error {
	for _, l := range lines {
		if err := a.Send(l); err != nil {
			return fmt.Errorf("%q: %w", l, err)
		}
	}
	return a.WaitForStability(timeout)
}
