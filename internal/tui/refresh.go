package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robfig/cron/v3"
)

// MidnightSpec is the cron schedule on which the view is refreshed.
const MidnightSpec = "0 0 * * *"

// Refresher sends TodayChangedMsg at every midnight in its location.
type Refresher struct {
	cron *cron.Cron
}

// NewRefresher schedules send(TodayChangedMsg{}) for midnight in loc.
// Typically send is a tea.Program's Send method.
func NewRefresher(loc *time.Location, send func(tea.Msg)) (*Refresher, error) {
	if loc == nil {
		loc = time.Local
	}
	c := cron.New(cron.WithLocation(loc))
	if _, err := c.AddFunc(MidnightSpec, func() { send(TodayChangedMsg{}) }); err != nil {
		return nil, fmt.Errorf("add midnight refresh: %w", err)
	}
	return &Refresher{cron: c}, nil
}

// Start starts the scheduler in its own goroutine.
func (r *Refresher) Start() {
	r.cron.Start()
}

// Stop stops the scheduler; the returned context is done once a running
// refresh has finished.
func (r *Refresher) Stop() context.Context {
	return r.cron.Stop()
}

// Next returns the time of the next scheduled refresh.
func (r *Refresher) Next() time.Time {
	entries := r.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if !entries[0].Next.IsZero() {
		return entries[0].Next
	}
	return entries[0].Schedule.Next(time.Now().In(r.cron.Location()))
}
