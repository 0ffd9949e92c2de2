package tui

import (
	"context"
	"io"
	"time"

	"cloudeng.io/logging/ctxlog"
	tea "github.com/charmbracelet/bubbletea"
)

// RunOptions controls Run.
type RunOptions struct {
	Location  *time.Location
	AltScreen bool
	Input     io.Reader
	Output    io.Writer
}

// Run shows m until the user quits or ctx is canceled.
func Run(ctx context.Context, m *Model, opts RunOptions) error {
	popts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithMouseCellMotion()}
	if opts.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	if opts.Input != nil {
		popts = append(popts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		popts = append(popts, tea.WithOutput(opts.Output))
	}
	prog := tea.NewProgram(m, popts...)

	refresh, err := NewRefresher(opts.Location, prog.Send)
	if err != nil {
		return err
	}
	refresh.Start()
	defer func() { <-refresh.Stop().Done() }()

	log := ctxlog.Logger(ctx)
	log.Debug("tui started", "picker", m.Picker().ID(), "next_refresh", refresh.Next())
	_, err = prog.Run()
	m.Close()
	log.Debug("tui stopped", "picker", m.Picker().ID(), "error", err)
	return err
}
