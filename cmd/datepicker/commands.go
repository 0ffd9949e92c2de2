package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"

	"github.com/comalice/datepickerx"
	"github.com/comalice/datepickerx/datekey"
	"github.com/comalice/datepickerx/internal/script"
	"github.com/comalice/datepickerx/internal/tui"
	"github.com/comalice/datepickerx/locale"
	"github.com/comalice/datepickerx/notify"
	"github.com/comalice/datepickerx/render"
)

type showFlags struct {
	CommonFlags
}

type replayFlags struct {
	CommonFlags
	Verbose bool `subcmd:"verbose,false,'print the state after every event'"`
}

type graphFlags struct {
	CommonFlags
}

type tuiFlags struct {
	CommonFlags
	AltScreen  bool   `subcmd:"alt-screen,true,'use the alternate screen buffer'"`
	HoverColor string `subcmd:"hover-color,,'foreground color for the hovered day'"`
	Help       bool   `subcmd:"help-line,true,'show the key reference'"`
}

type localesFlags struct {
	LocaleFile string `subcmd:"locale-file,,'additional locale table (YAML)'"`
}

var out io.Writer = os.Stdout

func show(ctx context.Context, values any, args []string) error {
	fv := values.(*showFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	p, err := fv.newPicker(ctx, nil)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, render.Text(p))
	return err
}

func replay(ctx context.Context, values any, args []string) error {
	fv := values.(*replayFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	events, err := script.Parse(f)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	pub := notify.FuncPublisher(func(n notify.Notification) {
		fmt.Fprintf(out, "  -> %v\n", n)
	})
	requestChange := func(d *datetime.CalendarDate) {
		fmt.Fprintf(out, "  -> change requested: %s\n", formatDate(d))
	}
	p, err := fv.newPicker(ctx, requestChange, datepickerx.WithPublisher(pub))
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Info("replaying", "file", args[0], "events", len(events), "picker", p.ID())

	for _, ev := range events {
		fmt.Fprintf(out, "%d: %v\n", ev.Line, ev)
		if err := script.Apply(p, ev); err != nil {
			fmt.Fprintf(out, "  !! %v\n", err)
		}
		if fv.Verbose {
			fmt.Fprintf(out, "  %s\n", formatState(p))
		}
	}
	fmt.Fprintf(out, "final: %s\n", formatState(p))
	_, err = io.WriteString(out, render.Text(p))
	return err
}

func graph(ctx context.Context, values any, args []string) error {
	fv := values.(*graphFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	p, err := fv.newPicker(ctx, nil)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, render.ExportDOT(p.Machine()))
	return err
}

func runTUI(ctx context.Context, values any, args []string) error {
	fv := values.(*tuiFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	p, err := fv.newPicker(ctx, nil)
	if err != nil {
		return err
	}
	opts := []tui.Option{tui.WithHelp(fv.Help)}
	if fv.HoverColor != "" {
		reg := tui.NewRegistry(tui.DefaultStyles().Day)
		opts = append(opts, tui.WithHoverStyle(reg, render.Style{Foreground: fv.HoverColor, Underline: true}))
	}
	return tui.Run(ctx, tui.New(p, opts...), tui.RunOptions{
		Location:  time.Local,
		AltScreen: fv.AltScreen,
	})
}

func locales(ctx context.Context, values any, args []string) error {
	fv := values.(*localesFlags)
	lp := locale.Default()
	if fv.LocaleFile != "" {
		var err error
		if lp, err = (&CommonFlags{LocaleFile: fv.LocaleFile}).localeProvider(); err != nil {
			return err
		}
	}
	for _, id := range lp.Known() {
		d := lp.Resolve(id)
		names := d.DayNames()
		dir := "ltr"
		if d.IsRTL {
			dir = "rtl"
		}
		fmt.Fprintf(out, "%-6s %-3s first=%-9v weekend=%-9v %s\n",
			id, dir, d.FirstDay, d.WeekEnd, strings.Join(names[:], " "))
	}
	return nil
}

func formatDate(d *datetime.CalendarDate) string {
	if d == nil {
		return "<none>"
	}
	return string(datekey.Encode(*d))
}

func formatState(p *datepickerx.Picker) string {
	st := p.State()
	return fmt.Sprintf("wrapper=%s month=%d-%d selected=%s focused=%q active=%q hovered=%q",
		p.WrapperState(), st.DisplayedYear, int(st.DisplayedMonth), formatDate(st.SelectedDate),
		st.FocusedDateKey, st.ActiveDay, st.LastHoveredDay)
}
