// Command datepicker renders, replays and interactively drives a date
// picker from the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"

	"github.com/comalice/datepickerx"
	"github.com/comalice/datepickerx/datekey"
	"github.com/comalice/datepickerx/internal/config"
	"github.com/comalice/datepickerx/locale"
)

var cmdSet *subcmd.CommandSet

// CommonFlags are accepted by every command that builds a picker.
type CommonFlags struct {
	cmdutil.LoggingFlags
	Config     string `subcmd:"config,,'picker configuration file (YAML)'"`
	Locale     string `subcmd:"locale,,'locale id, overrides the configuration'"`
	LocaleFile string `subcmd:"locale-file,,'additional locale table (YAML)'"`
	Month      int    `subcmd:"month,0,'month to display (1-12), overrides the configuration'"`
	Year       int    `subcmd:"year,0,'year to display, overrides the configuration'"`
	Today      string `subcmd:"today,,'date to treat as today (YYYY-MM-DD)'"`
}

func init() {
	showFlagSet := subcmd.NewFlagSet()
	showFlagSet.MustRegisterFlagStruct(&showFlags{}, nil, nil)
	replayFlagSet := subcmd.NewFlagSet()
	replayFlagSet.MustRegisterFlagStruct(&replayFlags{}, nil, nil)
	graphFlagSet := subcmd.NewFlagSet()
	graphFlagSet.MustRegisterFlagStruct(&graphFlags{}, nil, nil)
	tuiFlagSet := subcmd.NewFlagSet()
	tuiFlagSet.MustRegisterFlagStruct(&tuiFlags{}, nil, nil)
	localesFlagSet := subcmd.NewFlagSet()
	localesFlagSet.MustRegisterFlagStruct(&localesFlags{}, nil, nil)

	showCmd := subcmd.NewCommand("show", showFlagSet, show, subcmd.WithoutArguments())
	showCmd.Document("render the displayed month as text")

	replayCmd := subcmd.NewCommand("replay", replayFlagSet, replay, subcmd.ExactlyNumArguments(1))
	replayCmd.Document("apply an event script and print the resulting state and notifications", "<script-file>")

	graphCmd := subcmd.NewCommand("graph", graphFlagSet, graph, subcmd.WithoutArguments())
	graphCmd.Document("print the focus/press state machine in Graphviz DOT format")

	tuiCmd := subcmd.NewCommand("tui", tuiFlagSet, runTUI, subcmd.WithoutArguments())
	tuiCmd.Document("run an interactive picker in the terminal")

	localesCmd := subcmd.NewCommand("locales", localesFlagSet, locales, subcmd.WithoutArguments())
	localesCmd.Document("list the known locales")

	cmdSet = subcmd.NewCommandSet(graphCmd, localesCmd, replayCmd, showCmd, tuiCmd)
	cmdSet.Document("datepicker drives a calendar date picker from the command line")
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}

// withLogger returns ctx carrying the logger configured by the flags and a
// function that closes it.
func (c *CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := c.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

func (c *CommonFlags) localeProvider() (*locale.Provider, error) {
	if c.LocaleFile == "" {
		return locale.Default(), nil
	}
	f, err := os.Open(c.LocaleFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	extra, err := locale.LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.LocaleFile, err)
	}
	return locale.NewProvider(locale.Builtin(), extra), nil
}

func (c *CommonFlags) clock() (func() time.Time, error) {
	if c.Today == "" {
		return time.Now, nil
	}
	d, err := config.ParseDate(c.Today)
	if err != nil {
		return nil, fmt.Errorf("--today: %w", err)
	}
	t := datekey.ToTime(*d, time.Local).Add(12 * time.Hour)
	return func() time.Time { return t }, nil
}

// props builds picker props from the configuration file and the flag
// overrides. In linked mode requestChange receives change requests.
func (c *CommonFlags) props(requestChange func(*datetime.CalendarDate)) (datepickerx.Props, error) {
	var cfg config.Config
	if c.Config != "" {
		var err error
		if cfg, err = config.ParseFile(c.Config); err != nil {
			return datepickerx.Props{}, err
		}
	}
	if c.Locale != "" {
		cfg.Locale = c.Locale
	}
	if c.Month != 0 {
		cfg.Month = c.Month
	}
	if c.Year != 0 {
		cfg.Year = c.Year
	}
	return cfg.Props(requestChange)
}

// newPicker builds a picker from the flags.
func (c *CommonFlags) newPicker(ctx context.Context, requestChange func(*datetime.CalendarDate), opts ...datepickerx.Option) (*datepickerx.Picker, error) {
	props, err := c.props(requestChange)
	if err != nil {
		return nil, err
	}
	lp, err := c.localeProvider()
	if err != nil {
		return nil, err
	}
	now, err := c.clock()
	if err != nil {
		return nil, err
	}
	opts = append([]datepickerx.Option{datepickerx.WithClock(now), datepickerx.WithLocaleProvider(lp)}, opts...)
	return datepickerx.New(ctx, props, opts...), nil
}
