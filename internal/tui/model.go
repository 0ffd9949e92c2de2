// Package tui is an interactive terminal front end for a picker built on
// bubbletea and lipgloss. Keys are passed to Picker.HandleKey, mouse
// events become day pointer events and a cron job redraws the view at
// midnight so the today marker moves.
package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/comalice/datepickerx"
	"github.com/comalice/datepickerx/datekey"
	"github.com/comalice/datepickerx/render"
)

const (
	cellWidth = 4
	// Rows above the first week: title and day names.
	gridTop = 2
)

// TodayChangedMsg is sent when the calendar day rolls over.
type TodayChangedMsg struct{}

// Model is the bubbletea model for a single picker.
type Model struct {
	p        *datepickerx.Picker
	styles   Styles
	registry *Registry
	hovered  datekey.Key
	help     bool
	quitting bool
}

// Option configures a Model.
type Option func(*Model)

// WithStyles replaces the default theme.
func WithStyles(s Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithHoverStyle registers a hover style for the picker in registry.
func WithHoverStyle(registry *Registry, rules render.Style) Option {
	return func(m *Model) {
		m.registry = registry
		registry.RegisterHoverStyle(m.p.ID(), rules)
	}
}

// WithHelp shows a key reference below the calendar.
func WithHelp(show bool) Option {
	return func(m *Model) { m.help = show }
}

// New returns a Model for p. The picker receives focus immediately so the
// keyboard works without a click.
func New(p *datepickerx.Picker, opts ...Option) *Model {
	m := &Model{p: p, styles: DefaultStyles()}
	for _, opt := range opts {
		opt(m)
	}
	p.FocusWrapper()
	return m
}

// Picker returns the driven picker.
func (m *Model) Picker() *datepickerx.Picker { return m.p }

// Close removes any hover style the model registered.
func (m *Model) Close() {
	if m.registry != nil {
		m.registry.Unregister(m.p.ID())
	}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case TodayChangedMsg:
		// Nothing to update; the redraw picks up the new date.
	}
	return m, nil
}

var keyMap = map[tea.KeyType]datepickerx.Key{
	tea.KeyUp:     datepickerx.KeyArrowUp,
	tea.KeyDown:   datepickerx.KeyArrowDown,
	tea.KeyLeft:   datepickerx.KeyArrowLeft,
	tea.KeyRight:  datepickerx.KeyArrowRight,
	tea.KeyPgUp:   datepickerx.KeyPageUp,
	tea.KeyPgDown: datepickerx.KeyPageDown,
	tea.KeyHome:   datepickerx.KeyHome,
	tea.KeyEnd:    datepickerx.KeyEnd,
	tea.KeyEnter:  datepickerx.KeyEnter,
	tea.KeySpace:  datepickerx.KeySpace,
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if k, ok := keyMap[msg.Type]; ok {
		m.p.HandleKey(k)
		return m, nil
	}
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case "[", "p":
		m.p.PrevMonth()
	case "]", "n":
		m.p.NextMonth()
	case "esc":
		m.p.BlurWrapper()
	case "tab":
		m.p.FocusWrapper()
	case "?":
		m.help = !m.help
	}
	return m, nil
}

func pointerFor(b tea.MouseButton) datepickerx.Pointer {
	switch b {
	case tea.MouseButtonMiddle:
		return datepickerx.MouseButton(1)
	case tea.MouseButtonRight:
		return datepickerx.MouseButton(2)
	}
	return datepickerx.MouseButton(0)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	k := m.dayAt(msg.X, msg.Y)
	if k != m.hovered {
		if m.hovered != "" {
			_ = m.p.DayPointerLeave(m.hovered)
		}
		if k != "" {
			_ = m.p.DayPointerEnter(k)
		}
		m.hovered = k
	}
	ptr := pointerFor(msg.Button)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			return
		}
		m.p.WrapperPointerDown(ptr)
		if k != "" {
			_ = m.p.DayPointerDown(k, ptr)
		}
	case tea.MouseActionRelease:
		if k != "" {
			_ = m.p.DayPointerUp(k, ptr)
		} else if a := m.p.State().ActiveDay; a != "" {
			_ = m.p.DayPointerCancel(a)
		}
		m.p.WrapperPointerUp(ptr)
	}
}

// dayAt maps a terminal cell to the day drawn there, or "" when no
// visible day is under it.
func (m *Model) dayAt(x, y int) datekey.Key {
	row, col := y-gridTop, x/cellWidth
	if x < 0 || col > 6 || row < 0 {
		return ""
	}
	weeks := m.p.Weeks()
	if row >= len(weeks) {
		return ""
	}
	d := weeks[row][col]
	if m.p.Day(d).Hidden {
		return ""
	}
	return datekey.Encode(d)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	title := m.styles.Title
	if m.p.FocusStyleVisible() {
		title = title.Underline(true)
	}
	b.WriteString(title.Render(m.p.MonthLabel()))
	b.WriteByte('\n')

	wc := m.p.WeekendColumn()
	for i, name := range m.p.DayNames() {
		st := m.styles.Header
		if i == wc {
			st = m.styles.Weekend
		}
		b.WriteString(st.Render(name))
	}
	b.WriteByte('\n')

	var hover *lipgloss.Style
	if m.registry != nil {
		if st, ok := m.registry.Hover(m.p.ID()); ok {
			hover = &st
		}
	}
	for _, w := range m.p.Weeks() {
		for _, d := range w {
			f := m.p.Day(d)
			if f.Hidden {
				b.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			b.WriteString(m.styles.cell(f, hover).Render(strconv.Itoa(d.Day)))
		}
		b.WriteByte('\n')
	}
	if m.help {
		b.WriteString(m.styles.Help.Render("arrows move  pgup/pgdn month  enter select  space toggle  [ ] page  q quit"))
		b.WriteByte('\n')
	}
	return b.String()
}
