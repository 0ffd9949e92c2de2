package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/comalice/datepickerx"
	"github.com/comalice/datepickerx/render"
)

// Styles holds the lipgloss styles for each kind of day cell.
type Styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	Weekend    lipgloss.Style
	Day        lipgloss.Style
	Selected   lipgloss.Style
	Focused    lipgloss.Style
	Active     lipgloss.Style
	Today      lipgloss.Style
	OtherMonth lipgloss.Style
	Disabled   lipgloss.Style
	Help       lipgloss.Style
}

// DefaultStyles returns the built-in theme.
func DefaultStyles() Styles {
	day := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Right)
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Width(7 * cellWidth).Align(lipgloss.Center),
		Header:     day.Foreground(lipgloss.Color("245")),
		Weekend:    day.Foreground(lipgloss.Color("203")),
		Day:        day,
		Selected:   day.Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("63")),
		Focused:    day.Underline(true).Foreground(lipgloss.Color("86")),
		Active:     day.Reverse(true),
		Today:      day.Bold(true).Foreground(lipgloss.Color("214")),
		OtherMonth: day.Foreground(lipgloss.Color("240")),
		Disabled:   day.Faint(true).Strikethrough(true),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// cell picks the style for a day from its flags. Hover styles registered
// for the picker take the place of Focused.
func (s Styles) cell(f datepickerx.DayFlags, hover *lipgloss.Style) lipgloss.Style {
	switch {
	case f.Active:
		return s.Active
	case f.Selected:
		return s.Selected
	case f.Focused:
		if hover != nil {
			return *hover
		}
		return s.Focused
	case f.DisabledByRange:
		return s.Disabled
	case f.OtherMonth:
		return s.OtherMonth
	case f.Today:
		return s.Today
	case f.Weekend:
		return s.Weekend
	}
	return s.Day
}

// Registry keeps per-picker hover styles as lipgloss styles. It
// implements render.StyleRegistry.
type Registry struct {
	mu     sync.Mutex
	base   lipgloss.Style
	styles map[string]lipgloss.Style
}

var _ render.StyleRegistry = (*Registry)(nil)

// NewRegistry returns a Registry whose styles extend base.
func NewRegistry(base lipgloss.Style) *Registry {
	return &Registry{base: base, styles: map[string]lipgloss.Style{}}
}

func (r *Registry) RegisterHoverStyle(id string, rules render.Style) {
	st := r.base
	if rules.Foreground != "" {
		st = st.Foreground(lipgloss.Color(rules.Foreground))
	}
	if rules.Background != "" {
		st = st.Background(lipgloss.Color(rules.Background))
	}
	if rules.Bold {
		st = st.Bold(true)
	}
	if rules.Underline {
		st = st.Underline(true)
	}
	if rules.Reverse {
		st = st.Reverse(true)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.styles[id] = st
}

func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.styles, id)
}

// Hover returns the hover style registered for id.
func (r *Registry) Hover(id string) (lipgloss.Style, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.styles[id]
	return st, ok
}

// Len returns the number of registered styles.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.styles)
}
