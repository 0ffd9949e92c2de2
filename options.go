package datepickerx

import (
	"log/slog"
	"time"

	"github.com/comalice/datepickerx/locale"
	"github.com/comalice/datepickerx/notify"
)

// Option configures a Picker.
type Option func(*Picker)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) Option {
	return func(p *Picker) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLocaleProvider resolves Props.Locale against lp instead of the
// built-in tables.
func WithLocaleProvider(lp *locale.Provider) Option {
	return func(p *Picker) {
		if lp != nil {
			p.locales = lp
		}
	}
}

// WithPublisher additionally publishes every notification to pub.
func WithPublisher(pub notify.Publisher) Option {
	return func(p *Picker) {
		p.pub = pub
	}
}

// WithLogger overrides the logger taken from the context given to New.
func WithLogger(l *slog.Logger) Option {
	return func(p *Picker) {
		if l != nil {
			p.log = l
		}
	}
}
