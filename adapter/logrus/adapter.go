package logrusadapter

import (
	"github.com/sirupsen/logrus"

	"github.com/trickstertwo/xlogs"
)

// Adapter renders xlogs events through github.com/sirupsen/logrus.
// The event's Datetime becomes the entry time, so the formatter's time key
// carries the authoritative timestamp.
type Adapter struct {
	l *logrus.Logger
}

var _ xlogs.Adapter = (*Adapter)(nil)

// New wraps l; a nil l uses logrus.StandardLogger().
func New(l *logrus.Logger) *Adapter {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &Adapter{l: l}
}

// OnEvent implements xlogs.Observer.
func (a *Adapter) OnEvent(ev xlogs.Event) {
	lvl := toLogrus(ev.Level)
	if !a.l.IsLevelEnabled(lvl) {
		return
	}
	entry := a.l.WithField("logger", ev.Logger).WithTime(ev.Datetime)
	if ev.Level == xlogs.LevelError && ev.Err != nil {
		entry = entry.WithError(ev.Err)
	}
	entry.Log(lvl, ev.Message)
}

// Sync is a no-op; logrus writes synchronously.
func (a *Adapter) Sync() error { return nil }

// SetMinLevel mirrors the threshold into the logrus logger.
func (a *Adapter) SetMinLevel(l xlogs.Level) {
	a.l.SetLevel(toLogrusThreshold(l))
}

func toLogrus(l xlogs.Level) logrus.Level {
	switch l {
	case xlogs.LevelTrace:
		return logrus.TraceLevel
	case xlogs.LevelDebug:
		return logrus.DebugLevel
	case xlogs.LevelWarn:
		return logrus.WarnLevel
	case xlogs.LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Panic is the quietest logrus level and is never emitted by this adapter,
// so it doubles as "off".
func toLogrusThreshold(l xlogs.Level) logrus.Level {
	switch l {
	case xlogs.LevelAll:
		return logrus.TraceLevel
	case xlogs.LevelNone:
		return logrus.PanicLevel
	default:
		return toLogrus(l)
	}
}
