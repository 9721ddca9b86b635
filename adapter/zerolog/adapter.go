package zerologadapter

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xlogs"
)

// Adapter renders xlogs events through rs/zerolog.
//
//   - The event's own Datetime is written as "ts" (RFC3339Nano), so output
//     reflects publication time rather than render time.
//   - The logger name goes to "logger"; ERROR events attach Err as "error".
//   - A fast pre-check against GetLevel() avoids allocating a zerolog.Event
//     for disabled levels.
type Adapter struct {
	l     zerolog.Logger
	tsKey string
}

var _ xlogs.Adapter = (*Adapter)(nil)

func New(l zerolog.Logger) *Adapter {
	return &Adapter{l: l, tsKey: "ts"}
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l zerolog.Logger, tsKey string) *Adapter {
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Adapter{l: l, tsKey: tsKey}
}

// OnEvent implements xlogs.Observer.
func (a *Adapter) OnEvent(ev xlogs.Event) {
	zlvl := mapLevel(ev.Level)

	// Fast path: drop early if below logger's min level (no Event allocation).
	if zlvl < a.l.GetLevel() {
		return
	}

	e := a.l.WithLevel(zlvl)
	e.Str(a.tsKey, ev.Datetime.UTC().Format(time.RFC3339Nano)).
		Str("logger", ev.Logger)
	if ev.Level == xlogs.LevelError && ev.Err != nil {
		e.Err(ev.Err)
	}
	e.Msg(ev.Message)
}

// Sync is a no-op; zerolog writes synchronously.
func (a *Adapter) Sync() error { return nil }

// SetMinLevel mirrors the xlogs threshold into zerolog. Call it before the
// adapter is subscribed.
func (a *Adapter) SetMinLevel(l xlogs.Level) {
	a.l = a.l.Level(mapThreshold(l))
}

// mapLevel converts an event level to zerolog.Level. NONE and unrecognized
// levels are written without a level.
func mapLevel(l xlogs.Level) zerolog.Level {
	switch l {
	case xlogs.LevelTrace:
		return zerolog.TraceLevel
	case xlogs.LevelDebug:
		return zerolog.DebugLevel
	case xlogs.LevelInfo:
		return zerolog.InfoLevel
	case xlogs.LevelWarn:
		return zerolog.WarnLevel
	case xlogs.LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.NoLevel
	}
}

// mapThreshold converts a filter threshold: ALL lets everything through and
// NONE disables output.
func mapThreshold(l xlogs.Level) zerolog.Level {
	switch l {
	case xlogs.LevelAll:
		return zerolog.TraceLevel
	case xlogs.LevelNone:
		return zerolog.Disabled
	default:
		if lvl := mapLevel(l); lvl != zerolog.NoLevel {
			return lvl
		}
		return zerolog.TraceLevel
	}
}
