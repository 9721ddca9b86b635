package slogadapter

import (
	"context"
	"log/slog"
	"time"

	"github.com/trickstertwo/xlogs"
)

// Slog levels for xlogs' extra steps. slog leaves room between its built-in
// levels, so TRACE sits one step below Debug.
const (
	LevelTrace = slog.Level(-8)
	levelOff   = slog.Level(1 << 10)
)

// Adapter renders xlogs events through the Go slog API (Adapter Strategy).
// It builds slog.Attrs directly and uses LogAttrs.
type Adapter struct {
	l     *slog.Logger
	lv    *slog.LevelVar // optional, enables SetMinLevel
	tsKey string
}

var _ xlogs.Adapter = (*Adapter)(nil)

func New(l *slog.Logger) *Adapter {
	return NewWithTimestampKey(l, nil, "ts")
}

// NewWithTimestampKey wires an optional LevelVar (used by SetMinLevel) and a
// custom timestamp key (default "ts").
func NewWithTimestampKey(l *slog.Logger, lv *slog.LevelVar, tsKey string) *Adapter {
	if l == nil {
		l = slog.Default()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Adapter{l: l, lv: lv, tsKey: tsKey}
}

// OnEvent implements xlogs.Observer.
func (a *Adapter) OnEvent(ev xlogs.Event) {
	lvl := toSlog(ev.Level)
	ctx := context.Background()
	if !a.l.Enabled(ctx, lvl) {
		return
	}
	attrs := make([]slog.Attr, 0, 3)
	// Single authoritative timestamp provided by the event
	attrs = append(attrs,
		slog.String(a.tsKey, ev.Datetime.UTC().Format(time.RFC3339Nano)),
		slog.String("logger", ev.Logger),
	)
	if ev.Level == xlogs.LevelError && ev.Err != nil {
		attrs = append(attrs, slog.String("error", ev.Err.Error()))
	}
	a.l.LogAttrs(ctx, lvl, ev.Message, attrs...)
}

// Sync is a no-op; slog handlers write synchronously.
func (a *Adapter) Sync() error { return nil }

// SetMinLevel updates the LevelVar, if one was supplied.
func (a *Adapter) SetMinLevel(l xlogs.Level) {
	if a.lv == nil {
		return
	}
	a.lv.Set(toSlogThreshold(l))
}

func toSlog(l xlogs.Level) slog.Level {
	switch l {
	case xlogs.LevelTrace:
		return LevelTrace
	case xlogs.LevelDebug:
		return slog.LevelDebug
	case xlogs.LevelWarn:
		return slog.LevelWarn
	case xlogs.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func toSlogThreshold(l xlogs.Level) slog.Level {
	switch l {
	case xlogs.LevelAll:
		return LevelTrace
	case xlogs.LevelNone:
		return levelOff
	default:
		return toSlog(l)
	}
}
