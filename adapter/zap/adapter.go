package zapadapter

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xlogs"
)

// Adapter renders xlogs events through go.uber.org/zap.
//
// Optimizations:
//   - Uses Logger.Check(level, msg) to avoid building fields when disabled.
//   - Guarantees RFC3339Nano "ts" precision by writing it as a string field.
//
// Optional behavior:
//   - SetMinLevel leverages zap.AtomicLevel when provided at construction time
//     to adjust backend filtering to match the xlogs threshold. If no
//     AtomicLevel is provided, SetMinLevel is a no-op (stream filtering still
//     applies).
type Adapter struct {
	l     *zap.Logger
	al    *zap.AtomicLevel // optional, enables SetMinLevel
	tsKey string           // timestamp field key; default "ts"
}

var _ xlogs.Adapter = (*Adapter)(nil)

// New creates an adapter for the provided zap logger.
func New(l *zap.Logger) *Adapter {
	return NewWithTimestampKey(l, nil, "ts")
}

// NewWithAtomicLevel creates an adapter and wires a zap.AtomicLevel so
// SetMinLevel can dynamically adjust the backend's filter.
func NewWithAtomicLevel(l *zap.Logger, al *zap.AtomicLevel) *Adapter {
	return NewWithTimestampKey(l, al, "ts")
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l *zap.Logger, al *zap.AtomicLevel, tsKey string) *Adapter {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Adapter{l: l, al: al, tsKey: tsKey}
}

// OnEvent implements xlogs.Observer.
func (a *Adapter) OnEvent(ev xlogs.Event) {
	// Fast path: skip if disabled. Avoids building fields.
	ce := a.l.Check(toZapLevel(ev.Level), ev.Message)
	if ce == nil {
		return
	}

	zfs := make([]zap.Field, 0, 3)
	zfs = append(zfs,
		zap.String(a.tsKey, ev.Datetime.UTC().Format(time.RFC3339Nano)),
		zap.String("logger", ev.Logger),
	)
	if ev.Level == xlogs.LevelError && ev.Err != nil {
		zfs = append(zfs, zap.Error(ev.Err))
	}
	ce.Write(zfs...)
}

// Sync flushes the zap core.
func (a *Adapter) Sync() error { return a.l.Sync() }

// SetMinLevel updates the backend filter when an AtomicLevel was supplied.
func (a *Adapter) SetMinLevel(l xlogs.Level) {
	if a.al == nil {
		return
	}
	a.al.SetLevel(toZapThreshold(l))
}

// toZapLevel maps event levels. zap has no trace level, and NONE or
// unrecognized levels are written at info.
func toZapLevel(l xlogs.Level) zapcore.Level {
	switch l {
	case xlogs.LevelTrace, xlogs.LevelDebug:
		return zapcore.DebugLevel
	case xlogs.LevelWarn:
		return zapcore.WarnLevel
	case xlogs.LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapThreshold(l xlogs.Level) zapcore.Level {
	switch l {
	case xlogs.LevelAll:
		return zapcore.DebugLevel
	case xlogs.LevelNone:
		return zapcore.FatalLevel + 1 // effectively off
	default:
		return toZapLevel(l)
	}
}
