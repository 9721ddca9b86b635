package xlogs

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/trickstertwo/xclock"
)

// Logger emits events under a fixed name into one Bus. A Logger is immutable
// and safe for concurrent use. Obtain shared loggers from a Registry; use
// NewLogger only for private, one-off instances.
type Logger struct {
	name  string
	bus   *Bus
	clock xclock.Clock // nil: xclock.Now()
}

// NewLogger returns an uncached Logger publishing into the default registry's
// bus. It fails with ErrInvalidArgument when name is empty after trimming.
func NewLogger(name string) (*Logger, error) {
	return newLogger(name, Default().bus, nil)
}

func newLogger(name string, bus *Bus, clock xclock.Clock) (*Logger, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidArgument(msgNameRequired, nil)
	}
	return &Logger{name: name, bus: bus, clock: clock}, nil
}

// Name returns the trimmed logger name.
func (l *Logger) Name() string { return l.name }

// Level methods. Each formats msg with args (see Sprintf), publishes one event
// and returns the receiver so calls can be chained:
//
//	log.Warn("low disk: %s%%", 87).Info("cleanup scheduled")

// Trace publishes a TRACE event whose message is the formatted text followed
// by the caller's stack.
func (l *Logger) Trace(msg any, args ...any) *Logger {
	if !l.bus.HasSubscribers() {
		return l
	}
	err := errors.New(Sprintf(msg, args...))
	l.publish(LevelTrace, fmt.Sprintf("%+v", err), err)
	return l
}

func (l *Logger) Debug(msg any, args ...any) *Logger { return l.emit(LevelDebug, msg, args) }
func (l *Logger) Info(msg any, args ...any) *Logger  { return l.emit(LevelInfo, msg, args) }
func (l *Logger) Warn(msg any, args ...any) *Logger  { return l.emit(LevelWarn, msg, args) }

// Error publishes an ERROR event. Besides the formatted message the event
// carries an error value with the caller's stack in Err.
func (l *Logger) Error(msg any, args ...any) *Logger {
	if !l.bus.HasSubscribers() {
		return l
	}
	text := Sprintf(msg, args...)
	l.publish(LevelError, text, errors.New(text))
	return l
}

func (l *Logger) emit(level Level, msg any, args []any) *Logger {
	// Fast path: nobody listening, nothing to format.
	if !l.bus.HasSubscribers() {
		return l
	}
	l.publish(level, Sprintf(msg, args...), nil)
	return l
}

func (l *Logger) publish(level Level, msg string, err error) {
	l.bus.Publish(Event{
		Logger:   l.name,
		Level:    level,
		Message:  msg,
		Err:      err,
		Datetime: l.now(),
	})
}

func (l *Logger) now() time.Time {
	if l.clock != nil {
		return l.clock.Now()
	}
	return xclock.Now()
}
