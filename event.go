package xlogs

import (
	"fmt"
	"strings"
	"time"

	"github.com/trickstertwo/xclock"
)

// DefaultLayout is the layout used by Event.String.
const DefaultLayout = "%datetime% %level% [%logger%]: %message%"

// isoMillis matches the ISO-8601 UTC rendering used for %datetime%.
const isoMillis = "2006-01-02T15:04:05.000Z"

// Event is one emitted log record. Events are values: once built they are
// never mutated, and subscribers may hold on to them freely.
type Event struct {
	Logger   string
	Level    Level
	Message  string
	Err      error // stack-carrying error for ERROR and TRACE events emitted by a Logger
	Datetime time.Time
}

// EventOption overrides one field of a new Event.
type EventOption func(*Event)

func WithLogger(name string) EventOption   { return func(e *Event) { e.Logger = name } }
func WithLevel(l Level) EventOption        { return func(e *Event) { e.Level = l } }
func WithMessage(msg string) EventOption   { return func(e *Event) { e.Message = msg } }
func WithDatetime(t time.Time) EventOption { return func(e *Event) { e.Datetime = t } }

// WithError sets Err and, when no message was given, the message as well.
func WithError(err error) EventOption {
	return func(e *Event) {
		e.Err = err
		if e.Message == "" && err != nil {
			e.Message = err.Error()
		}
	}
}

// NewEvent builds an Event stamped with xclock.Now(). Unset fields default to
// logger "unknown", level NONE and an empty message. No validation happens
// here; levels are checked by the stream operators that consume them.
func NewEvent(opts ...EventOption) Event {
	e := Event{
		Logger:   "unknown",
		Level:    LevelNone,
		Datetime: xclock.Now(),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Format renders the event into layout, replacing every occurrence of
// %datetime%, %level%, %logger% and %message%. Other %tokens% are left as
// they are. An empty layout selects DefaultLayout rather than rendering an
// empty string.
func (e Event) Format(layout string) string {
	if layout == "" {
		layout = DefaultLayout
	}
	if !strings.Contains(layout, "%") {
		return layout
	}
	out := layout
	for _, f := range eventFields {
		token := "%" + f.name + "%"
		if strings.Contains(out, token) {
			out = strings.ReplaceAll(out, token, f.render(e))
		}
	}
	return out
}

// String renders the event with DefaultLayout.
func (e Event) String() string { return e.Format(DefaultLayout) }

var eventFields = [...]struct {
	name   string
	render func(Event) string
}{
	{"datetime", func(e Event) string { return e.Datetime.UTC().Format(isoMillis) }},
	{"level", func(e Event) string { return string(e.Level) }},
	{"logger", func(e Event) string { return e.Logger }},
	{"message", func(e Event) string {
		if e.Message == "" && e.Err != nil {
			return fmt.Sprint(e.Err)
		}
		return e.Message
	}},
}
