package xlogs

import (
	"regexp"
)

// Stream is a lazy, restartable sequence of events. It wraps a subscribe
// function rather than a concrete source, so every operator returns a new
// Stream and chains can be built in any order:
//
//	s, err := xlogs.AsObservable().ByName(`^billing\.`)
//	if err != nil { ... }
//	warn, err := s.ByMinLevel(xlogs.LevelWarn)
//	sub := warn.Subscribe(sink)
//	defer sub.Unsubscribe()
//
// Nothing happens upstream until Subscribe is called, and each subscription
// is independent.
type Stream struct {
	subscribe func(Observer) *Subscription
}

// NewStream wraps subscribe. A nil subscribe yields a stream that never emits.
func NewStream(subscribe func(Observer) *Subscription) *Stream {
	if subscribe == nil {
		subscribe = func(Observer) *Subscription { return emptySubscription() }
	}
	return &Stream{subscribe: subscribe}
}

// Never returns a stream that emits nothing.
func Never() *Stream { return NewStream(nil) }

// Must panics if err is non-nil. It is meant for chains whose arguments are
// constants, in the spirit of regexp.MustCompile:
//
//	xlogs.Must(xlogs.Must(s.ByName("svc")).ByMinLevel(xlogs.LevelWarn))
func Must(s *Stream, err error) *Stream {
	if err != nil {
		panic(err)
	}
	return s
}

// Subscribe attaches o and returns its Subscription.
func (s *Stream) Subscribe(o Observer) *Subscription {
	if o == nil {
		return emptySubscription()
	}
	return s.subscribe(o)
}

// SubscribeFunc is Subscribe for plain functions.
func (s *Stream) SubscribeFunc(fn func(Event)) *Subscription {
	if fn == nil {
		return emptySubscription()
	}
	return s.subscribe(ObserverFunc(fn))
}

// Filter passes through events for which pred returns true.
func (s *Stream) Filter(pred func(Event) bool) *Stream {
	if pred == nil {
		return s
	}
	return NewStream(func(o Observer) *Subscription {
		return s.subscribe(ObserverFunc(func(e Event) {
			if pred(e) {
				o.OnEvent(e)
			}
		}))
	})
}

// Map transforms every event with fn.
func (s *Stream) Map(fn func(Event) Event) *Stream {
	if fn == nil {
		return s
	}
	return NewStream(func(o Observer) *Subscription {
		return s.subscribe(ObserverFunc(func(e Event) {
			o.OnEvent(fn(e))
		}))
	})
}

// ByName passes events whose logger name contains a match for pattern.
// pattern must be a string (compiled as a regular expression) or a
// *regexp.Regexp; anything else fails with ErrInvalidArgument.
func (s *Stream) ByName(pattern any) (*Stream, error) {
	var re *regexp.Regexp
	switch p := pattern.(type) {
	case string:
		compiled, err := regexp.Compile(p)
		if err != nil {
			return nil, invalidArgument(msgInvalidPattern, err)
		}
		re = compiled
	case *regexp.Regexp:
		re = p
	}
	if re == nil {
		return nil, invalidArgument(msgInvalidPattern, nil)
	}
	return s.Filter(func(e Event) bool { return re.MatchString(e.Logger) }), nil
}

// ByMinLevel passes events at or above level. ALL passes every recognized
// level; NONE passes only events that literally carry NONE. An unrecognized
// level fails with an *InvalidLevelError.
func (s *Stream) ByMinLevel(level Level) (*Stream, error) {
	threshold, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	idx := threshold.Index()
	return s.Filter(func(e Event) bool { return e.Level.Index() >= idx }), nil
}

// ByLevels passes events whose level is one of levels. Every argument is
// validated before the stream is built; the first unrecognized one fails with
// an *InvalidLevelError. With no arguments nothing passes.
func (s *Stream) ByLevels(levels ...Level) (*Stream, error) {
	set := make(map[Level]struct{}, len(levels))
	for _, l := range levels {
		lvl, err := ParseLevel(l)
		if err != nil {
			return nil, err
		}
		set[lvl] = struct{}{}
	}
	return s.Filter(func(e Event) bool {
		_, ok := set[e.Level]
		return ok
	}), nil
}

// From passes events at or above level, like ByMinLevel, but never fails:
// NONE or an unrecognized level yields a stream that emits nothing. Only base
// levels pass; events carrying NONE are excluded.
func (s *Stream) From(level Level) *Stream {
	lvl, ok := normalize(level)
	if !ok || lvl == LevelNone {
		return Never()
	}
	idx := lvl.Index()
	levels := make([]Level, 0, len(baseLevels))
	for _, b := range baseLevels {
		if b.Index() >= idx {
			levels = append(levels, b)
		}
	}
	return s.Select(levels...)
}

// Select passes events at any of levels, like ByLevels, but never fails:
// unrecognized entries are dropped. NONE anywhere in the list yields a stream
// that emits nothing; ALL expands to every base level.
func (s *Stream) Select(levels ...Level) *Stream {
	set := make(map[Level]struct{}, len(levels))
	for _, l := range levels {
		lvl, ok := normalize(l)
		if !ok {
			continue
		}
		switch lvl {
		case LevelNone:
			return Never()
		case LevelAll:
			for _, b := range baseLevels {
				set[b] = struct{}{}
			}
		default:
			set[lvl] = struct{}{}
		}
	}
	if len(set) == 0 {
		return Never()
	}
	return s.Filter(func(e Event) bool {
		_, ok := set[e.Level]
		return ok
	})
}
