package xlogs

// Adapter is the sink Strategy: it renders events to a concrete backend
// (zerolog, zap, slog, logrus, a plain writer). Adapters are Observers, so
// they subscribe to any Stream directly.
type Adapter interface {
	Observer
	// Sync flushes buffered output, if any.
	Sync() error
}

// levelSetter is an optional interface adapters can implement to mirror a
// minimum level into their backend's own filter.
type levelSetter interface {
	SetMinLevel(Level)
}

// Attach subscribes a to s. When minLevel is a recognized level other than ALL,
// only events at or above it are delivered and adapters that support it get
// the same threshold pushed into their backend. NONE turns the sink off:
// nothing is delivered, not even events that carry NONE. An unrecognized
// minLevel fails with an *InvalidLevelError.
func Attach(s *Stream, a Adapter, minLevel Level) (*Subscription, error) {
	if a == nil {
		return nil, invalidArgument("an adapter must be specified", nil)
	}
	lvl, err := ParseLevel(minLevel)
	if err != nil {
		return nil, err
	}
	if ls, ok := a.(levelSetter); ok {
		ls.SetMinLevel(lvl)
	}
	switch lvl {
	case LevelAll:
	case LevelNone:
		s = Never()
	default:
		if s, err = s.ByMinLevel(lvl); err != nil {
			return nil, err
		}
	}
	return s.Subscribe(a), nil
}
