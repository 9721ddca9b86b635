package xlogs

import (
	"slices"
	"strings"
	"sync"

	"github.com/trickstertwo/xclock"
)

// Registry hands out one Logger per trimmed name, all publishing into the
// registry's Bus. Get is idempotent: the same name always yields the same
// *Logger. A Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger

	bus   *Bus
	clock xclock.Clock
}

// NewRegistry returns an isolated Registry with its own Bus. Tests use it to
// avoid sharing state through Default().
func NewRegistry() *Registry { return NewBuilder().Build() }

func newRegistry(cfg Config) *Registry {
	r := &Registry{
		loggers: make(map[string]*Logger),
		bus:     NewBus(),
		clock:   cfg.Clock,
	}
	for _, o := range cfg.Observers {
		r.bus.Subscribe(o)
	}
	return r
}

// Get returns the Logger for name, creating it on first use. It fails with
// ErrInvalidArgument when name is empty after trimming.
func (r *Registry) Get(name string) (*Logger, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidArgument(msgNameRequired, nil)
	}

	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()
	if ok {
		return l, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-check: another goroutine may have inserted while we waited.
	if l, ok := r.loggers[name]; ok {
		return l, nil
	}
	l, err := newLogger(name, r.bus, r.clock)
	if err != nil {
		return nil, err
	}
	r.loggers[name] = l
	return l, nil
}

// MustGet is Get for constant names; it panics on an invalid name.
func (r *Registry) MustGet(name string) *Logger {
	l, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return l
}

// AsObservable returns the Stream over every event published by this
// registry's loggers. The same instance is returned on every call.
func (r *Registry) AsObservable() *Stream { return r.bus.AsStream() }

// Bus exposes the registry's event bus, e.g. to publish externally built
// events.
func (r *Registry) Bus() *Bus { return r.bus }

// Names returns the registered logger names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.loggers))
	for n := range r.loggers {
		names = append(names, n)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}
