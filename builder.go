package xlogs

import "github.com/trickstertwo/xclock"

// Config for constructing a Registry (Factory data structure).
type Config struct {
	Clock     xclock.Clock // optional; loggers stamp events with xclock.Now() when nil
	Observers []Observer   // subscribed to the new bus before any logger exists
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	if o != nil {
		b.cfg.Observers = append(b.cfg.Observers, o)
	}
	return b
}

// Build constructs the Registry and its Bus.
func (b *Builder) Build() *Registry {
	cfg := b.cfg
	cfg.Observers = append([]Observer(nil), b.cfg.Observers...)
	return newRegistry(cfg)
}
