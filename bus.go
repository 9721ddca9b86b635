package xlogs

import (
	"sync"
	"sync/atomic"
)

// Bus is a hot multicast stream of events. Every Logger publishes into exactly
// one Bus; subscribers see events published after they subscribed, in
// publication order. Nothing is buffered or replayed.
type Bus struct {
	// Subscribers: lock-free reads via atomic.Value; synchronized updates via mu.
	// Stored value is []*busSubscriber and MUST be treated as immutable by readers.
	subs atomic.Value
	mu   sync.Mutex

	stream *Stream
}

type busSubscriber struct {
	o      Observer
	closed atomic.Bool
}

// NewBus returns an empty Bus.
func NewBus() *Bus {
	b := &Bus{}
	b.subs.Store(([]*busSubscriber)(nil))
	b.stream = NewStream(b.Subscribe)
	return b
}

// Publish delivers ev to every current subscriber, in subscription order,
// before returning. Subscribers added or removed while a publish is in flight
// do not change who receives that event, except that a subscriber that
// unsubscribed is skipped.
func (b *Bus) Publish(ev Event) {
	for _, s := range b.snapshot() {
		if s.closed.Load() {
			continue
		}
		s.o.OnEvent(ev)
	}
}

// Subscribe registers o for future events. A nil observer yields an inert
// Subscription.
func (b *Bus) Subscribe(o Observer) *Subscription {
	if o == nil {
		return emptySubscription()
	}
	s := &busSubscriber{o: o}

	b.mu.Lock()
	cur := b.snapshot()
	next := make([]*busSubscriber, len(cur), len(cur)+1)
	copy(next, cur)
	b.subs.Store(append(next, s))
	b.mu.Unlock()

	return newSubscription(func() { b.remove(s) })
}

// HasSubscribers reports whether publishing would reach anyone. Loggers use it
// to skip formatting work.
func (b *Bus) HasSubscribers() bool { return len(b.snapshot()) > 0 }

// Len returns the number of live subscribers.
func (b *Bus) Len() int { return len(b.snapshot()) }

// AsStream returns the canonical Stream over the bus. The same instance is
// returned on every call.
func (b *Bus) AsStream() *Stream { return b.stream }

func (b *Bus) snapshot() []*busSubscriber {
	v, _ := b.subs.Load().([]*busSubscriber)
	return v
}

func (b *Bus) remove(s *busSubscriber) {
	s.closed.Store(true)

	b.mu.Lock()
	defer b.mu.Unlock()
	cur := b.snapshot()
	next := make([]*busSubscriber, 0, len(cur))
	for _, c := range cur {
		if c != s {
			next = append(next, c)
		}
	}
	b.subs.Store(next)
}
