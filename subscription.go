package xlogs

import "sync"

// Subscription is the handle returned by Subscribe. Unsubscribe stops further
// deliveries; it is idempotent and safe to call from inside OnEvent.
type Subscription struct {
	once   sync.Once
	cancel func()
}

func newSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Unsubscribe releases the registration. A nil Subscription is a no-op.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

// emptySubscription backs streams that never emit.
func emptySubscription() *Subscription { return newSubscription(nil) }
