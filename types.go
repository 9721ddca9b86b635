package xlogs

// Observer receives events from a Bus or Stream (Observer pattern).
// Delivery is synchronous on the publishing goroutine; OnEvent must not block.
type Observer interface {
	OnEvent(e Event)
}

// ObserverFunc adapter.
type ObserverFunc func(Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }
