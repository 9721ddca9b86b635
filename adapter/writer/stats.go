package writer

import "sync/atomic"

type stats struct {
	written      atomic.Uint64
	loggedErrors atomic.Uint64
	dropped      atomic.Uint64
	sampled      atomic.Uint64
}

// StatsSnapshot is a point-in-time counters snapshot.
type StatsSnapshot struct {
	Written      uint64
	LoggedErrors uint64
	Dropped      uint64 // async queue overflow
	Sampled      uint64 // rejected by MaxPerSecond
}

func (s *stats) snapshot() StatsSnapshot {
	return StatsSnapshot{
		Written:      s.written.Load(),
		LoggedErrors: s.loggedErrors.Load(),
		Dropped:      s.dropped.Load(),
		Sampled:      s.sampled.Load(),
	}
}

func (s *stats) reset() {
	s.written.Store(0)
	s.loggedErrors.Store(0)
	s.dropped.Store(0)
	s.sampled.Store(0)
}
