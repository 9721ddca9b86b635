package writer

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/trickstertwo/xlogs"
)

// Adapter writes one formatted line per event to an io.Writer.
type Adapter struct {
	// immutable after construction
	writerFactory WriterFactory
	opts          Options
	limiter       *rate.Limiter

	minIndex atomic.Int32 // index of the current minimum level in xlogs.Levels()

	// write path
	mu         sync.Mutex
	wg         sync.WaitGroup
	asyncQueue chan xlogs.Event
	stopped    atomic.Bool

	st stats
}

var (
	errAsyncQueueFull = errors.New("xlogs/writer: async queue full, dropping event")
	errClosed         = errors.New("xlogs/writer: adapter closed")
)

var _ xlogs.Adapter = (*Adapter)(nil)

func defaultErrorHandler(err error) { fmt.Fprintf(os.Stderr, "xlogs error: %v\n", err) }

// New creates a new Adapter with the given writer and options
func New(w io.Writer, opts Options) *Adapter {
	return NewWithWriterFactory(&DefaultWriterFactory{Writer: w}, opts)
}

func NewWithWriterFactory(factory WriterFactory, opts Options) *Adapter {
	if factory == nil {
		factory = &DefaultWriterFactory{Writer: os.Stdout}
	}
	if opts.ErrorHandler == nil {
		opts.ErrorHandler = defaultErrorHandler
	}
	if opts.MinLevel == "" {
		opts.MinLevel = xlogs.LevelAll
	}

	a := &Adapter{
		writerFactory: factory,
		opts:          opts,
	}
	a.SetMinLevel(opts.MinLevel)

	if opts.MaxPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = int(math.Ceil(opts.MaxPerSecond))
		}
		a.limiter = rate.NewLimiter(rate.Limit(opts.MaxPerSecond), burst)
	}

	if opts.Async {
		q := opts.AsyncQueueSize
		if q <= 0 {
			q = 1024
		}
		a.asyncQueue = make(chan xlogs.Event, q)
		a.wg.Add(1)
		go a.asyncProcessor()
	}
	return a
}

// Stats returns a snapshot of internal counters.
func (a *Adapter) Stats() StatsSnapshot { return a.st.snapshot() }

// ResetStats resets internal counters.
func (a *Adapter) ResetStats() { a.st.reset() }

// SetMinLevel drops events below l; NONE drops everything. An unrecognized
// level is ignored.
func (a *Adapter) SetMinLevel(l xlogs.Level) {
	lvl, err := xlogs.ParseLevel(l)
	if err != nil {
		return
	}
	idx := lvl.Index()
	if lvl == xlogs.LevelNone {
		idx++ // above every level, NONE included
	}
	a.minIndex.Store(int32(idx))
}

// OnEvent implements xlogs.Observer.
func (a *Adapter) OnEvent(ev xlogs.Event) {
	if int32(ev.Level.Index()) < a.minIndex.Load() {
		return
	}
	if a.limiter != nil && !a.limiter.Allow() {
		a.st.sampled.Add(1)
		return
	}
	if a.asyncQueue == nil {
		a.write(ev)
		return
	}
	if a.stopped.Load() {
		a.st.loggedErrors.Add(1)
		a.opts.ErrorHandler(errClosed)
		return
	}

	select {
	case a.asyncQueue <- ev:
		return
	default:
	}
	switch a.opts.AsyncPolicy {
	case DropOldest:
		// Steal one from queue (non-blocking) to make room
		select {
		case <-a.asyncQueue:
			a.st.dropped.Add(1)
		default:
		}
		select {
		case a.asyncQueue <- ev:
		default:
			a.drop()
		}
	case Block:
		a.asyncQueue <- ev
	default:
		a.drop()
	}
}

func (a *Adapter) drop() {
	a.st.dropped.Add(1)
	a.st.loggedErrors.Add(1)
	a.opts.ErrorHandler(errAsyncQueueFull)
}

func (a *Adapter) write(ev xlogs.Event) {
	w := a.writerFactory.GetWriter(ev.Level)
	if w == nil {
		return
	}
	line := ev.Format(a.opts.Layout) + "\n"

	a.mu.Lock()
	_, err := io.WriteString(w, line)
	a.mu.Unlock()

	if err != nil {
		a.st.loggedErrors.Add(1)
		a.opts.ErrorHandler(err)
		return
	}
	a.st.written.Add(1)
}

func (a *Adapter) asyncProcessor() {
	defer a.wg.Done()
	for ev := range a.asyncQueue {
		a.write(ev)
	}
}

// Sync flushes writers that support it (e.g. *os.File).
func (a *Adapter) Sync() error {
	type syncer interface{ Sync() error }
	if df, ok := a.writerFactory.(*DefaultWriterFactory); ok {
		if s, ok := df.Writer.(syncer); ok {
			a.mu.Lock()
			defer a.mu.Unlock()
			return s.Sync()
		}
	}
	return nil
}

// Close drains the async queue, if any. Events delivered after Close are
// reported to the ErrorHandler. Close must not race with OnEvent.
func (a *Adapter) Close() error {
	if a.asyncQueue != nil && a.stopped.CompareAndSwap(false, true) {
		close(a.asyncQueue)
		a.wg.Wait()
	}
	return a.Sync()
}
