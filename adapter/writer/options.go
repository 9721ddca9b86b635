package writer

import (
	"io"

	"github.com/trickstertwo/xlogs"
)

// ErrorHandler defines how write errors are handled
type ErrorHandler func(error)

// AsyncDropPolicy controls behavior when async queue is full.
type AsyncDropPolicy uint8

const (
	DropNewest AsyncDropPolicy = iota // fast, no producer stall (default)
	DropOldest                        // discard oldest entry to make room
	Block                             // producer blocks until space available
)

// Options configures the adapter behavior
type Options struct {
	// Layout is passed to Event.Format; empty selects xlogs.DefaultLayout.
	Layout       string
	MinLevel     xlogs.Level
	ErrorHandler ErrorHandler

	Async          bool
	AsyncQueueSize int // default 1024
	AsyncPolicy    AsyncDropPolicy

	// MaxPerSecond caps written lines per second; zero disables sampling.
	// Burst defaults to MaxPerSecond rounded up.
	MaxPerSecond float64
	Burst        int
}

// WriterFactory allows custom writers per log level
type WriterFactory interface {
	GetWriter(level xlogs.Level) io.Writer
}

type DefaultWriterFactory struct{ Writer io.Writer }

func (f *DefaultWriterFactory) GetWriter(xlogs.Level) io.Writer { return f.Writer }

type LevelWriterFactory struct {
	Default     io.Writer
	LevelWriter map[xlogs.Level]io.Writer
}

func (f *LevelWriterFactory) GetWriter(level xlogs.Level) io.Writer {
	if w, ok := f.LevelWriter[level]; ok {
		return w
	}
	return f.Default
}
