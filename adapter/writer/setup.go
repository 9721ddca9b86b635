package writer

import (
	"io"
	"os"

	"github.com/trickstertwo/xlogs"
)

// Config is an explicit, code-first configuration for the line writer.
// Use provides a single-call setup with no envs or side-imports.
type Config struct {
	// Writer receives every line when WriterFactory is nil.
	// Defaults to os.Stdout.
	Writer io.Writer

	// WriterFactory optionally routes lines by level.
	// When set, it takes precedence over Writer.
	WriterFactory WriterFactory

	// Stream to subscribe to; defaults to xlogs.AsObservable().
	Stream *xlogs.Stream

	// Core behavior (mirrors Options)
	Layout         string
	MinLevel       xlogs.Level
	ErrorHandler   ErrorHandler
	Async          bool
	AsyncQueueSize int
	AsyncPolicy    AsyncDropPolicy
	MaxPerSecond   float64
	Burst          int
}

// Use builds an Adapter from Config and subscribes it to cfg.Stream at
// cfg.MinLevel. Release the returned Subscription, then Close the adapter, to
// detach.
func Use(cfg Config) (*Adapter, *xlogs.Subscription, error) {
	opts := Options{
		Layout:         cfg.Layout,
		MinLevel:       cfg.MinLevel,
		ErrorHandler:   cfg.ErrorHandler,
		Async:          cfg.Async,
		AsyncQueueSize: cfg.AsyncQueueSize,
		AsyncPolicy:    cfg.AsyncPolicy,
		MaxPerSecond:   cfg.MaxPerSecond,
		Burst:          cfg.Burst,
	}
	if opts.MinLevel == "" {
		opts.MinLevel = xlogs.LevelAll
	}

	var ad *Adapter
	if cfg.WriterFactory != nil {
		ad = NewWithWriterFactory(cfg.WriterFactory, opts)
	} else {
		w := cfg.Writer
		if w == nil {
			w = os.Stdout
		}
		ad = New(w, opts)
	}

	s := cfg.Stream
	if s == nil {
		s = xlogs.AsObservable()
	}
	sub, err := xlogs.Attach(s, ad, opts.MinLevel)
	if err != nil {
		_ = ad.Close()
		return nil, nil, err
	}
	return ad, sub, nil
}
