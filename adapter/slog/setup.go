package slogadapter

import (
	"io"
	"log/slog"
	"os"

	"github.com/trickstertwo/xlogs"
)

// Format selects the slog handler format.
type Format uint8

const (
	FormatJSON Format = iota + 1
	FormatText
)

// Config is an explicit, code-first configuration for slog + xlogs.
type Config struct {
	Writer             io.Writer            // default: os.Stdout
	Stream             *xlogs.Stream        // default: xlogs.AsObservable()
	MinLevel           xlogs.Level          // default: ALL
	Format             Format               // JSON (default) or Text
	HandlerOptions     *slog.HandlerOptions // optional; Level is managed by Use via LevelVar
	TimestampFieldName string               // default "ts"
}

// Use builds a slog-backed adapter from Config and subscribes it to
// cfg.Stream.
func Use(cfg Config) (*Adapter, *xlogs.Subscription, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.MinLevel == "" {
		cfg.MinLevel = xlogs.LevelAll
	}
	opts := slog.HandlerOptions{}
	if cfg.HandlerOptions != nil {
		opts = *cfg.HandlerOptions
	}

	// Use a LevelVar to allow dynamic SetMinLevel on the adapter.
	lv := new(slog.LevelVar)
	lv.Set(LevelTrace)
	opts.Level = lv

	var h slog.Handler
	if cfg.Format == FormatText {
		h = slog.NewTextHandler(w, &opts)
	} else {
		h = slog.NewJSONHandler(w, &opts)
	}

	ad := NewWithTimestampKey(slog.New(h), lv, cfg.TimestampFieldName)
	s := cfg.Stream
	if s == nil {
		s = xlogs.AsObservable()
	}
	sub, err := xlogs.Attach(s, ad, cfg.MinLevel)
	if err != nil {
		return nil, nil, err
	}
	return ad, sub, nil
}
