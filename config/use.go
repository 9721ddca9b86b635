package config

import (
	"fmt"
	"io"
	"os"

	"github.com/trickstertwo/xlogs"
	logrusadapter "github.com/trickstertwo/xlogs/adapter/logrus"
	slogadapter "github.com/trickstertwo/xlogs/adapter/slog"
	"github.com/trickstertwo/xlogs/adapter/writer"
	zapadapter "github.com/trickstertwo/xlogs/adapter/zap"
	zerologadapter "github.com/trickstertwo/xlogs/adapter/zerolog"
)

// Use filters s (the default stream when nil) by cfg.Name, cfg.Levels and
// cfg.MinLevel and subscribes the backend named by cfg.Backend. Call Sync on
// the returned adapter before exit, then Unsubscribe.
func Use(cfg *Config, s *xlogs.Stream) (xlogs.Adapter, *xlogs.Subscription, error) {
	if err := Validate(cfg); err != nil {
		return nil, nil, err
	}
	w := io.Writer(os.Stdout)
	if cfg.Output == OutputStderr {
		w = os.Stderr
	}
	return use(cfg, s, w)
}

func use(cfg *Config, s *xlogs.Stream, w io.Writer) (xlogs.Adapter, *xlogs.Subscription, error) {
	if s == nil {
		s = xlogs.AsObservable()
	}
	if cfg.Name != "" {
		var err error
		if s, err = s.ByName(cfg.Name); err != nil {
			return nil, nil, err
		}
	}
	if len(cfg.Levels) > 0 {
		levels := make([]xlogs.Level, len(cfg.Levels))
		for i, l := range cfg.Levels {
			levels[i] = xlogs.Level(l)
		}
		s = s.Select(levels...)
	}
	minLevel, err := xlogs.ParseLevel(cfg.MinLevel)
	if err != nil {
		return nil, nil, err
	}

	var (
		a   xlogs.Adapter
		sub *xlogs.Subscription
	)
	switch cfg.Backend {
	case BackendZerolog:
		var ad *zerologadapter.Adapter
		ad, sub, err = zerologadapter.Use(zerologadapter.Config{Writer: w, Stream: s, MinLevel: minLevel, Console: cfg.Console})
		a = ad
	case BackendZap:
		var ad *zapadapter.Adapter
		ad, sub, err = zapadapter.Use(zapadapter.Config{Writer: w, Stream: s, MinLevel: minLevel, Console: cfg.Console})
		a = ad
	case BackendSlog:
		format := slogadapter.FormatJSON
		if cfg.Console {
			format = slogadapter.FormatText
		}
		var ad *slogadapter.Adapter
		ad, sub, err = slogadapter.Use(slogadapter.Config{Writer: w, Stream: s, MinLevel: minLevel, Format: format})
		a = ad
	case BackendLogrus:
		var ad *logrusadapter.Adapter
		ad, sub, err = logrusadapter.Use(logrusadapter.Config{Writer: w, Stream: s, MinLevel: minLevel, Text: cfg.Console})
		a = ad
	case BackendWriter:
		var ad *writer.Adapter
		ad, sub, err = writer.Use(writer.Config{
			Writer:       w,
			Stream:       s,
			Layout:       cfg.Layout,
			MinLevel:     minLevel,
			MaxPerSecond: cfg.MaxPerSecond,
		})
		a = ad
	default:
		return nil, nil, &ConfigError{Field: "backend", Message: fmt.Sprintf("unknown backend %q", cfg.Backend)}
	}
	// A nil concrete adapter must not leak out as a non-nil interface.
	if err != nil {
		return nil, nil, err
	}
	return a, sub, nil
}
