package zerologadapter

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xlogs"
)

// Config is an explicit, code-first configuration for zerolog + xlogs.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer             io.Writer     // default: os.Stdout
	Stream             *xlogs.Stream // default: xlogs.AsObservable()
	MinLevel           xlogs.Level   // default: ALL
	Console            bool          // pretty console output instead of JSON
	ConsoleTimeFormat  string        // only used if Console==true; default time.RFC3339Nano
	TimestampFieldName string        // default "ts"; Console mode uses zerolog.TimestampFieldName
}

// Use builds a zerolog-backed adapter from Config and subscribes it to
// cfg.Stream.
func Use(cfg Config) (*Adapter, *xlogs.Subscription, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.MinLevel == "" {
		cfg.MinLevel = xlogs.LevelAll
	}
	tsKey := cfg.TimestampFieldName

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		// The console writer reads its leading column from the global key.
		tsKey = zerolog.TimestampFieldName
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}

	ad := NewWithTimestampKey(zl, tsKey)
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
