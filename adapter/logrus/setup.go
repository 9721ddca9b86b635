package logrusadapter

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/trickstertwo/xlogs"
)

// Config is an explicit, code-first configuration for logrus + xlogs.
type Config struct {
	Writer          io.Writer     // default: os.Stdout
	Stream          *xlogs.Stream // default: xlogs.AsObservable()
	MinLevel        xlogs.Level   // default: ALL
	Text            bool          // logrus.TextFormatter instead of JSON
	TimestampFormat string        // default time.RFC3339Nano
}

// Use builds a logrus-backed adapter from Config and subscribes it to
// cfg.Stream.
func Use(cfg Config) (*Adapter, *xlogs.Subscription, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.MinLevel == "" {
		cfg.MinLevel = xlogs.LevelAll
	}
	tf := cfg.TimestampFormat
	if tf == "" {
		tf = time.RFC3339Nano
	}

	l := logrus.New()
	l.SetOutput(w)
	if cfg.Text {
		l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true, TimestampFormat: tf})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: tf})
	}

	ad := New(l)
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
