package zapadapter

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/xlogs"
)

// Config is an explicit, code-first configuration for zap + xlogs.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer             io.Writer             // default: os.Stdout
	Stream             *xlogs.Stream         // default: xlogs.AsObservable()
	MinLevel           xlogs.Level           // default: ALL
	Console            bool                  // console-like output via zapcore.NewConsoleEncoder
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	TimestampFieldName string                // default "ts"
}

// Use builds a zap-backed adapter from Config and subscribes it to
// cfg.Stream. zap never adds its own time field; the event's Datetime is
// written instead.
func Use(cfg Config) (*Adapter, *xlogs.Subscription, error) {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.MinLevel == "" {
		cfg.MinLevel = xlogs.LevelAll
	}

	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" && encCfg.EncodeLevel == nil {
		encCfg = zapcore.EncoderConfig{
			LevelKey:       "level",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}
	// Ensure zap itself doesn't add an extra time field
	encCfg.TimeKey = ""

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	// Use AtomicLevel so Adapter.SetMinLevel can adjust dynamically.
	al := zap.NewAtomicLevelAt(zapcore.DebugLevel)
	core := zapcore.NewCore(enc, zapcore.AddSync(w), al)
	zl := zap.New(core, zap.AddStacktrace(zapcore.FatalLevel+1))

	ad := NewWithTimestampKey(zl, &al, cfg.TimestampFieldName)
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
