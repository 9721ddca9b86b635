package zerologadapter

import (
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/xlogs"
)

func benchAdapter(b *testing.B, zl zerolog.Logger, ev xlogs.Event) {
	a := New(zl)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.OnEvent(ev)
	}
}

func BenchmarkZerologAdapter_JSON(b *testing.B) {
	benchAdapter(b, zerolog.New(io.Discard), xlogs.Event{
		Logger:   "bench",
		Level:    xlogs.LevelInfo,
		Message:  "bench",
		Datetime: time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC),
	})
}

func BenchmarkZerologAdapter_Disabled(b *testing.B) {
	zl := zerolog.New(io.Discard).Level(zerolog.ErrorLevel)
	benchAdapter(b, zl, xlogs.Event{Logger: "bench", Level: xlogs.LevelDebug, Message: "bench"})
}
