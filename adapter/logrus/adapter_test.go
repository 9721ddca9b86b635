package logrusadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trickstertwo/xlogs"
)

func newTestLogrus(buf *bytes.Buffer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(buf)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	l.SetLevel(logrus.TraceLevel)
	return l
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), "line=%s", buf.String())
	return m
}

func TestLogrusAdapter_ErrorEntry(t *testing.T) {
	var buf bytes.Buffer
	a := New(newTestLogrus(&buf))

	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	a.OnEvent(xlogs.Event{
		Logger:   "billing",
		Level:    xlogs.LevelError,
		Message:  "charge failed",
		Err:      errors.New("card declined"),
		Datetime: at,
	})

	m := decode(t, &buf)
	assert.Equal(t, "error", m["level"])
	assert.Equal(t, "charge failed", m["msg"])
	assert.Equal(t, "billing", m["logger"])
	assert.Equal(t, "card declined", m["error"])
	assert.Equal(t, at.Format(time.RFC3339Nano), m["time"])
}

func TestLogrusAdapter_LevelMapping(t *testing.T) {
	cases := map[xlogs.Level]string{
		xlogs.LevelTrace: "trace",
		xlogs.LevelDebug: "debug",
		xlogs.LevelInfo:  "info",
		xlogs.LevelWarn:  "warning",
		xlogs.LevelNone:  "info",
	}
	for in, want := range cases {
		var buf bytes.Buffer
		New(newTestLogrus(&buf)).OnEvent(xlogs.Event{Logger: "x", Level: in, Message: "m"})
		assert.Equal(t, want, decode(t, &buf)["level"], "level %s", in)
	}
}

func TestLogrusAdapter_SetMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogrus(&buf)
	a := New(l)

	a.SetMinLevel(xlogs.LevelWarn)
	assert.Equal(t, logrus.WarnLevel, l.GetLevel())
	a.OnEvent(xlogs.Event{Logger: "x", Level: xlogs.LevelInfo, Message: "dropped"})
	assert.Zero(t, buf.Len())

	a.SetMinLevel(xlogs.LevelNone)
	a.OnEvent(xlogs.Event{Logger: "x", Level: xlogs.LevelError, Message: "dropped"})
	assert.Zero(t, buf.Len())

	a.SetMinLevel(xlogs.LevelAll)
	assert.Equal(t, logrus.TraceLevel, l.GetLevel())
}

func TestUse_TextFormatter(t *testing.T) {
	reg := xlogs.NewRegistry()
	var buf bytes.Buffer
	_, sub, err := Use(Config{Writer: &buf, Stream: reg.AsObservable(), MinLevel: xlogs.LevelInfo, Text: true})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	reg.MustGet("svc").Debug("hidden").Info("ready on %d", 8080)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="ready on 8080"`)
	assert.Contains(t, out, "logger=svc")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestUse_RejectsInvalidLevel(t *testing.T) {
	_, _, err := Use(Config{Writer: &bytes.Buffer{}, Stream: xlogs.NewRegistry().AsObservable(), MinLevel: "chatty"})
	require.Error(t, err)
	assert.ErrorIs(t, err, xlogs.ErrInvalidLevel)
}
