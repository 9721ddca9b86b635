package xlogs

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trickstertwo/xclock"
)

func TestNewEventDefaults(t *testing.T) {
	// Freeze time for determinism; not parallel, the default clock is global.
	old := xclock.Default()
	defer xclock.SetDefault(old)
	ft := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(ft))

	e := NewEvent()
	assert.Equal(t, "unknown", e.Logger)
	assert.Equal(t, LevelNone, e.Level)
	assert.Equal(t, "", e.Message)
	assert.Nil(t, e.Err)
	assert.True(t, e.Datetime.Equal(ft))
}

func TestNewEventOptions(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	e := NewEvent(WithLogger("db"), WithLevel(LevelError), WithError(errors.New("conn reset")), WithDatetime(at))
	assert.Equal(t, "db", e.Logger)
	assert.Equal(t, LevelError, e.Level)
	assert.Equal(t, "conn reset", e.Message)
	assert.EqualError(t, e.Err, "conn reset")
	assert.Equal(t, at, e.Datetime)

	// An explicit message wins over the error text.
	e = NewEvent(WithMessage("query failed"), WithError(errors.New("conn reset")))
	assert.Equal(t, "query failed", e.Message)

	// No validation at construction time.
	e = NewEvent(WithLevel("LOUD"))
	assert.Equal(t, Level("LOUD"), e.Level)
}

func TestEventFormat(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	e := Event{Logger: "svc", Level: LevelWarn, Message: "m", Datetime: at}

	assert.Equal(t, "WARN: m", e.Format("%level%: %message%"))
	assert.Equal(t, "2024-12-31T23:59:59.123Z WARN [svc]: m", e.String())
	assert.Equal(t, e.String(), e.Format(""))
	assert.Equal(t, "%foo% svc", e.Format("%foo% %logger%"), "unknown tokens are untouched")
	assert.Equal(t, "WARN WARN", e.Format("%level% %level%"), "every occurrence is replaced")
	assert.Equal(t, "plain", e.Format("plain"))
}

func TestEventFormatDatetimeIsUTC(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+2", 2*60*60)
	e := Event{Datetime: time.Date(2025, 3, 1, 10, 0, 0, 5_000_000, loc)}
	assert.Equal(t, "2025-03-01T08:00:00.005Z", e.Format("%datetime%"))
}

func TestEventFormatFallsBackToErr(t *testing.T) {
	t.Parallel()

	e := Event{Level: LevelError, Err: errors.New("boom")}
	assert.Equal(t, "ERROR boom", e.Format("%level% %message%"))
}
