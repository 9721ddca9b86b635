package xlogs

import (
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects delivered events.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recorder) levels() []Level {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Level, len(r.events))
	for i, e := range r.events {
		out[i] = e.Level
	}
	return out
}

func (r *recorder) loggers() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Logger
	}
	return out
}

// publishEveryLevel emits one event per level, sentinels included.
func publishEveryLevel(b *Bus, logger string) {
	for _, l := range Levels() {
		b.Publish(Event{Logger: logger, Level: l, Message: string(l)})
	}
}

func TestByMinLevel(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	s, err := bus.AsStream().ByMinLevel(LevelWarn)
	require.NoError(t, err)

	rec := &recorder{}
	sub := s.Subscribe(rec)
	defer sub.Unsubscribe()

	for _, l := range baseLevels {
		bus.Publish(Event{Logger: "x", Level: l})
	}
	bus.Publish(Event{Logger: "x", Level: "LOUD"})

	assert.Equal(t, []Level{LevelWarn, LevelError}, rec.levels())
}

func TestByMinLevelSentinels(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	all := &recorder{}
	none := &recorder{}
	defer Must(bus.AsStream().ByMinLevel(LevelAll)).Subscribe(all).Unsubscribe()
	defer Must(bus.AsStream().ByMinLevel("none")).Subscribe(none).Unsubscribe()

	publishEveryLevel(bus, "x")

	assert.Equal(t, Levels(), all.levels())
	assert.Equal(t, []Level{LevelNone}, none.levels())
}

func TestByMinLevelInvalid(t *testing.T) {
	t.Parallel()

	s, err := NewBus().AsStream().ByMinLevel("LOUD")
	assert.Nil(t, s)
	assert.True(t, errors.Is(err, ErrInvalidLevel))
	assert.Panics(t, func() { Must(NewBus().AsStream().ByMinLevel("LOUD")) })
}

func TestByLevels(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	some := &recorder{}
	nothing := &recorder{}
	defer Must(bus.AsStream().ByLevels(LevelInfo, "error", LevelInfo)).Subscribe(some).Unsubscribe()
	defer Must(bus.AsStream().ByLevels()).Subscribe(nothing).Unsubscribe()

	publishEveryLevel(bus, "x")

	assert.Equal(t, []Level{LevelInfo, LevelError}, some.levels())
	assert.Empty(t, nothing.levels())

	_, err := bus.AsStream().ByLevels(LevelInfo, "LOUD")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestByName(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	search := &recorder{}
	anchored := &recorder{}
	compiled := &recorder{}
	defer Must(bus.AsStream().ByName("svc")).Subscribe(search).Unsubscribe()
	defer Must(bus.AsStream().ByName(`^svc\.`)).Subscribe(anchored).Unsubscribe()
	defer Must(bus.AsStream().ByName(regexp.MustCompile(`db$`))).Subscribe(compiled).Unsubscribe()

	for _, name := range []string{"svc.api", "my.svc", "billing.db"} {
		bus.Publish(Event{Logger: name, Level: LevelInfo})
	}

	assert.Equal(t, []string{"svc.api", "my.svc"}, search.loggers())
	assert.Equal(t, []string{"svc.api"}, anchored.loggers())
	assert.Equal(t, []string{"billing.db"}, compiled.loggers())
}

func TestByNameInvalid(t *testing.T) {
	t.Parallel()

	s := NewBus().AsStream()
	for _, p := range []any{42, nil, (*regexp.Regexp)(nil), "(["} {
		_, err := s.ByName(p)
		require.Error(t, err, "pattern %v", p)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, "Parameter `name` must be a string or regular expression.", err.Error())
	}
}

func TestFrom(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level Level
		want  []Level
	}{
		{"warn", LevelWarn, []Level{LevelWarn, LevelError}},
		{"lower case", "debug", []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}},
		{"all", LevelAll, []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}},
		{"none", LevelNone, nil},
		{"invalid", "LOUD", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := NewBus()
			rec := &recorder{}
			defer bus.AsStream().From(tt.level).Subscribe(rec).Unsubscribe()

			publishEveryLevel(bus, "x")
			if tt.want == nil {
				assert.Empty(t, rec.levels())
				return
			}
			assert.Equal(t, tt.want, rec.levels())
		})
	}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		levels []Level
		want   []Level
	}{
		{"dedup and drop invalid", []Level{LevelInfo, "LOUD", "info"}, []Level{LevelInfo}},
		{"all", []Level{LevelAll}, []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError}},
		{"none wins", []Level{LevelInfo, LevelNone}, nil},
		{"empty", nil, nil},
		{"only invalid", []Level{"LOUD"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := NewBus()
			rec := &recorder{}
			defer bus.AsStream().Select(tt.levels...).Subscribe(rec).Unsubscribe()

			publishEveryLevel(bus, "x")
			if tt.want == nil {
				assert.Empty(t, rec.levels())
				return
			}
			assert.Equal(t, tt.want, rec.levels())
		})
	}
}

func TestOperatorsCommute(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	nameFirst := &recorder{}
	levelFirst := &recorder{}

	a := Must(Must(bus.AsStream().ByName("^svc")).ByMinLevel(LevelWarn))
	b := Must(Must(bus.AsStream().ByMinLevel(LevelWarn)).ByName("^svc"))
	defer a.Subscribe(nameFirst).Unsubscribe()
	defer b.Subscribe(levelFirst).Unsubscribe()

	publishEveryLevel(bus, "svc")
	publishEveryLevel(bus, "other")

	assert.Equal(t, nameFirst.events, levelFirst.events)
	assert.Len(t, nameFirst.events, 3) // WARN, ERROR, NONE
}

func TestStreamIsLazy(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	s := Must(bus.AsStream().ByMinLevel(LevelInfo)).Select(LevelError).Map(func(e Event) Event { return e })
	assert.Equal(t, 0, bus.Len())

	sub := s.Subscribe(&recorder{})
	assert.Equal(t, 1, bus.Len())
	sub.Unsubscribe()
	assert.Equal(t, 0, bus.Len())
}

func TestFilterAndMap(t *testing.T) {
	t.Parallel()

	bus := NewBus()
	var got []string
	sub := bus.AsStream().
		Filter(func(e Event) bool { return e.Message != "skip" }).
		Map(func(e Event) Event {
			e.Message = "<" + e.Message + ">"
			return e
		}).
		SubscribeFunc(func(e Event) { got = append(got, e.Message) })
	defer sub.Unsubscribe()

	for _, m := range []string{"a", "skip", "b"} {
		bus.Publish(Event{Logger: "x", Level: LevelInfo, Message: m})
	}
	assert.Equal(t, []string{"<a>", "<b>"}, got)
}

func TestNeverAndNilSubscribers(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	Never().Subscribe(rec).Unsubscribe()
	assert.Empty(t, rec.events)

	s := NewBus().AsStream()
	assert.NotPanics(t, func() {
		s.Subscribe(nil).Unsubscribe()
		s.SubscribeFunc(nil).Unsubscribe()
	})
	assert.Same(t, s, s.Filter(nil))
	assert.Same(t, s, s.Map(nil))
}
