package xlogs

import (
	"fmt"
	"strings"
)

// Level names a logging severity. Levels are totally ordered:
//
//	ALL < TRACE < DEBUG < INFO < WARN < ERROR < NONE
//
// ALL and NONE are sentinels used only for filtering; emitted events always
// carry one of the five base levels.
type Level string

const (
	LevelAll   Level = "ALL"
	LevelTrace Level = "TRACE" // extremely detailed information, like object dumps
	LevelDebug Level = "DEBUG" // detailed information on the execution flow
	LevelInfo  Level = "INFO"  // interesting lifecycle events
	LevelWarn  Level = "WARN"  // deprecated APIs, almost-errors, unexpected events
	LevelError Level = "ERROR" // runtime errors and unexpected conditions
	LevelNone  Level = "NONE"
)

// order is fixed at process start and never mutated.
var order = [...]Level{LevelAll, LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelNone}

// baseLevels are the levels an emitted event can carry.
var baseLevels = order[1 : len(order)-1]

// Levels returns the level order, sentinels included.
func Levels() []Level {
	out := make([]Level, len(order))
	copy(out, order[:])
	return out
}

func (l Level) String() string { return string(l) }

// Index returns the position of l in the level order, or -1 when l is not a
// recognized level. Index does not normalize; use ParseLevel for user input.
func (l Level) Index() int {
	for i, o := range order {
		if o == l {
			return i
		}
	}
	return -1
}

// ParseLevel coerces input to a string, trims it, upper-cases it and checks it
// against the level order. It fails with an *InvalidLevelError.
func ParseLevel(input any) (Level, error) {
	if lvl, ok := normalize(input); ok {
		return lvl, nil
	}
	return "", &InvalidLevelError{Input: fmt.Sprint(input)}
}

// IsValidLevel reports whether input names a level, using the same
// normalization as ParseLevel.
func IsValidLevel(input any) bool {
	_, ok := normalize(input)
	return ok
}

func normalize(input any) (Level, bool) {
	var s string
	switch v := input.(type) {
	case Level:
		s = string(v)
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	lvl := Level(strings.ToUpper(strings.TrimSpace(s)))
	return lvl, lvl.Index() >= 0
}
