package xlogs

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Sprintf renders a log message with printf-style placeholders:
//
//	%s  value as text          %d  number
//	%i  integer part           %f  floating point
//	%j  JSON                   %o, %O  Go value with field names
//	%%  literal percent sign
//
// A placeholder without a matching argument is kept verbatim and surplus
// arguments are appended, each preceded by a space. When msg is not a string
// every argument, msg included, is rendered and joined with spaces; a nil msg
// is skipped.
//
//	Sprintf("low disk: %s%%", 87)    // "low disk: 87%"
//	Sprintf("user %s", "ann", 42)    // "user ann 42"
func Sprintf(msg any, args ...any) string {
	tmpl, ok := msg.(string)
	if !ok {
		if msg == nil {
			return joinArgs(args)
		}
		return joinArgs(append([]any{msg}, args...))
	}

	var b strings.Builder
	b.Grow(len(tmpl) + 8*len(args))
	next := 0
	for i := 0; i < len(tmpl); i++ {
		c := tmpl[i]
		if c != '%' || i+1 == len(tmpl) {
			b.WriteByte(c)
			continue
		}
		verb := tmpl[i+1]
		switch verb {
		case '%':
			b.WriteByte('%')
			i++
		case 's', 'd', 'i', 'f', 'j', 'o', 'O':
			i++
			if next >= len(args) {
				b.WriteByte('%')
				b.WriteByte(verb)
				continue
			}
			b.WriteString(formatArg(verb, args[next]))
			next++
		default:
			b.WriteByte(c)
		}
	}
	// Surplus arguments always get a separating space, even after an empty
	// template: Sprintf("", "a") is " a".
	if rest := args[next:]; len(rest) > 0 {
		b.WriteByte(' ')
		b.WriteString(joinArgs(rest))
	}
	return b.String()
}

func joinArgs(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}

func formatArg(verb byte, arg any) string {
	switch verb {
	case 's':
		return fmt.Sprint(arg)
	case 'd':
		f, ok := toFloat(arg)
		if !ok {
			return "NaN"
		}
		return formatNumber(f)
	case 'i':
		f, ok := toFloat(arg)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return "NaN"
		}
		return formatNumber(math.Trunc(f))
	case 'f':
		f, ok := toFloat(arg)
		if !ok {
			return "NaN"
		}
		return formatNumber(f)
	case 'j':
		out, err := json.Marshal(arg)
		if err != nil {
			return "[Unserializable]"
		}
		return string(out)
	default: // 'o', 'O'
		return fmt.Sprintf("%+v", arg)
	}
}

func toFloat(arg any) (float64, bool) {
	switch v := arg.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func formatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
