package logging

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/mattn/go-runewidth"
)

// maxFieldWidth caps debug field values. Raw model payloads and long queries
// would otherwise flood the terminal.
const maxFieldWidth = 160

// attrString renders a highlighted value unquoted.
func attrString(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return fmt.Sprint(v.Any())
	default:
		return formatValue(v)
	}
}

// formatValue renders a debug field. Times use the console clock and
// durations are rounded to milliseconds, which is the precision provider
// latency is worth reading at.
func formatValue(v slog.Value) string {
	v = v.Resolve()
	switch v.Kind() {
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindDuration:
		return roundDuration(v.Duration()).String()
	case slog.KindTime:
		return v.Time().Local().Format(consoleTimeLayout)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return quoteField(err.Error())
		}
		return quoteField(fmt.Sprint(v.Any()))
	default:
		return quoteField(v.String())
	}
}

func roundDuration(d time.Duration) time.Duration {
	if d < time.Millisecond && d > -time.Millisecond {
		return d
	}
	return d.Round(time.Millisecond)
}

// quoteField truncates by display width first so wide runes count double.
func quoteField(s string) string {
	s = runewidth.Truncate(s, maxFieldWidth, "…")
	if needsQuotes(s) {
		return strconv.Quote(s)
	}
	return s
}

func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			return true
		}
	}
	return false
}
