// Package analytics turns platform-specific activity records into a canonical
// daily calendar and derived statistics. Every function is a pure
// transformation: no I/O, no shared state, identical inputs give identical
// outputs apart from the explicitly injected clock.
package analytics

import (
	"strconv"
	"strings"
	"time"
)

// Source tags the coding platform a raw record set came from.
type Source string

const (
	SourceLeetCode   Source = "leetcode"
	SourceCodeforces Source = "codeforces"
	SourceCodeChef   Source = "codechef"
	SourceGFG        Source = "gfg"
)

// DateLayout is the canonical ISO day format used for all calendar keys.
const DateLayout = "2006-01-02"

// KnownSource reports whether src is one of the supported platform tags.
func KnownSource(src Source) bool {
	switch src {
	case SourceLeetCode, SourceCodeforces, SourceCodeChef, SourceGFG:
		return true
	}
	return false
}

// Normalize converts a platform-shaped record set into a date -> count map.
// Counts for dates appearing more than once are summed. Entries whose date or
// count cannot be understood are dropped; an unrecognizable container yields an
// empty map, never an error, so downstream stages always get a valid input.
func Normalize(src Source, raw any) map[string]int {
	switch rec := raw.(type) {
	case map[string]any:
		// LeetCode calendars are keyed by epoch seconds; the per-day object
		// calendars of the other platforms are keyed by ISO date (CodeChef
		// mirrors sometimes fall back to epoch keys, which fromDailyCalendar
		// also understands).
		if src == SourceLeetCode {
			return fromEpochCalendar(rec)
		}
		return fromDailyCalendar(rec)
	case []any:
		return fromSubmissionEvents(rec)
	}
	return map[string]int{}
}

// fromEpochCalendar handles { "<epochSeconds>": count } calendars. Dates are
// taken as the UTC calendar day of the timestamp.
func fromEpochCalendar(rec map[string]any) map[string]int {
	out := make(map[string]int, len(rec))
	for key, val := range rec {
		sec, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		count, ok := asCount(val)
		if !ok {
			continue
		}
		day := time.Unix(sec, 0).UTC().Format(DateLayout)
		out[day] += count
	}
	return out
}

// fromDailyCalendar handles { "YYYY-MM-DD": count-or-object } calendars. Object
// values are probed for count, problemsSolved, submissions and solved, in that
// order. Epoch-second keys are accepted as well.
func fromDailyCalendar(rec map[string]any) map[string]int {
	out := make(map[string]int, len(rec))
	for key, val := range rec {
		day, ok := parseDay(key)
		if !ok {
			continue
		}
		count, ok := dayCount(val)
		if !ok {
			continue
		}
		out[day] += count
	}
	return out
}

// fromSubmissionEvents handles one-row-per-submission arrays. Each row is
// probed for date, timestamp and time fields; rows without a usable date are
// dropped. Every row counts as one submission on its UTC calendar day.
func fromSubmissionEvents(rec []any) map[string]int {
	out := make(map[string]int)
	for _, row := range rec {
		ev, ok := row.(map[string]any)
		if !ok {
			continue
		}
		day, ok := eventDay(ev)
		if !ok {
			continue
		}
		out[day]++
	}
	return out
}

func eventDay(ev map[string]any) (string, bool) {
	for _, field := range []string{"date", "timestamp", "time"} {
		val, exists := ev[field]
		if !exists {
			continue
		}
		switch v := val.(type) {
		case string:
			if day, ok := parseDay(v); ok {
				return day, true
			}
		default:
			if sec, ok := asEpoch(val); ok {
				return time.Unix(sec, 0).UTC().Format(DateLayout), true
			}
		}
	}
	return "", false
}

// parseDay normalizes a raw date key to YYYY-MM-DD. ISO timestamps are cut at
// the day, digit-only keys are treated as epoch seconds.
func parseDay(key string) (string, bool) {
	if sec, err := strconv.ParseInt(key, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC().Format(DateLayout), true
	}
	day, _, _ := strings.Cut(key, "T")
	if _, err := time.Parse(DateLayout, day); err != nil {
		return "", false
	}
	return day, true
}

func dayCount(val any) (int, bool) {
	if obj, ok := val.(map[string]any); ok {
		for _, field := range []string{"count", "problemsSolved", "submissions", "solved"} {
			if v, exists := obj[field]; exists {
				if count, ok := asCount(v); ok {
					return count, true
				}
			}
		}
		return 0, false
	}
	return asCount(val)
}

// asCount coerces the numeric shapes JSON decoding produces into an int.
// Negative values are rejected.
func asCount(val any) (int, bool) {
	var n int
	switch v := val.(type) {
	case float64:
		n = int(v)
	case int:
		n = v
	case int64:
		n = int(v)
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	if n < 0 {
		return 0, false
	}
	return n, true
}

func asEpoch(val any) (int64, bool) {
	switch v := val.(type) {
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case string:
		sec, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, false
		}
		return sec, true
	}
	return 0, false
}
