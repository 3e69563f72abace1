package analytics

import (
	"sort"
	"time"

	"github.com/yash-070702/Codash-next/pkg/entity"
)

// FillRange expands a normalized date -> count map into a dense, ascending
// daily series over [start, end] inclusive, defaulting absent dates to zero.
// The result always has exactly daysBetween(start, end)+1 entries; filling an
// already dense series again yields the identical series.
func FillRange(counts map[string]int, start, end time.Time) []entity.DailyActivity {
	start = truncateDay(start)
	end = truncateDay(end)
	if end.Before(start) {
		return []entity.DailyActivity{}
	}

	out := make([]entity.DailyActivity, 0, daysBetween(start, end)+1)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		count := counts[d.Format(DateLayout)]
		out = append(out, entity.DailyActivity{
			Date:      d.Format(DateLayout),
			Count:     count,
			Intensity: Intensity(count),
			DayOfWeek: int(d.Weekday()),
			// Column placement only: resets at the range start, so series
			// filled over different ranges are not index-comparable.
			Week:    daysBetween(start, d) / 7,
			Month:   int(d.Month()),
			Day:     d.Day(),
			Year:    d.Year(),
			InRange: true,
		})
	}
	return out
}

// Span derives the earliest and latest activity dates of a normalized map, so
// a union of partial per-year fetches still produces one contiguous range.
func Span(counts map[string]int) (start, end time.Time, ok bool) {
	for date := range counts {
		d, err := time.ParseInLocation(DateLayout, date, time.UTC)
		if err != nil {
			continue
		}
		if !ok {
			start, end, ok = d, d, true
			continue
		}
		if d.Before(start) {
			start = d
		}
		if d.After(end) {
			end = d
		}
	}
	return start, end, ok
}

// YearSpan is the inclusive calendar range of one year.
func YearSpan(year int) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return start, end
}

// ActiveYears lists the distinct years with at least one data point, ascending.
func ActiveYears(counts map[string]int) []int {
	seen := make(map[int]bool)
	for date := range counts {
		d, err := time.ParseInLocation(DateLayout, date, time.UTC)
		if err != nil {
			continue
		}
		seen[d.Year()] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from) / (24 * time.Hour))
}
