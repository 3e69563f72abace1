package analytics

import (
	"sort"
	"time"

	"github.com/yash-070702/Codash-next/pkg/entity"
)

// streakRangeLimit caps the ranges returned to consumers.
const streakRangeLimit = 10

type StreakStats struct {
	CurrentStreak int
	LongestStreak int
	StreakRanges  []entity.StreakRange
}

// Streaks computes the current streak (anchored to now, not the last data
// point), the longest streak ever, and the top ranges of consecutive active
// days. The input may be a dense filled series or a sparse active-only list;
// zero-count and absent days are treated identically.
//
// A streak that was active yesterday but not yet today still counts as
// current, so a dashboard checked early in the day never shows a false break.
func Streaks(series []entity.Submission, now time.Time) StreakStats {
	active := activeDays(series)
	if len(active) == 0 {
		return StreakStats{StreakRanges: []entity.StreakRange{}}
	}

	today := truncateDay(now)
	last := active[len(active)-1]

	current := 0
	if daysBetween(last, today) <= 1 {
		current = 1
		for i := len(active) - 2; i >= 0; i-- {
			if daysBetween(active[i], active[i+1]) != 1 {
				break
			}
			current++
		}
	}

	longest := 0
	ranges := make([]entity.StreakRange, 0)
	runStart := 0
	for i := 1; i <= len(active); i++ {
		if i < len(active) && daysBetween(active[i-1], active[i]) == 1 {
			continue
		}
		length := i - runStart
		if length > longest {
			longest = length
		}
		if length >= 2 {
			ranges = append(ranges, entity.StreakRange{
				Start:  active[runStart].Format(DateLayout),
				End:    active[i-1].Format(DateLayout),
				Length: length,
			})
		}
		runStart = i
	}

	// Ties keep scan order.
	sort.SliceStable(ranges, func(i, j int) bool { return ranges[i].Length > ranges[j].Length })
	if len(ranges) > streakRangeLimit {
		ranges = ranges[:streakRangeLimit]
	}

	return StreakStats{
		CurrentStreak: current,
		LongestStreak: longest,
		StreakRanges:  ranges,
	}
}

// activeDays extracts the dates with count > 0, parsed and sorted ascending.
func activeDays(series []entity.Submission) []time.Time {
	days := make([]time.Time, 0, len(series))
	for _, sub := range series {
		if sub.Count <= 0 {
			continue
		}
		d, err := time.ParseInLocation(DateLayout, sub.Date, time.UTC)
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}
