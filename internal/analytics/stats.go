package analytics

import (
	"math"
	"time"

	"github.com/yash-070702/Codash-next/pkg/entity"
)

// CalendarStats derives the full calendar statistics block from a daily
// series. Empty input yields a fully-formed zero state with empty ranges and
// maps rather than an error.
func CalendarStats(series []entity.Submission, now time.Time) entity.CalendarStatistics {
	stats := entity.CalendarStatistics{
		StreakRanges: []entity.StreakRange{},
		MonthlyStats: map[string]entity.PeriodStat{},
		YearlyStats:  map[string]entity.YearlyStat{},
	}
	if len(series) == 0 {
		return stats
	}

	for _, sub := range series {
		stats.TotalSubmissions += sub.Count
		if sub.Count > 0 {
			stats.TotalActiveDays++
		}
		if sub.Count > stats.MaxSubmissionsInDay {
			stats.MaxSubmissionsInDay = sub.Count
		}
	}
	if stats.TotalActiveDays > 0 {
		stats.AverageSubmissionsPerDay = round2(float64(stats.TotalSubmissions) / float64(stats.TotalActiveDays))
	}

	streaks := Streaks(series, now)
	stats.CurrentStreak = streaks.CurrentStreak
	stats.LongestStreak = streaks.LongestStreak
	stats.StreakRanges = streaks.StreakRanges
	stats.MonthlyStats = MonthlyRollup(series)
	stats.YearlyStats = YearlyRollup(series)
	return stats
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
