package analytics

import (
	"time"

	"github.com/yash-070702/Codash-next/pkg/entity"
)

// Metrics derives the activity-pattern block from a dense daily series. The
// series length is the "total days in range" used for density percentages, so
// callers should pass the filled series, not a sparse active-only list.
func Metrics(series []entity.Submission, now time.Time) entity.ActivityMetrics {
	m := entity.ActivityMetrics{
		WeeklyPattern: emptyWeeklyPattern(),
	}
	if len(series) == 0 {
		return m
	}

	for _, sub := range series {
		if sub.Count <= 0 {
			continue
		}
		m.TotalActiveDays++
		m.TotalProblems += sub.Count
		if sub.Count > m.MaxProblemsInDay {
			m.MaxProblemsInDay = sub.Count
		}
		d, err := time.ParseInLocation(DateLayout, sub.Date, time.UTC)
		if err != nil {
			continue
		}
		m.WeeklyPattern[int(d.Weekday())] += sub.Count
	}

	if m.TotalActiveDays > 0 {
		m.AverageProblemsPerDay = round2(float64(m.TotalProblems) / float64(m.TotalActiveDays))
	}
	m.ActiveDaysPercentage = round1(float64(m.TotalActiveDays) / float64(len(series)) * 100)

	streaks := Streaks(series, now)
	m.CurrentStreak = streaks.CurrentStreak
	m.MaxStreak = streaks.LongestStreak

	// Ties resolve to the earlier weekday, matching a left-to-right reduction.
	best := 0
	for day := 1; day < 7; day++ {
		if m.WeeklyPattern[day] > m.WeeklyPattern[best] {
			best = day
		}
	}
	m.MostActiveDay = time.Weekday(best).String()
	m.WeekendActivity = m.WeeklyPattern[0] + m.WeeklyPattern[6]
	for day := 1; day <= 5; day++ {
		m.WeekdayActivity += m.WeeklyPattern[day]
	}

	m.ConsistencyScore = ConsistencyScore(m.TotalActiveDays, len(series), m.MaxStreak)
	return m
}

// ConsistencyScore blends activity density with a streak bonus capped at 20
// points (reached at a 30-day streak), bounded to [0, 100] and rounded to one
// decimal.
func ConsistencyScore(activeDays, totalDays, maxStreak int) float64 {
	if totalDays <= 0 {
		return 0
	}
	activityRate := float64(activeDays) / float64(totalDays) * 100
	streakBonus := min(float64(maxStreak)/30, 1) * 20
	return round1(min(activityRate+streakBonus, 100))
}

func emptyWeeklyPattern() map[int]int {
	pattern := make(map[int]int, 7)
	for day := 0; day < 7; day++ {
		pattern[day] = 0
	}
	return pattern
}
