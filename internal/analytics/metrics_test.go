package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yash-070702/Codash-next/internal/analytics"
	"github.com/yash-070702/Codash-next/pkg/entity"
)

func TestMetrics(t *testing.T) {
	t.Parallel()
	// 2024-01-01 is a Monday.
	series := []entity.Submission{
		{Date: "2024-01-01", Count: 3},
		{Date: "2024-01-02", Count: 5},
		{Date: "2024-01-03", Count: 0},
		{Date: "2024-01-04", Count: 0},
		{Date: "2024-01-05", Count: 2},
	}
	now := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)

	m := analytics.Metrics(series, now)
	assert.Equal(t, 3, m.TotalActiveDays)
	assert.Equal(t, 10, m.TotalProblems)
	assert.Equal(t, 5, m.MaxProblemsInDay)
	assert.Equal(t, 3.33, m.AverageProblemsPerDay)
	assert.Equal(t, 60.0, m.ActiveDaysPercentage)
	assert.Equal(t, 0, m.CurrentStreak)
	assert.Equal(t, 2, m.MaxStreak)

	assert.Equal(t, 3, m.WeeklyPattern[int(time.Monday)])
	assert.Equal(t, 5, m.WeeklyPattern[int(time.Tuesday)])
	assert.Equal(t, 2, m.WeeklyPattern[int(time.Friday)])
	assert.Equal(t, 0, m.WeeklyPattern[int(time.Sunday)])

	assert.Equal(t, "Tuesday", m.MostActiveDay)
	assert.Equal(t, 0, m.WeekendActivity)
	assert.Equal(t, 10, m.WeekdayActivity)

	// 60% activity rate plus the 2/30 streak bonus.
	assert.Equal(t, 61.3, m.ConsistencyScore)
}

func TestMetricsMostActiveDayTie(t *testing.T) {
	t.Parallel()
	series := []entity.Submission{
		{Date: "2024-01-01", Count: 3}, // Monday
		{Date: "2024-01-02", Count: 3}, // Tuesday
	}
	m := analytics.Metrics(series, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Monday", m.MostActiveDay)
}

func TestMetricsWeekendSplit(t *testing.T) {
	t.Parallel()
	series := []entity.Submission{
		{Date: "2024-01-06", Count: 4}, // Saturday
		{Date: "2024-01-07", Count: 2}, // Sunday
		{Date: "2024-01-08", Count: 1}, // Monday
	}
	m := analytics.Metrics(series, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 6, m.WeekendActivity)
	assert.Equal(t, 1, m.WeekdayActivity)
	assert.Equal(t, "Saturday", m.MostActiveDay)
}

func TestMetricsEmpty(t *testing.T) {
	t.Parallel()
	m := analytics.Metrics(nil, time.Now())
	assert.Equal(t, 0, m.TotalActiveDays)
	assert.Equal(t, 0.0, m.ConsistencyScore)
	assert.Len(t, m.WeeklyPattern, 7)
	for day := 0; day < 7; day++ {
		assert.Equal(t, 0, m.WeeklyPattern[day])
	}
}

func TestConsistencyScore(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc       string
		ActiveDays int
		TotalDays  int
		MaxStreak  int
		Expected   float64
	}{
		{Desc: "zero range", ActiveDays: 0, TotalDays: 0, MaxStreak: 0, Expected: 0},
		{Desc: "no activity", ActiveDays: 0, TotalDays: 100, MaxStreak: 0, Expected: 0},
		{Desc: "half active no streak bonus", ActiveDays: 50, TotalDays: 100, MaxStreak: 0, Expected: 50},
		{Desc: "streak bonus saturates at 30 days", ActiveDays: 50, TotalDays: 100, MaxStreak: 90, Expected: 70},
		{Desc: "capped at 100", ActiveDays: 100, TotalDays: 100, MaxStreak: 60, Expected: 100},
		{Desc: "partial streak bonus", ActiveDays: 30, TotalDays: 100, MaxStreak: 15, Expected: 40},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			got := analytics.ConsistencyScore(tc.ActiveDays, tc.TotalDays, tc.MaxStreak)
			assert.Equal(t, tc.Expected, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}
