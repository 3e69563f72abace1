package analytics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yash-070702/Codash-next/internal/analytics"
)

func TestFillRange(t *testing.T) {
	t.Parallel()
	counts := map[string]int{
		"2024-01-01": 3,
		"2024-01-02": 5,
		"2024-01-03": 0,
		"2024-01-05": 2,
	}
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)

	filled := analytics.FillRange(counts, start, end)
	require.Len(t, filled, 5)

	assert.Equal(t, "2024-01-01", filled[0].Date)
	assert.Equal(t, 3, filled[0].Count)
	assert.Equal(t, 2, filled[0].Intensity)
	assert.Equal(t, int(time.Monday), filled[0].DayOfWeek)
	assert.True(t, filled[0].InRange)

	// Absent date materialized as an explicit zero.
	assert.Equal(t, "2024-01-04", filled[3].Date)
	assert.Equal(t, 0, filled[3].Count)
	assert.Equal(t, 0, filled[3].Intensity)

	assert.Equal(t, "2024-01-05", filled[4].Date)
	assert.Equal(t, 2, filled[4].Count)
}

func TestFillRangeIdempotent(t *testing.T) {
	t.Parallel()
	counts := map[string]int{
		"2024-02-10": 4,
		"2024-02-14": 1,
	}
	start := time.Date(2024, time.February, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 16, 0, 0, 0, 0, time.UTC)

	first := analytics.FillRange(counts, start, end)
	dense := make(map[string]int, len(first))
	for _, day := range first {
		dense[day.Date] = day.Count
	}
	second := analytics.FillRange(dense, start, end)
	assert.Equal(t, first, second)
}

func TestFillRangeWeekIndex(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)

	filled := analytics.FillRange(map[string]int{}, start, end)
	require.Len(t, filled, 15)
	for i, day := range filled {
		assert.Equal(t, i/7, day.Week, "day %s", day.Date)
	}
}

func TestFillRangeEmptyWhenEndBeforeStart(t *testing.T) {
	t.Parallel()
	start := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)
	filled := analytics.FillRange(map[string]int{"2024-05-09": 3}, start, start.AddDate(0, 0, -1))
	assert.NotNil(t, filled)
	assert.Empty(t, filled)
}

func TestSpan(t *testing.T) {
	t.Parallel()
	start, end, ok := analytics.Span(map[string]int{
		"2023-06-01": 1,
		"2024-02-29": 2,
		"2023-11-11": 3,
	})
	require.True(t, ok)
	assert.Equal(t, time.Date(2023, time.June, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), end)

	_, _, ok = analytics.Span(map[string]int{})
	assert.False(t, ok)
}

func TestActiveYears(t *testing.T) {
	t.Parallel()
	years := analytics.ActiveYears(map[string]int{
		"2024-01-01": 1,
		"2022-07-04": 2,
		"2024-12-31": 3,
	})
	assert.Equal(t, []int{2022, 2024}, years)

	assert.Empty(t, analytics.ActiveYears(map[string]int{}))
}
