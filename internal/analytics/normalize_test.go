package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yash-070702/Codash-next/internal/analytics"
)

func TestNormalizeEpochCalendar(t *testing.T) {
	t.Parallel()
	// 1704067200 = 2024-01-01T00:00:00Z, 1704153600 = 2024-01-02T00:00:00Z
	raw := map[string]any{
		"1704067200": float64(3),
		"1704070800": float64(2), // same UTC day, one hour later
		"1704153600": float64(5),
		"not-a-ts":   float64(9),
		"1704240000": "oops",
	}
	counts := analytics.Normalize(analytics.SourceLeetCode, raw)
	assert.Equal(t, map[string]int{
		"2024-01-01": 5,
		"2024-01-02": 5,
	}, counts)
}

func TestNormalizeDailyCalendar(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Raw      any
		Expected map[string]int
	}{
		{
			Desc: "plain numbers",
			Raw: map[string]any{
				"2024-03-01": float64(2),
				"2024-03-02": float64(4),
			},
			Expected: map[string]int{"2024-03-01": 2, "2024-03-02": 4},
		},
		{
			Desc: "field priority order",
			Raw: map[string]any{
				"2024-03-01": map[string]any{"count": float64(7), "solved": float64(1)},
				"2024-03-02": map[string]any{"problemsSolved": float64(3)},
				"2024-03-03": map[string]any{"submissions": float64(2)},
				"2024-03-04": map[string]any{"solved": float64(1)},
			},
			Expected: map[string]int{
				"2024-03-01": 7,
				"2024-03-02": 3,
				"2024-03-03": 2,
				"2024-03-04": 1,
			},
		},
		{
			Desc: "malformed entries dropped",
			Raw: map[string]any{
				"2024-03-01":  float64(2),
				"not-a-date":  float64(5),
				"2024-03-02":  map[string]any{"unknown": float64(5)},
				"2024-03-03":  "three",
				"2024-13-40":  float64(1),
				"2024-03-04T12:00:00Z": float64(6),
			},
			Expected: map[string]int{"2024-03-01": 2, "2024-03-04": 6},
		},
		{
			Desc:     "epoch keys accepted",
			Raw:      map[string]any{"1704067200": float64(4)},
			Expected: map[string]int{"2024-01-01": 4},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			counts := analytics.Normalize(analytics.SourceGFG, tc.Raw)
			assert.Equal(t, tc.Expected, counts)
		})
	}
}

func TestNormalizeSubmissionEvents(t *testing.T) {
	t.Parallel()
	raw := []any{
		map[string]any{"timestamp": float64(1704067200)},
		map[string]any{"timestamp": float64(1704070800)},
		map[string]any{"date": "2024-01-02T09:30:00Z"},
		map[string]any{"date": "2024-01-02"},
		map[string]any{"time": float64(1704326400)}, // 2024-01-04
		map[string]any{"comment": "no usable field"},
		"not an event",
	}
	counts := analytics.Normalize(analytics.SourceCodeforces, raw)
	assert.Equal(t, map[string]int{
		"2024-01-01": 2,
		"2024-01-02": 2,
		"2024-01-04": 1,
	}, counts)
}

func TestNormalizeUnrecognizableContainer(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc string
		Raw  any
	}{
		{Desc: "nil", Raw: nil},
		{Desc: "string", Raw: "garbage"},
		{Desc: "number", Raw: float64(42)},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			counts := analytics.Normalize(analytics.SourceCodeChef, tc.Raw)
			assert.NotNil(t, counts)
			assert.Empty(t, counts)
		})
	}
}

func TestKnownSource(t *testing.T) {
	t.Parallel()
	assert.True(t, analytics.KnownSource(analytics.SourceLeetCode))
	assert.True(t, analytics.KnownSource(analytics.SourceGFG))
	assert.False(t, analytics.KnownSource(analytics.Source("hackerrank")))
}
