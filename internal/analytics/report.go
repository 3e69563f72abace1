package analytics

import (
	"time"

	"github.com/yash-070702/Codash-next/pkg/entity"
)

// ReportOptions scope a report build. A zero Year means the full span of the
// available data (or the current calendar year when there is none).
type ReportOptions struct {
	Year int
	Now  time.Time
}

// BuildReport assembles the complete activity report from an already
// normalized calendar and per-difficulty counts. It never fails: empty or
// partial input degrades to a fully-formed zero-state report.
func BuildReport(counts map[string]int, diff entity.DifficultyCounts, opts ReportOptions) entity.ActivityReport {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var start, end time.Time
	switch {
	case opts.Year != 0:
		start, end = YearSpan(opts.Year)
	default:
		var ok bool
		start, end, ok = Span(counts)
		if !ok {
			start, end = YearSpan(now.UTC().Year())
		}
	}

	heatmap := FillRange(counts, start, end)
	series := make([]entity.Submission, len(heatmap))
	for i, day := range heatmap {
		series[i] = entity.Submission{Date: day.Date, Count: day.Count}
	}

	metrics := Metrics(series, now)
	return entity.ActivityReport{
		ActiveYears:        ActiveYears(counts),
		SubmissionsByDate:  series,
		Heatmap:            heatmap,
		Statistics:         CalendarStats(series, now),
		ActivityMetrics:    metrics,
		DifficultyAnalysis: AnalyzeDifficulty(diff),
		Insights:           Insights(diff, metrics),
	}
}
