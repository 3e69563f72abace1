package analytics

import "github.com/yash-070702/Codash-next/pkg/entity"

// Insights builds the short human-readable observations shown alongside the
// report. Each category contributes at most one line.
func Insights(c entity.DifficultyCounts, metrics entity.ActivityMetrics) []string {
	insights := make([]string, 0, 4)
	total := c.Total()

	switch {
	case total > 1000:
		insights = append(insights, "Problem Solving Legend! You've solved over 1000 problems!")
	case total > 500:
		insights = append(insights, "Problem Solving Master! You've solved over 500 problems.")
	case total > 100:
		insights = append(insights, "Great Progress! You're building strong problem-solving skills.")
	case total > 50:
		insights = append(insights, "Good Start! Keep practicing to improve further.")
	}

	switch {
	case metrics.MaxStreak > 50:
		insights = append(insights, "Incredible Streak! Your consistency is outstanding.")
	case metrics.MaxStreak > 20:
		insights = append(insights, "Great Streak! Keep up the consistent practice.")
	}

	if total > 0 {
		hardPct := float64(c.Hard) / float64(total) * 100
		switch {
		case hardPct > 25:
			insights = append(insights, "Challenge Master! You tackle difficult problems regularly.")
		case hardPct > 15:
			insights = append(insights, "Challenge Seeker! You're comfortable with hard problems.")
		}
	}

	switch {
	case metrics.TotalActiveDays > 300:
		insights = append(insights, "Daily Coder! You practice almost every day.")
	case metrics.TotalActiveDays > 200:
		insights = append(insights, "Consistent Coder! You maintain regular practice.")
	}

	return insights
}
