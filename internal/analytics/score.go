package analytics

import "github.com/yash-070702/Codash-next/pkg/entity"

// Skill levels derived from the level score.
const (
	LevelNovice       = "Novice"
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// AnalyzeDifficulty produces the per-difficulty breakdown, the weighted
// difficulty score, a skill-level label and a practice recommendation.
//
// The difficulty score and the level score intentionally use two different
// weightings; both are part of the displayed contract.
func AnalyzeDifficulty(c entity.DifficultyCounts) entity.DifficultyAnalysis {
	total := c.Total()
	return entity.DifficultyAnalysis{
		Breakdown: entity.DifficultyBreakdown{
			Easy:   difficultySlice(c.Easy, total),
			Medium: difficultySlice(c.Medium, total),
			Hard:   difficultySlice(c.Hard, total),
			Basic:  difficultySlice(c.Basic, total),
		},
		DifficultyScore: c.Basic*1 + c.Easy*2 + c.Medium*5 + c.Hard*10,
		Level:           difficultyLevel(c),
		Recommendation:  recommendation(c, total),
	}
}

func difficultySlice(count, total int) entity.DifficultySlice {
	s := entity.DifficultySlice{Count: count}
	if total > 0 {
		s.Percentage = round1(float64(count) / float64(total) * 100)
	}
	return s
}

func difficultyLevel(c entity.DifficultyCounts) string {
	score := c.Easy*1 + c.Medium*3 + c.Hard*5
	switch {
	case score > 2000:
		return LevelExpert
	case score > 1000:
		return LevelAdvanced
	case score > 500:
		return LevelIntermediate
	case score > 100:
		return LevelBeginner
	default:
		return LevelNovice
	}
}

// recommendation rules are evaluated in fixed priority order; first match wins.
func recommendation(c entity.DifficultyCounts, total int) string {
	if total == 0 {
		return "Start with basic problems to build your foundation!"
	}
	easyPct := float64(c.Easy) / float64(total) * 100
	mediumPct := float64(c.Medium) / float64(total) * 100
	hardPct := float64(c.Hard) / float64(total) * 100

	switch {
	case hardPct < 5 && total > 50:
		return "Try solving more hard problems to challenge yourself!"
	case mediumPct < 20 && total > 20:
		return "Focus on medium difficulty problems to build confidence."
	case easyPct > 80 && total > 30:
		return "Great foundation! Challenge yourself with harder problems."
	case hardPct > 30:
		return "Excellent! You're tackling challenging problems regularly."
	}
	return "Keep up the consistent practice across all difficulty levels!"
}
