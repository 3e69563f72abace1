package entity

// DailyActivity is a single cell of the activity heatmap. The filler emits one
// entry per calendar day of the requested range, with no gaps.
type DailyActivity struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Count     int    `json:"count"`
	Intensity int    `json:"intensity"` // 0..4
	DayOfWeek int    `json:"dayOfWeek"` // 0=Sun .. 6=Sat
	Week      int    `json:"week"`      // heatmap column, 0 at range start
	Month     int    `json:"month"`     // 1..12
	Day       int    `json:"day"`
	Year      int    `json:"year"`
	InRange   bool   `json:"isInRange"`
}

// Submission is a per-day submission count.
type Submission struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// StreakRange is a maximal run of consecutive active days, length >= 2.
type StreakRange struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Length int    `json:"length"`
}

// PeriodStat aggregates the active days of one month or year. The average is a
// two-decimal string to match the consumed JSON contract.
type PeriodStat struct {
	TotalSubmissions         int    `json:"totalSubmissions"`
	ActiveDays               int    `json:"activeDays"`
	MaxSubmissionsInDay      int    `json:"maxSubmissionsInDay"`
	AverageSubmissionsPerDay string `json:"averageSubmissionsPerDay"`
}

type YearlyStat struct {
	PeriodStat
	ActiveMonths int `json:"activeMonths"`
}

type CalendarStatistics struct {
	TotalSubmissions         int                   `json:"totalSubmissions"`
	TotalActiveDays          int                   `json:"totalActiveDays"`
	CurrentStreak            int                   `json:"currentStreak"`
	LongestStreak            int                   `json:"longestStreak"`
	MaxSubmissionsInDay      int                   `json:"maxSubmissionsInDay"`
	AverageSubmissionsPerDay float64               `json:"averageSubmissionsPerDay"`
	StreakRanges             []StreakRange         `json:"streakRanges"`
	MonthlyStats             map[string]PeriodStat `json:"monthlyStats"` // keyed "YYYY-MM"
	YearlyStats              map[string]YearlyStat `json:"yearlyStats"`  // keyed "YYYY"
}

// DifficultyCounts holds solved-problem counts per difficulty. Basic is only
// reported by some platforms and defaults to zero.
type DifficultyCounts struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
	Basic  int `json:"basic"`
}

func (c DifficultyCounts) Total() int {
	return c.Easy + c.Medium + c.Hard + c.Basic
}

type DifficultySlice struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type DifficultyBreakdown struct {
	Easy   DifficultySlice `json:"easy"`
	Medium DifficultySlice `json:"medium"`
	Hard   DifficultySlice `json:"hard"`
	Basic  DifficultySlice `json:"basic"`
}

type DifficultyAnalysis struct {
	Breakdown       DifficultyBreakdown `json:"breakdown"`
	DifficultyScore int                 `json:"difficultyScore"`
	Level           string              `json:"level"` // Novice .. Expert
	Recommendation  string              `json:"recommendation"`
}

// QuestionTotals is the size of the platform's problem catalog per difficulty,
// reported only by platforms that expose it.
type QuestionTotals struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

type ActivityMetrics struct {
	TotalActiveDays       int         `json:"totalActiveDays"`
	TotalProblems         int         `json:"totalProblems"`
	AverageProblemsPerDay float64     `json:"averageProblemsPerDay"`
	ActiveDaysPercentage  float64     `json:"activeDaysPercentage"`
	MaxProblemsInDay      int         `json:"maxProblemsInDay"`
	CurrentStreak         int         `json:"currentStreak"`
	MaxStreak             int         `json:"maxStreak"`
	WeeklyPattern         map[int]int `json:"weeklyPattern"` // 0=Sun .. 6=Sat
	MostActiveDay         string      `json:"mostActiveDay"`
	WeekendActivity       int         `json:"weekendActivity"`
	WeekdayActivity       int         `json:"weekdayActivity"`
	ConsistencyScore      float64     `json:"consistencyScore"` // 0..100
}

// ActivityReport is the full object handed to rendering and API consumers.
type ActivityReport struct {
	ActiveYears        []int              `json:"activeYears"`
	SubmissionsByDate  []Submission       `json:"submissionsByDate"`
	Heatmap            []DailyActivity    `json:"heatmap"`
	Statistics         CalendarStatistics `json:"statistics"`
	ActivityMetrics    ActivityMetrics    `json:"activityMetrics"`
	DifficultyAnalysis DifficultyAnalysis `json:"difficultyAnalysis"`
	QuestionTotals     *QuestionTotals    `json:"questionTotals,omitempty"`
	Insights           []string           `json:"insights,omitempty"`
}
