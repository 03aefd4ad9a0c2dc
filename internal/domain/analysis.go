package domain

import "time"

// LogRecord is the engine's view of one day: date, planned text, actual text
// and the two 1-10 self ratings. The engine never mutates it.
type LogRecord struct {
	Date    time.Time
	Planned string
	Actual  string
	Energy  int
	Clarity int
}

// BurnoutLevel is a tiered risk label.
// @Description Burnout risk: LOW, MODERATE or HIGH.
type BurnoutLevel string

const (
	BurnoutLow      BurnoutLevel = "LOW"
	BurnoutModerate BurnoutLevel = "MODERATE"
	BurnoutHigh     BurnoutLevel = "HIGH"
)

// Consistency labels average completion over a window.
type Consistency string

const (
	ConsistencyGood Consistency = "GOOD"
	ConsistencyPoor Consistency = "POOR"
)

// Topic is a tracked study area.
type Topic string

const (
	TopicGS    Topic = "GS"
	TopicMaths Topic = "MATHS"
	TopicAI    Topic = "AI"
)

// DayAnalysis is the immediate feedback for one day.
// @Description Per-day completion, productivity, burnout and gap analysis.
type DayAnalysis struct {
	// Completed lines over planned lines, capped at 1
	CompletionRatio float64 `json:"completion_ratio" example:"0.5"`
	// Weighted score in [0,1]
	ProductivityScore float64 `json:"productivity_score" example:"0.5"`
	// Burnout flag for the day
	BurnoutFlag BurnoutLevel `json:"burnout_flag" example:"MODERATE"`
	// Planned topics that were not executed
	Gaps []string `json:"gaps"`
	// Independent risk flags
	RiskFlags []string `json:"risk_flags"`
}

// TrendSummary averages a window of days. A nil *TrendSummary is the
// empty-window result.
// @Description Multi-day averages with burnout and consistency labels.
type TrendSummary struct {
	DaysAnalyzed  int          `json:"days_analyzed" example:"7"`
	AvgCompletion float64      `json:"avg_completion" example:"0.8"`
	AvgEnergy     float64      `json:"avg_energy" example:"6.4"`
	AvgClarity    float64      `json:"avg_clarity" example:"6.1"`
	BurnoutRisk   BurnoutLevel `json:"burnout_risk" example:"MODERATE"`
	Consistency   Consistency  `json:"consistency" example:"GOOD"`
}

// TopicClassification holds 0/1 presence indicators per topic for one text.
type TopicClassification map[Topic]int

// Has reports whether topic was detected.
func (c TopicClassification) Has(topic Topic) bool {
	return c[topic] > 0
}

// BalanceSummary sums topic presence over a window.
// @Description Topical coverage and imbalance risks.
type BalanceSummary struct {
	DaysAnalyzed int           `json:"days_analyzed" example:"7"`
	Coverage     map[Topic]int `json:"coverage"`
	Risks        []string      `json:"risks"`
}

// DepthProfile tallies proficiency-level activity across a window.
// LevelScore always holds every configured level; DominantLevel is always one of its keys.
// @Description Level tallies, dominant level and stagnation warnings.
type DepthProfile struct {
	LevelScore    map[int]int `json:"level_score"`
	DominantLevel int         `json:"dominant_level" example:"1"`
	Warnings      []string    `json:"warnings"`
}

// WeeklyVerdict is the synthesized weekly review. Verdicts is never empty;
// Recovery is nil when no recommendation applies.
// @Description Prioritized verdicts plus an optional recovery recommendation.
type WeeklyVerdict struct {
	Verdicts []string `json:"verdicts"`
	Recovery *string  `json:"recovery,omitempty"`
}

// WeeklyReport bundles every window-level analysis for one review.
// @Description Complete weekly analysis.
type WeeklyReport struct {
	Window   WindowInfo     `json:"window"`
	Trend    *TrendSummary  `json:"trend"`
	Balance  BalanceSummary `json:"balance"`
	AIDepth  DepthProfile   `json:"ai_depth"`
	DSADepth DepthProfile   `json:"dsa_depth"`
	Verdict  WeeklyVerdict  `json:"verdict"`
}

// WindowInfo describes which logs fed a report.
type WindowInfo struct {
	Days  int        `json:"days" example:"7"`
	From  *time.Time `json:"from,omitempty"`
	To    *time.Time `json:"to,omitempty"`
	Count int        `json:"count" example:"7"`
}

// StreakStatus describes logging continuity relative to today.
type StreakStatus string

const (
	StreakNew      StreakStatus = "NEW"
	StreakContinue StreakStatus = "CONTINUE"
	StreakBroken   StreakStatus = "BROKEN"
)

// StreakSummary is the daily check-in state.
// @Description Logging streak and discipline score.
type StreakSummary struct {
	Status          StreakStatus `json:"status" example:"CONTINUE"`
	Length          int          `json:"length" example:"4"`
	LastLogDate     string       `json:"last_log_date,omitempty" example:"2024-01-15"`
	DisciplineScore int          `json:"discipline_score" example:"100"`
}

// TrendResponse wraps a possibly empty trend.
// @Description Trend over the most recent logs; trend is null when nothing was logged.
type TrendResponse struct {
	Days  int           `json:"days" example:"7"`
	Trend *TrendSummary `json:"trend"`
}

// ReminderResult reports what the daily check-in did.
// @Description Outcome of the daily reminder.
type ReminderResult struct {
	// True when today is already logged and nothing was sent
	Skipped  bool          `json:"skipped"`
	Streak   StreakSummary `json:"streak"`
	Message  string        `json:"message,omitempty"`
	Notified bool          `json:"notified"`
}
