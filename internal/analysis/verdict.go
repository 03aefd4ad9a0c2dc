package analysis

import (
	"strings"

	"github.com/blaisecz/study-tracker/internal/domain"
)

// ShallowDepthLevel is the highest dominant level still considered shallow.
const ShallowDepthLevel = 1

// Recovery thresholds.
const (
	RecoveryEnergyThreshold     = 4.0
	RecoveryCompletionThreshold = 0.5
)

// Weekly verdicts, in evaluation order.
const (
	VerdictDisciplineBreakdown = "Discipline breakdown: fewer than 70% of planned tasks completed on average"
	VerdictBurnout             = "Burnout risk: average energy too low to sustain the current load"
	VerdictImbalance           = "Topic imbalance: study time is not spread across GS, Maths and AI"
	VerdictShallowAI           = "Shallow AI learning: mostly consumption or implementation, little understanding"
	VerdictStuckEasyDSA        = "DSA stuck at easy level: push into medium and hard problems"
	VerdictOnTrack             = "Solid week: consistent, balanced and progressing in depth"

	RecoveryReduceLoad = "Reduce daily load by 30% for the next 3 days and protect sleep"
	RecoverySimplify   = "Simplify goals: plan 2-3 core tasks per day and finish them"
)

// Synthesize combines window analyses into prioritized verdicts and a recovery
// recommendation. A nil trend skips the trend-based rules.
func Synthesize(trend *domain.TrendSummary, balance domain.BalanceSummary, ai, dsa domain.DepthProfile) domain.WeeklyVerdict {
	verdicts := []string{}

	if trend != nil {
		if trend.Consistency == domain.ConsistencyPoor {
			verdicts = append(verdicts, VerdictDisciplineBreakdown)
		}
		if trend.BurnoutRisk != domain.BurnoutLow {
			verdicts = append(verdicts, VerdictBurnout)
		}
	}
	if len(balance.Risks) > 0 {
		verdicts = append(verdicts, VerdictImbalance)
	}
	if ai.DominantLevel <= ShallowDepthLevel {
		verdicts = append(verdicts, VerdictShallowAI)
	}
	if dsa.DominantLevel <= ShallowDepthLevel {
		verdicts = append(verdicts, VerdictStuckEasyDSA)
	}

	if len(verdicts) == 0 {
		verdicts = append(verdicts, VerdictOnTrack)
	}

	return domain.WeeklyVerdict{
		Verdicts: verdicts,
		Recovery: Recovery(trend),
	}
}

// Recovery returns a recommendation, or nil when none applies.
func Recovery(trend *domain.TrendSummary) *string {
	if trend == nil {
		return nil
	}
	var rec string
	switch {
	case trend.AvgEnergy <= RecoveryEnergyThreshold:
		rec = RecoveryReduceLoad
	case trend.AvgCompletion <= RecoveryCompletionThreshold:
		rec = RecoverySimplify
	default:
		return nil
	}
	return &rec
}

// FormatVerdict renders the verdict as the stored and delivered weekly text.
func FormatVerdict(v domain.WeeklyVerdict) string {
	text := strings.Join(v.Verdicts, "\n")
	if v.Recovery != nil {
		text += "\n\nRecovery Advice:\n" + *v.Recovery
	}
	return text
}
