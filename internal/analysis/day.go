package analysis

import (
	"strings"

	"github.com/blaisecz/study-tracker/internal/domain"
)

// Day scoring weights and thresholds.
const (
	CompletionWeight = 0.6
	EnergyWeight     = 0.2
	ClarityWeight    = 0.2

	HighBurnoutEnergy         = 3
	HighBurnoutCompletion     = 0.5
	ModerateBurnoutEnergy     = 5
	ModerateBurnoutCompletion = 0.6

	LowCompletionThreshold = 0.5
	LowClarityThreshold    = 4
)

// Risk flags emitted by the day scorer.
const (
	RiskLowCompletion = "Low task completion"
	RiskBurnout       = "Burnout risk detected"
	RiskLowClarity    = "Low conceptual clarity"
)

// DayScorer produces immediate feedback for one day.
type DayScorer struct {
	gaps []GapRule
}

// NewDayScorer copies the gap rule table.
func NewDayScorer(gaps []GapRule) *DayScorer {
	rules := make([]GapRule, len(gaps))
	for i, g := range gaps {
		rules[i] = GapRule{Keywords: lowerAll(g.Keywords), Message: g.Message}
	}
	return &DayScorer{gaps: rules}
}

// CompletionRatio is actual lines over planned lines, with the plan floored
// at one line and the result capped at 1.
func CompletionRatio(planned, actual string) float64 {
	plannedCount := countLines(planned)
	if plannedCount < 1 {
		plannedCount = 1
	}
	return clamp01(float64(countLines(actual)) / float64(plannedCount))
}

// Burnout applies the HIGH then MODERATE rule in that order.
func Burnout(energy int, completion float64) domain.BurnoutLevel {
	switch {
	case energy <= HighBurnoutEnergy && completion < HighBurnoutCompletion:
		return domain.BurnoutHigh
	case energy <= ModerateBurnoutEnergy && completion < ModerateBurnoutCompletion:
		return domain.BurnoutModerate
	default:
		return domain.BurnoutLow
	}
}

// Score analyzes one day. Inputs are assumed validated.
func (s *DayScorer) Score(planned, actual string, energy, clarity int) domain.DayAnalysis {
	completion := CompletionRatio(planned, actual)

	productivity := CompletionWeight*completion +
		EnergyWeight*(float64(energy)/10) +
		ClarityWeight*(float64(clarity)/10)

	burnout := Burnout(energy, completion)

	risks := []string{}
	if completion < LowCompletionThreshold {
		risks = append(risks, RiskLowCompletion)
	}
	if burnout == domain.BurnoutHigh {
		risks = append(risks, RiskBurnout)
	}
	if clarity <= LowClarityThreshold {
		risks = append(risks, RiskLowClarity)
	}

	return domain.DayAnalysis{
		CompletionRatio:   round2(completion),
		ProductivityScore: round2(clamp01(productivity)),
		BurnoutFlag:       burnout,
		Gaps:              s.findGaps(planned, actual),
		RiskFlags:         risks,
	}
}

func (s *DayScorer) findGaps(planned, actual string) []string {
	p := strings.ToLower(planned)
	a := strings.ToLower(actual)

	gaps := []string{}
	for _, rule := range s.gaps {
		if containsAny(p, rule.Keywords) && !containsAny(a, rule.Keywords) {
			gaps = append(gaps, rule.Message)
		}
	}
	return gaps
}
