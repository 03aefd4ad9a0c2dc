package analysis

import "github.com/blaisecz/study-tracker/internal/domain"

// Trend thresholds.
const (
	TrendHighBurnoutEnergy     = 4.0
	TrendModerateBurnoutEnergy = 6.0
	GoodConsistencyCompletion  = 0.7
)

// Trend averages completion, energy and clarity over records.
// It returns nil for an empty window.
func Trend(records []domain.LogRecord) *domain.TrendSummary {
	if len(records) == 0 {
		return nil
	}

	var completion, energy, clarity float64
	for _, r := range records {
		completion += CompletionRatio(r.Planned, r.Actual)
		energy += float64(r.Energy)
		clarity += float64(r.Clarity)
	}

	n := float64(len(records))
	avgCompletion := round2(completion / n)
	avgEnergy := round2(energy / n)

	risk := domain.BurnoutLow
	switch {
	case avgEnergy <= TrendHighBurnoutEnergy:
		risk = domain.BurnoutHigh
	case avgEnergy <= TrendModerateBurnoutEnergy:
		risk = domain.BurnoutModerate
	}

	consistency := domain.ConsistencyPoor
	if avgCompletion >= GoodConsistencyCompletion {
		consistency = domain.ConsistencyGood
	}

	return &domain.TrendSummary{
		DaysAnalyzed:  len(records),
		AvgCompletion: avgCompletion,
		AvgEnergy:     avgEnergy,
		AvgClarity:    round2(clarity / n),
		BurnoutRisk:   risk,
		Consistency:   consistency,
	}
}
