package analysis

import "github.com/blaisecz/study-tracker/internal/domain"

// BalanceAnalyzer sums topic presence over a window and flags imbalance.
type BalanceAnalyzer struct {
	classifier *Classifier
	rules      []BalanceRule
}

func NewBalanceAnalyzer(classifier *Classifier, rules []BalanceRule) *BalanceAnalyzer {
	copied := make([]BalanceRule, len(rules))
	copy(copied, rules)
	return &BalanceAnalyzer{classifier: classifier, rules: copied}
}

// Analyze classifies each record's actual text and compares cumulative
// counts with fractions of the window's day count.
func (a *BalanceAnalyzer) Analyze(records []domain.LogRecord) domain.BalanceSummary {
	coverage := make(map[domain.Topic]int)
	for _, t := range a.classifier.Topics() {
		coverage[t] = 0
	}
	for _, r := range records {
		for topic, hit := range a.classifier.Classify(r.Actual) {
			coverage[topic] += hit
		}
	}

	days := float64(len(records))
	risks := []string{}
	for _, rule := range a.rules {
		count := float64(coverage[rule.Topic])
		limit := rule.Fraction * days
		switch rule.Kind {
		case UnderCovered:
			if count < limit {
				risks = append(risks, rule.Message)
			}
		case OverConcentrated:
			if count > limit {
				risks = append(risks, rule.Message)
			}
		}
	}

	return domain.BalanceSummary{
		DaysAnalyzed: len(records),
		Coverage:     coverage,
		Risks:        risks,
	}
}
