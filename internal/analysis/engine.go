// Package analysis turns daily study logs into scores, topic coverage,
// depth profiles and weekly verdicts. Every function is pure.
package analysis

import (
	"time"

	"github.com/blaisecz/study-tracker/internal/domain"
)

// Engine bundles the analyzers built from one Lexicon. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	day        *DayScorer
	classifier *Classifier
	balance    *BalanceAnalyzer
	ai         *DepthAnalyzer
	dsa        *DepthAnalyzer
}

func NewEngine(lex Lexicon) *Engine {
	classifier := NewClassifier(lex.Topics)
	return &Engine{
		day:        NewDayScorer(lex.Gaps),
		classifier: classifier,
		balance:    NewBalanceAnalyzer(classifier, lex.Balance),
		ai:         NewDepthAnalyzer(lex.AI),
		dsa:        NewDepthAnalyzer(lex.DSA),
	}
}

func (e *Engine) Day(planned, actual string, energy, clarity int) domain.DayAnalysis {
	return e.day.Score(planned, actual, energy, clarity)
}

func (e *Engine) Classify(text string) domain.TopicClassification {
	return e.classifier.Classify(text)
}

func (e *Engine) Trend(records []domain.LogRecord) *domain.TrendSummary {
	return Trend(records)
}

func (e *Engine) Balance(records []domain.LogRecord) domain.BalanceSummary {
	return e.balance.Analyze(records)
}

func (e *Engine) AIDepth(records []domain.LogRecord) domain.DepthProfile {
	return e.ai.Analyze(records)
}

func (e *Engine) DSADepth(records []domain.LogRecord) domain.DepthProfile {
	return e.dsa.Analyze(records)
}

// Weekly runs every window analysis over records and synthesizes the verdict.
// Window.Days is left for the caller to set.
func (e *Engine) Weekly(records []domain.LogRecord) domain.WeeklyReport {
	trend := e.Trend(records)
	balance := e.Balance(records)
	ai := e.AIDepth(records)
	dsa := e.DSADepth(records)

	report := domain.WeeklyReport{
		Window:   domain.WindowInfo{Count: len(records)},
		Trend:    trend,
		Balance:  balance,
		AIDepth:  ai,
		DSADepth: dsa,
		Verdict:  Synthesize(trend, balance, ai, dsa),
	}

	if len(records) > 0 {
		from, to := records[0].Date, records[0].Date
		for _, r := range records[1:] {
			if r.Date.Before(from) {
				from = r.Date
			}
			if r.Date.After(to) {
				to = r.Date
			}
		}
		report.Window.From = timePtr(from)
		report.Window.To = timePtr(to)
	}
	return report
}

func timePtr(t time.Time) *time.Time {
	return &t
}
