package analysis

import "github.com/blaisecz/study-tracker/internal/domain"

// GapRule flags a topic that appears in the plan but nowhere in the actual work.
// Matching is case-insensitive substring search over Keywords.
type GapRule struct {
	Keywords []string
	Message  string
}

// TopicRule maps a topic to the keywords that mark its presence in a text.
type TopicRule struct {
	Topic    domain.Topic
	Keywords []string
}

// BalanceKind selects the comparison applied by a BalanceRule.
type BalanceKind int

const (
	// UnderCovered fires when count < Fraction*days.
	UnderCovered BalanceKind = iota
	// OverConcentrated fires when count > Fraction*days.
	OverConcentrated
)

// BalanceRule compares a topic's cumulative count against a fraction of the window's day count.
type BalanceRule struct {
	Topic    domain.Topic
	Kind     BalanceKind
	Fraction float64
	Message  string
}

// Lexicon is the full keyword and rule configuration of the engine.
// Analyzers copy what they need at construction, so a Lexicon can be
// modified freely after it has been handed to NewEngine.
type Lexicon struct {
	Gaps    []GapRule
	Topics  []TopicRule
	Balance []BalanceRule
	DSA     DepthConfig
	AI      DepthConfig
}

// Balance and depth advisories.
const (
	MsgGSUnderCovered     = "GS coverage below half of logged days: UPSC core at risk"
	MsgMathsOverweighted  = "Maths optional crowding out other subjects"
	MsgAIOverweighted     = "AI work taking too large a share of study days"
	MsgDSAStuckEasy       = "DSA practice stuck on easy problems: move to medium/hard"
	MsgDSANoRevision      = "Hard DSA work with no revision or explanation: retention at risk"
	MsgAIConsumptionHeavy = "AI learning is consumption-heavy: implement what you watch"
	MsgAINoUnderstanding  = "AI implementation without derivation or intuition work"
	MsgAINoExperiments    = "No AI experimentation or evaluation logged: depth stagnating"
)

// DefaultMinActivity is the level-hit floor below which depth warnings do not apply.
const DefaultMinActivity = 5

// DefaultLexicon returns the study-plan vocabulary: UPSC GS, the maths optional,
// AI/ML and DSA practice. Each call returns a fresh value.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Gaps: []GapRule{
			{Keywords: []string{"math"}, Message: "Maths optional not executed as planned"},
			{Keywords: []string{"polity"}, Message: "UPSC GS (Polity) missed"},
			{Keywords: []string{"ai", "ml", "nlp"}, Message: "AI / ML block skipped"},
		},
		Topics: []TopicRule{
			{Topic: domain.TopicGS, Keywords: []string{
				"polity", "history", "geography", "economy", "environment",
				"ethics", "current affairs", "upsc", "gs1", "gs2", "gs3", "gs4",
			}},
			{Topic: domain.TopicMaths, Keywords: []string{
				"math", "algebra", "calculus", "vector", "geometry",
				"differential", "real analysis", "complex analysis", "mechanics",
			}},
			{Topic: domain.TopicAI, Keywords: []string{
				"ai", "ml", "nlp", "machine learning", "deep learning",
				"neural", "transformer", "llm", "regression",
			}},
		},
		Balance: []BalanceRule{
			{Topic: domain.TopicGS, Kind: UnderCovered, Fraction: 0.5, Message: MsgGSUnderCovered},
			{Topic: domain.TopicMaths, Kind: OverConcentrated, Fraction: 0.8, Message: MsgMathsOverweighted},
			{Topic: domain.TopicAI, Kind: OverConcentrated, Fraction: 0.7, Message: MsgAIOverweighted},
		},
		DSA: DepthConfig{
			Name: "dsa",
			Gate: []string{"dsa", "leetcode", "codeforces", "gfg", "data structure"},
			Levels: []Level{
				{Index: 0, Keywords: []string{"easy", "basic", "warmup", "warm-up"}},
				{Index: 1, Keywords: []string{"medium", "two pointer", "sliding window", "binary search", "hashing", "recursion"}},
				{Index: 2, Keywords: []string{"hard", "dynamic programming", "dp ", "backtracking", "segment tree"}},
				{Index: 3, Keywords: []string{"pattern", "graph", "optimiz", "complexity", "tree"}},
				{Index: 4, Keywords: []string{"revision", "revised", "explain", "taught", "mock interview", "contest"}},
			},
			Rules: []WarningRule{
				{Message: MsgDSAStuckEasy, MinActivity: DefaultMinActivity, When: Exceeds(0, 1, 2)},
				{Message: MsgDSANoRevision, MinActivity: DefaultMinActivity, When: PresentWithout([]int{2, 3}, []int{4})},
			},
		},
		AI: DepthConfig{
			Name: "ai",
			Levels: []Level{
				{Index: 0, Keywords: []string{"watched", "video", "lecture", "course", "tutorial", "read blog"}},
				{Index: 1, Keywords: []string{"implemented", "coded", "from scratch", "built", "notebook"}},
				{Index: 2, Keywords: []string{"derived", "derivation", "intuition", "proof", "understood", "math behind"}},
				{Index: 3, Keywords: []string{"experiment", "ablation", "hyperparameter", "tuned", "trained"}},
				{Index: 4, Keywords: []string{"evaluated", "benchmark", "error analysis", "metrics", "compared"}},
				{Index: 5, Keywords: []string{"paper", "arxiv", "reproduced", "research", "novel"}},
			},
			Rules: []WarningRule{
				{Message: MsgAIConsumptionHeavy, MinActivity: DefaultMinActivity, When: Exceeds(0, 1, 2)},
				{Message: MsgAINoUnderstanding, MinActivity: DefaultMinActivity, When: PresentWithout([]int{1}, []int{2})},
				{Message: MsgAINoExperiments, MinActivity: DefaultMinActivity, When: NoneOf(3, 4, 5)},
			},
		},
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
