package analysis

import (
	"sort"
	"strings"

	"github.com/blaisecz/study-tracker/internal/domain"
)

// Level is one proficiency tier of a depth analyzer.
type Level struct {
	Index    int
	Keywords []string
}

// WarningRule is a stagnation check over a level tally. Rules whose
// MinActivity exceeds the total number of level hits are skipped.
type WarningRule struct {
	Message     string
	MinActivity int
	When        func(score map[int]int) bool
}

// DepthConfig parameterizes a DepthAnalyzer.
type DepthConfig struct {
	Name   string
	Levels []Level
	// Gate, when non-empty, must match a record's actual text before it is tallied.
	Gate  []string
	Rules []WarningRule
}

// Exceeds fires when score[level] is strictly greater than the sum of others.
func Exceeds(level int, others ...int) func(map[int]int) bool {
	return func(score map[int]int) bool {
		return score[level] > sumLevels(score, others)
	}
}

// PresentWithout fires when any of present has hits and none of absent does.
func PresentWithout(present, absent []int) func(map[int]int) bool {
	return func(score map[int]int) bool {
		return sumLevels(score, present) > 0 && sumLevels(score, absent) == 0
	}
}

// NoneOf fires when none of the given levels has hits.
func NoneOf(levels ...int) func(map[int]int) bool {
	return func(score map[int]int) bool {
		return sumLevels(score, levels) == 0
	}
}

func sumLevels(score map[int]int, levels []int) int {
	total := 0
	for _, l := range levels {
		total += score[l]
	}
	return total
}

// DepthAnalyzer tallies keyword-level hits across a log window.
type DepthAnalyzer struct {
	name   string
	levels []Level
	gate   []string
	rules  []WarningRule
}

// NewDepthAnalyzer copies cfg and orders its levels by ascending index.
func NewDepthAnalyzer(cfg DepthConfig) *DepthAnalyzer {
	levels := make([]Level, len(cfg.Levels))
	for i, l := range cfg.Levels {
		levels[i] = Level{Index: l.Index, Keywords: lowerAll(l.Keywords)}
	}
	sort.SliceStable(levels, func(i, j int) bool { return levels[i].Index < levels[j].Index })

	rules := make([]WarningRule, len(cfg.Rules))
	copy(rules, cfg.Rules)

	return &DepthAnalyzer{
		name:   cfg.Name,
		levels: levels,
		gate:   lowerAll(cfg.Gate),
		rules:  rules,
	}
}

// Name returns the analyzer's configured name.
func (a *DepthAnalyzer) Name() string {
	return a.name
}

// Analyze returns the level tally, dominant level and warnings for records.
// Every configured level is present in the tally; with no hits the dominant
// level is the lowest one.
func (a *DepthAnalyzer) Analyze(records []domain.LogRecord) domain.DepthProfile {
	score := make(map[int]int, len(a.levels))
	for _, l := range a.levels {
		score[l.Index] = 0
	}

	for _, r := range records {
		text := strings.ToLower(r.Actual)
		if len(a.gate) > 0 && !containsAny(text, a.gate) {
			continue
		}
		for _, l := range a.levels {
			if containsAny(text, l.Keywords) {
				score[l.Index]++
			}
		}
	}

	total := 0
	for _, c := range score {
		total += c
	}

	warnings := []string{}
	for _, rule := range a.rules {
		if total < rule.MinActivity || total == 0 || rule.When == nil {
			continue
		}
		if rule.When(score) {
			warnings = append(warnings, rule.Message)
		}
	}

	return domain.DepthProfile{
		LevelScore:    score,
		DominantLevel: a.dominant(score),
		Warnings:      warnings,
	}
}

func (a *DepthAnalyzer) dominant(score map[int]int) int {
	if len(a.levels) == 0 {
		return 0
	}
	best := a.levels[0].Index
	for _, l := range a.levels[1:] {
		if score[l.Index] > score[best] {
			best = l.Index
		}
	}
	return best
}
