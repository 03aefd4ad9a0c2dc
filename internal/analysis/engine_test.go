package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaisecz/study-tracker/internal/domain"
)

func TestEngine_Weekly(t *testing.T) {
	e := NewEngine(DefaultLexicon())

	recs := []domain.LogRecord{
		{Date: day(3), Planned: "Polity\nMaths", Actual: "Polity: parliament\nMaths: calculus", Energy: 8, Clarity: 7},
		{Date: day(1), Planned: "History\nML", Actual: "History: revolt of 1857\nML: implemented regression from scratch, derived gradients", Energy: 7, Clarity: 8},
		{Date: day(2), Planned: "DSA", Actual: "DSA: medium binary search on leetcode", Energy: 7, Clarity: 7},
	}

	got := e.Weekly(recs)

	assert.Equal(t, 3, got.Window.Count)
	require.NotNil(t, got.Window.From)
	require.NotNil(t, got.Window.To)
	assert.Equal(t, day(1), *got.Window.From)
	assert.Equal(t, day(3), *got.Window.To)
	require.NotNil(t, got.Trend)
	assert.Equal(t, domain.ConsistencyGood, got.Trend.Consistency)
	assert.NotEmpty(t, got.Verdict.Verdicts)
	assert.Len(t, got.AIDepth.LevelScore, 6)
	assert.Len(t, got.DSADepth.LevelScore, 5)
}

func TestEngine_WeeklyEmpty(t *testing.T) {
	got := NewEngine(DefaultLexicon()).Weekly(nil)

	assert.Nil(t, got.Trend)
	assert.Nil(t, got.Window.From)
	assert.Equal(t, 0, got.Window.Count)
	assert.NotEmpty(t, got.Verdict.Verdicts)
}

func TestEngine_LexiconIsCopied(t *testing.T) {
	lex := DefaultLexicon()
	e := NewEngine(lex)

	lex.Gaps[1].Keywords[0] = "chemistry"
	lex.Gaps[1].Message = "changed"

	got := e.Day("Polity", "", 7, 7)
	assert.Contains(t, got.Gaps, "UPSC GS (Polity) missed")
}
