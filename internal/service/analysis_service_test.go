package service

import (
	"context"
	"errors"
	"testing"
)

func TestNormalizeDays(t *testing.T) {
	tests := []struct {
		in, def, want int
	}{
		{0, 7, 7},
		{-3, 14, 14},
		{30, 7, 30},
		{MaxWindowDays + 1, 7, MaxWindowDays},
	}
	for _, tt := range tests {
		if got := NormalizeDays(tt.in, tt.def); got != tt.want {
			t.Errorf("NormalizeDays(%d, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
		}
	}
}

func TestAnalysisService_Trend(t *testing.T) {
	ctx := context.Background()

	t.Run("empty window", func(t *testing.T) {
		svc := NewAnalysisService(NewMockDailyLogRepository(), newEngine())
		got, err := svc.Trend(ctx, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Trend != nil {
			t.Errorf("expected nil trend, got %+v", got.Trend)
		}
		if got.Days != DefaultTrendDays {
			t.Errorf("expected default days %d, got %d", DefaultTrendDays, got.Days)
		}
	})

	t.Run("uses most recent logs", func(t *testing.T) {
		repo := NewMockDailyLogRepository()
		for d := 1; d <= 10; d++ {
			energy := 8
			if d <= 3 {
				energy = 1
			}
			repo.add(day(d), "a", "a", energy, 7)
		}
		svc := NewAnalysisService(repo, newEngine())

		got, err := svc.Trend(ctx, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Trend == nil || got.Trend.DaysAnalyzed != 7 {
			t.Fatalf("expected 7 days analyzed, got %+v", got.Trend)
		}
		if got.Trend.AvgEnergy != 8 {
			t.Errorf("expected the low-energy early days to be outside the window, got %v", got.Trend.AvgEnergy)
		}
	})
}

func TestAnalysisService_DepthAndBalance(t *testing.T) {
	repo := NewMockDailyLogRepository()
	for d := 1; d <= 6; d++ {
		repo.add(day(d), "DSA", "DSA: easy array problems on leetcode\nWatched a lecture", 6, 6)
	}
	svc := NewAnalysisService(repo, newEngine())
	ctx := context.Background()

	dsa, err := svc.DSADepth(ctx, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dsa.LevelScore[0] != 6 || len(dsa.Warnings) == 0 {
		t.Errorf("expected easy-level warning, got %+v", dsa)
	}

	ai, err := svc.AIDepth(ctx, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ai.DominantLevel != 0 {
		t.Errorf("expected dominant level 0, got %d", ai.DominantLevel)
	}

	balance, err := svc.Balance(ctx, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance.DaysAnalyzed != 3 {
		t.Errorf("expected 3 days, got %d", balance.DaysAnalyzed)
	}
}

func TestAnalysisService_Weekly(t *testing.T) {
	repo := NewMockDailyLogRepository()
	repo.add(day(1), "Polity", "Polity: parliament", 7, 7)
	repo.add(day(2), "Maths", "Maths: calculus", 7, 7)
	svc := NewAnalysisService(repo, newEngine())

	got, err := svc.Weekly(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Window.Days != DefaultWeeklyDays || got.Window.Count != 2 {
		t.Errorf("unexpected window: %+v", got.Window)
	}
	if len(got.Verdict.Verdicts) == 0 {
		t.Errorf("expected at least one verdict")
	}
}

func TestAnalysisService_RepositoryError(t *testing.T) {
	repo := NewMockDailyLogRepository()
	repo.err = errors.New("db down")
	svc := NewAnalysisService(repo, newEngine())

	if _, err := svc.Weekly(context.Background(), 7); err == nil {
		t.Errorf("expected error")
	}
	if _, err := svc.Trend(context.Background(), 7); err == nil {
		t.Errorf("expected error")
	}
}
