package service

import (
	"context"
	"encoding/json"

	"github.com/blaisecz/study-tracker/internal/analysis"
	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/repository"
	"github.com/blaisecz/study-tracker/internal/telemetry"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// Default windows, counted in most recent logs.
	DefaultTrendDays   = 7
	DefaultBalanceDays = 7
	DefaultDepthDays   = 14
	DefaultWeeklyDays  = 7

	// MaxWindowDays caps every analysis window.
	MaxWindowDays = 365
)

// AnalysisService runs the window analyses over the most recent logs.
// A window of n days means the n most recent logged days.
type AnalysisService interface {
	Trend(ctx context.Context, days int) (*domain.TrendResponse, error)
	Balance(ctx context.Context, days int) (*domain.BalanceSummary, error)
	AIDepth(ctx context.Context, days int) (*domain.DepthProfile, error)
	DSADepth(ctx context.Context, days int) (*domain.DepthProfile, error)
	Weekly(ctx context.Context, days int) (*domain.WeeklyReport, error)
}

type analysisService struct {
	repo   repository.DailyLogRepository
	engine *analysis.Engine
}

func NewAnalysisService(repo repository.DailyLogRepository, engine *analysis.Engine) AnalysisService {
	return &analysisService{
		repo:   repo,
		engine: engine,
	}
}

// NormalizeDays applies the default for non-positive values and the upper cap.
func NormalizeDays(days, def int) int {
	if days <= 0 {
		return def
	}
	if days > MaxWindowDays {
		return MaxWindowDays
	}
	return days
}

func (s *analysisService) Trend(ctx context.Context, days int) (*domain.TrendResponse, error) {
	days = NormalizeDays(days, DefaultTrendDays)
	var out *domain.TrendResponse
	err := s.run(ctx, "trend", days, func(records []domain.LogRecord) any {
		out = &domain.TrendResponse{Days: days, Trend: s.engine.Trend(records)}
		return out
	})
	return out, err
}

func (s *analysisService) Balance(ctx context.Context, days int) (*domain.BalanceSummary, error) {
	days = NormalizeDays(days, DefaultBalanceDays)
	var out domain.BalanceSummary
	err := s.run(ctx, "balance", days, func(records []domain.LogRecord) any {
		out = s.engine.Balance(records)
		return out
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *analysisService) AIDepth(ctx context.Context, days int) (*domain.DepthProfile, error) {
	days = NormalizeDays(days, DefaultDepthDays)
	var out domain.DepthProfile
	err := s.run(ctx, "depth_ai", days, func(records []domain.LogRecord) any {
		out = s.engine.AIDepth(records)
		return out
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *analysisService) DSADepth(ctx context.Context, days int) (*domain.DepthProfile, error) {
	days = NormalizeDays(days, DefaultDepthDays)
	var out domain.DepthProfile
	err := s.run(ctx, "depth_dsa", days, func(records []domain.LogRecord) any {
		out = s.engine.DSADepth(records)
		return out
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *analysisService) Weekly(ctx context.Context, days int) (*domain.WeeklyReport, error) {
	days = NormalizeDays(days, DefaultWeeklyDays)
	var out domain.WeeklyReport
	err := s.run(ctx, "weekly", days, func(records []domain.LogRecord) any {
		out = s.engine.Weekly(records)
		out.Window.Days = days
		return out
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// run loads the window, traces the computation and counts it.
func (s *analysisService) run(ctx context.Context, kind string, days int, compute func([]domain.LogRecord) any) error {
	tracer := otel.Tracer("study-tracker-api/analysis")
	ctx, span := tracer.Start(ctx, "AnalysisService."+kind,
		trace.WithAttributes(
			attribute.String("analysis.kind", kind),
			attribute.Int("window.days", days),
		),
	)
	defer span.End()

	logs, err := s.repo.ListRecent(ctx, days)
	if err != nil {
		span.RecordError(err)
		return err
	}
	span.SetAttributes(attribute.Int("window.count", len(logs)))

	result := compute(domain.Records(logs))
	telemetry.AnalysesTotal.WithLabelValues(kind).Inc()

	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}
	return nil
}
