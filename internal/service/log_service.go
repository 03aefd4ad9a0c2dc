package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/blaisecz/study-tracker/internal/analysis"
	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/repository"
	"github.com/blaisecz/study-tracker/internal/telemetry"
	"github.com/blaisecz/study-tracker/pkg/pagination"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type LogService interface {
	// Save stores the log for req.Date, replacing any earlier log for that date,
	// and returns it with its day analysis.
	Save(ctx context.Context, req *domain.CreateDailyLogRequest) (*domain.DailyLog, *domain.DayAnalysis, error)
	Get(ctx context.Context, date time.Time) (*domain.DailyLog, error)
	List(ctx context.Context, filter domain.DailyLogFilter) (*domain.DailyLogListResponse, error)
	ListAll(ctx context.Context) ([]domain.DailyLog, error)
	// AnalyzeDay scores text without storing anything.
	AnalyzeDay(ctx context.Context, req *domain.AnalyzeDayRequest) *domain.DayAnalysis
}

type logService struct {
	repo   repository.DailyLogRepository
	engine *analysis.Engine
}

func NewLogService(repo repository.DailyLogRepository, engine *analysis.Engine) LogService {
	return &logService{
		repo:   repo,
		engine: engine,
	}
}

func (s *logService) Save(ctx context.Context, req *domain.CreateDailyLogRequest) (*domain.DailyLog, *domain.DayAnalysis, error) {
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		return nil, nil, domain.ErrInvalidInput
	}

	log := &domain.DailyLog{
		ID:           uuid.New(),
		LogDate:      date,
		PlannedTasks: req.PlannedTasks,
		ActualTasks:  req.ActualTasks,
		Energy:       req.Energy,
		Clarity:      req.Clarity,
		Reflection:   req.Reflection,
	}

	if err := s.repo.Upsert(ctx, log); err != nil {
		return nil, nil, err
	}

	result := s.score(ctx, log.PlannedTasks, log.ActualTasks, log.Energy, log.Clarity)
	return log, result, nil
}

func (s *logService) Get(ctx context.Context, date time.Time) (*domain.DailyLog, error) {
	return s.repo.GetByDate(ctx, date)
}

func (s *logService) List(ctx context.Context, filter domain.DailyLogFilter) (*domain.DailyLogListResponse, error) {
	logs, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	logs, next := pagination.Page(logs, filter.Limit, func(l domain.DailyLog) time.Time {
		return l.LogDate
	})

	response := &domain.DailyLogListResponse{
		Data: make([]domain.DailyLogResponse, len(logs)),
		Pagination: domain.PaginationResponse{
			NextCursor: next,
			HasMore:    next != "",
		},
	}

	for i := range logs {
		response.Data[i] = logs[i].ToResponse()
	}

	return response, nil
}

func (s *logService) ListAll(ctx context.Context) ([]domain.DailyLog, error) {
	return s.repo.ListAll(ctx)
}

func (s *logService) AnalyzeDay(ctx context.Context, req *domain.AnalyzeDayRequest) *domain.DayAnalysis {
	return s.score(ctx, req.PlannedTasks, req.ActualTasks, req.Energy, req.Clarity)
}

func (s *logService) score(ctx context.Context, planned, actual string, energy, clarity int) *domain.DayAnalysis {
	tracer := otel.Tracer("study-tracker-api/logs")
	_, span := tracer.Start(ctx, "LogService.AnalyzeDay",
		trace.WithAttributes(
			attribute.Int("day.energy", energy),
			attribute.Int("day.clarity", clarity),
		),
	)
	defer span.End()

	result := s.engine.Day(planned, actual, energy, clarity)
	telemetry.AnalysesTotal.WithLabelValues("day").Inc()

	span.SetAttributes(
		attribute.Float64("day.completion_ratio", result.CompletionRatio),
		attribute.String("day.burnout_flag", string(result.BurnoutFlag)),
	)
	if outputJSON, err := json.Marshal(result); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return &result
}
