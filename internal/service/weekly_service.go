package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/blaisecz/study-tracker/internal/analysis"
	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/langfuse"
	"github.com/blaisecz/study-tracker/internal/notify"
	"github.com/blaisecz/study-tracker/internal/repository"
	"github.com/blaisecz/study-tracker/internal/telemetry"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// WeeklyWindowLogs is how many recent logs feed the weekly verdict.
	WeeklyWindowLogs = 7

	// DefaultHistoryLimit is the default number of stored verdicts returned.
	DefaultHistoryLimit = 10

	weeklyHeader = "📊 Weekly Verdict\n\n"
)

// WeeklyService runs the weekly review: analyze, store, notify.
type WeeklyService interface {
	// Run analyzes the last seven logs as of now. It returns domain.ErrNoLogs
	// and stores nothing when no logs exist.
	Run(ctx context.Context, now time.Time) (*domain.WeeklyRunResponse, error)
	History(ctx context.Context, limit int) ([]domain.WeeklyVerdictRecord, error)
}

type weeklyService struct {
	logRepo     repository.DailyLogRepository
	verdictRepo repository.WeeklyVerdictRepository
	engine      *analysis.Engine
	notifier    notify.Notifier
	tracer      langfuse.Client
}

func NewWeeklyService(
	logRepo repository.DailyLogRepository,
	verdictRepo repository.WeeklyVerdictRepository,
	engine *analysis.Engine,
	notifier notify.Notifier,
	lf langfuse.Client,
) WeeklyService {
	return &weeklyService{
		logRepo:     logRepo,
		verdictRepo: verdictRepo,
		engine:      engine,
		notifier:    notifier,
		tracer:      lf,
	}
}

func (s *weeklyService) Run(ctx context.Context, now time.Time) (*domain.WeeklyRunResponse, error) {
	tracer := otel.Tracer("study-tracker-api/weekly")
	ctx, span := tracer.Start(ctx, "WeeklyService.Run",
		trace.WithAttributes(attribute.String("weekly.now", now.Format(time.RFC3339))),
	)
	defer span.End()

	logs, err := s.logRepo.ListRecent(ctx, WeeklyWindowLogs)
	if err != nil {
		return nil, fmt.Errorf("load recent logs: %w", err)
	}
	if len(logs) == 0 {
		log.Printf("[weekly] no logs, skipping verdict")
		return nil, domain.ErrNoLogs
	}

	report := s.engine.Weekly(domain.Records(logs))
	report.Window.Days = WeeklyWindowLogs
	telemetry.AnalysesTotal.WithLabelValues("weekly").Inc()

	text := analysis.FormatVerdict(report.Verdict)
	record := &domain.WeeklyVerdictRecord{
		ID:          uuid.New(),
		WeekStart:   domain.NormalizeDate(now.AddDate(0, 0, -7)),
		VerdictText: text,
	}
	if err := s.verdictRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("store weekly verdict: %w", err)
	}
	telemetry.VerdictsTotal.Inc()
	span.SetAttributes(attribute.Int("weekly.verdicts", len(report.Verdict.Verdicts)))

	if s.tracer != nil {
		year, week := now.ISOWeek()
		_, _ = s.tracer.CreateTrace(ctx, langfuse.TraceInput{
			SessionID: fmt.Sprintf("%d-W%02d", year, week),
			Name:      langfuse.TraceWeeklyVerdict,
			Input:     report.Window,
			Output:    report.Verdict,
			Tags:      []string{"study-tracker", "weekly"},
		})
	}

	notified := deliver(ctx, s.notifier, weeklyHeader+text, "weekly")

	return &domain.WeeklyRunResponse{
		Record:   record.ToResponse(),
		Report:   report,
		Notified: notified,
	}, nil
}

func (s *weeklyService) History(ctx context.Context, limit int) ([]domain.WeeklyVerdictRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.verdictRepo.ListRecent(ctx, limit)
}

// deliver sends text through n. Failures are logged and counted, never returned.
func deliver(ctx context.Context, n notify.Notifier, text, component string) bool {
	if n == nil || !n.Enabled() {
		telemetry.NotificationsTotal.WithLabelValues(telemetry.NotificationSkipped).Inc()
		return false
	}
	if err := n.Notify(ctx, text); err != nil {
		log.Printf("[%s] notification failed: %v", component, err)
		telemetry.NotificationsTotal.WithLabelValues(telemetry.NotificationFailed).Inc()
		return false
	}
	telemetry.NotificationsTotal.WithLabelValues(telemetry.NotificationSent).Inc()
	return true
}
