package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/langfuse"
	"github.com/blaisecz/study-tracker/internal/llm"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// InsightsService pairs the deterministic weekly report with an LLM coaching note.
type InsightsService interface {
	// Generate builds the report over the last days logs and asks the LLM to coach on it.
	Generate(ctx context.Context, days int, now time.Time) (*domain.InsightsResponse, error)
	// Feedback records a rating for a previously generated coaching note.
	Feedback(ctx context.Context, req *domain.FeedbackRequest) error
}

type insightsService struct {
	analysisService AnalysisService
	reminderService ReminderService
	coach           llm.CoachLLM
	lf              langfuse.Client
}

// NewInsightsService creates a new InsightsService. coach may be nil when
// OpenAI is not configured; Generate then returns llm.ErrOpenAIUnavailable.
func NewInsightsService(
	analysisService AnalysisService,
	reminderService ReminderService,
	coach llm.CoachLLM,
	lf langfuse.Client,
) InsightsService {
	return &insightsService{
		analysisService: analysisService,
		reminderService: reminderService,
		coach:           coach,
		lf:              lf,
	}
}

func (s *insightsService) Generate(ctx context.Context, days int, now time.Time) (*domain.InsightsResponse, error) {
	if s.coach == nil {
		return nil, llm.ErrOpenAIUnavailable
	}

	tracer := otel.Tracer("study-tracker-api/insights")
	ctx, span := tracer.Start(ctx, "InsightsService.Generate",
		trace.WithAttributes(attribute.Int("window.days", days)),
	)
	defer span.End()

	report, err := s.analysisService.Weekly(ctx, days)
	if err != nil {
		return nil, err
	}

	streak, err := s.reminderService.Streak(ctx, now)
	if err != nil {
		return nil, err
	}

	coachingCtx := &domain.CoachingContext{
		Report: *report,
		Streak: *streak,
	}
	if inputJSON, err := json.Marshal(coachingCtx); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	output, err := s.coach.Coach(ctx, coachingCtx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	response := &domain.InsightsResponse{
		Report:   *report,
		Streak:   *streak,
		Coaching: *output,
	}

	if s.lf != nil && s.lf.IsEnabled() {
		year, week := now.ISOWeek()
		traceID, err := s.lf.CreateTrace(ctx, langfuse.TraceInput{
			SessionID: fmt.Sprintf("%d-W%02d", year, week),
			Name:      langfuse.TraceWeeklyCoaching,
			Input:     coachingCtx,
			Output:    output,
			Tags:      []string{"study-tracker", "coaching"},
		})
		if err == nil {
			response.TraceID = traceID
		}
	} else if sc := span.SpanContext(); sc.HasTraceID() {
		response.TraceID = sc.TraceID().String()
	}

	return response, nil
}

func (s *insightsService) Feedback(ctx context.Context, req *domain.FeedbackRequest) error {
	if req.TraceID == "" || req.Rating < 1 || req.Rating > 5 {
		return domain.ErrInvalidInput
	}
	if s.lf == nil {
		return nil
	}
	return s.lf.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: req.TraceID,
		Name:    langfuse.ScoreCoachingRating,
		Value:   float64(req.Rating),
		Comment: req.Comment,
	})
}
