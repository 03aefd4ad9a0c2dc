package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/blaisecz/study-tracker/internal/analysis"
	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/notify"
	"github.com/blaisecz/study-tracker/internal/repository"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StreakLookbackLogs bounds how many recent logs are read to measure a streak.
const StreakLookbackLogs = 366

// ReminderService runs the daily check-in.
type ReminderService interface {
	// Run does nothing when today is already logged; otherwise it sends the
	// streak status and discipline score with a prompt to log.
	Run(ctx context.Context, today time.Time) (*domain.ReminderResult, error)
	Streak(ctx context.Context, today time.Time) (*domain.StreakSummary, error)
}

type reminderService struct {
	repo     repository.DailyLogRepository
	notifier notify.Notifier
}

func NewReminderService(repo repository.DailyLogRepository, notifier notify.Notifier) ReminderService {
	return &reminderService{
		repo:     repo,
		notifier: notifier,
	}
}

func (s *reminderService) Run(ctx context.Context, today time.Time) (*domain.ReminderResult, error) {
	tracer := otel.Tracer("study-tracker-api/reminder")
	ctx, span := tracer.Start(ctx, "ReminderService.Run",
		trace.WithAttributes(attribute.String("reminder.today", today.Format(domain.DateLayout))),
	)
	defer span.End()

	latest, err := s.repo.LatestDate(ctx)
	if err != nil {
		return nil, fmt.Errorf("load latest log date: %w", err)
	}

	if latest != nil && latest.Equal(domain.NormalizeDate(today)) {
		log.Printf("[reminder] %s already logged", today.Format(domain.DateLayout))
		streak, err := s.Streak(ctx, today)
		if err != nil {
			return nil, err
		}
		return &domain.ReminderResult{Skipped: true, Streak: *streak}, nil
	}

	streak, err := s.Streak(ctx, today)
	if err != nil {
		return nil, err
	}

	message := ReminderMessage(*streak)
	span.SetAttributes(attribute.String("reminder.streak", string(streak.Status)))

	return &domain.ReminderResult{
		Streak:   *streak,
		Message:  message,
		Notified: deliver(ctx, s.notifier, message, "reminder"),
	}, nil
}

func (s *reminderService) Streak(ctx context.Context, today time.Time) (*domain.StreakSummary, error) {
	logs, err := s.repo.ListRecent(ctx, StreakLookbackLogs)
	if err != nil {
		return nil, fmt.Errorf("load recent logs: %w", err)
	}

	dates := make([]time.Time, len(logs))
	for i := range logs {
		dates[i] = logs[i].LogDate
	}

	summary := analysis.Streak(dates, today)
	return &summary, nil
}

// ReminderMessage renders the daily check-in text.
func ReminderMessage(streak domain.StreakSummary) string {
	var b strings.Builder
	b.WriteString("📅 Daily Check-in\n\n")

	switch streak.Status {
	case domain.StreakBroken:
		fmt.Fprintf(&b, "❌ Streak broken. Last log: %s\n", streak.LastLogDate)
	case domain.StreakContinue:
		fmt.Fprintf(&b, "🔥 Streak intact: %d day(s).\n", streak.Length)
	default:
		b.WriteString("🆕 First log day.\n")
	}

	fmt.Fprintf(&b, "\n🎯 Discipline Score: %d/100\n\n", streak.DisciplineScore)
	b.WriteString("Please log your day.")
	return b.String()
}
