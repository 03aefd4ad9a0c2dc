package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/blaisecz/study-tracker/internal/domain"
)

func TestReminderService_Run(t *testing.T) {
	today := time.Date(2024, 1, 15, 21, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		logged       []int
		wantSkipped  bool
		wantStatus   domain.StreakStatus
		wantContains []string
	}{
		{
			name:        "already logged today",
			logged:      []int{14, 15},
			wantSkipped: true,
			wantStatus:  domain.StreakContinue,
		},
		{
			name:         "streak intact",
			logged:       []int{12, 13, 14},
			wantStatus:   domain.StreakContinue,
			wantContains: []string{"🔥 Streak intact: 3 day(s).", "Discipline Score: 100/100", "Please log your day."},
		},
		{
			name:         "streak broken",
			logged:       []int{10},
			wantStatus:   domain.StreakBroken,
			wantContains: []string{"❌ Streak broken. Last log: 2024-01-10", "Discipline Score: 20/100"},
		},
		{
			name:         "first day",
			wantStatus:   domain.StreakNew,
			wantContains: []string{"🆕 First log day.", "Discipline Score: 50/100"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewMockDailyLogRepository()
			for _, d := range tt.logged {
				repo.add(day(d), "a", "a", 7, 7)
			}
			notifier := &MockNotifier{enabled: true}
			svc := NewReminderService(repo, notifier)

			got, err := svc.Run(context.Background(), today)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Skipped != tt.wantSkipped {
				t.Errorf("Skipped = %v, want %v", got.Skipped, tt.wantSkipped)
			}
			if got.Streak.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", got.Streak.Status, tt.wantStatus)
			}

			if tt.wantSkipped {
				if len(notifier.messages) != 0 {
					t.Errorf("expected no message, got %v", notifier.messages)
				}
				return
			}

			if !got.Notified || len(notifier.messages) != 1 {
				t.Fatalf("expected one notification, got %v", notifier.messages)
			}
			msg := notifier.messages[0]
			if !strings.HasPrefix(msg, "📅 Daily Check-in\n\n") {
				t.Errorf("unexpected header: %q", msg)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing %q", msg, want)
				}
			}
		})
	}
}

func TestReminderService_RepositoryError(t *testing.T) {
	repo := NewMockDailyLogRepository()
	repo.err = errors.New("db down")
	svc := NewReminderService(repo, &MockNotifier{enabled: true})

	if _, err := svc.Run(context.Background(), day(15)); err == nil {
		t.Errorf("expected error")
	}
	if _, err := svc.Streak(context.Background(), day(15)); err == nil {
		t.Errorf("expected error")
	}
}
