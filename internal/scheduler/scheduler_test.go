package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWeekly struct {
	err   error
	calls int
	now   time.Time
}

func (f *fakeWeekly) Run(ctx context.Context, now time.Time) (*domain.WeeklyRunResponse, error) {
	f.calls++
	f.now = now
	if f.err != nil {
		return nil, f.err
	}
	return &domain.WeeklyRunResponse{Record: domain.WeeklyVerdictResponse{WeekStart: "2024-01-14"}}, nil
}

func (f *fakeWeekly) History(ctx context.Context, limit int) ([]domain.WeeklyVerdictRecord, error) {
	return nil, nil
}

type fakeReminder struct {
	result *domain.ReminderResult
	err    error
	calls  int
}

func (f *fakeReminder) Run(ctx context.Context, today time.Time) (*domain.ReminderResult, error) {
	f.calls++
	return f.result, f.err
}

func (f *fakeReminder) Streak(ctx context.Context, today time.Time) (*domain.StreakSummary, error) {
	return &domain.StreakSummary{}, nil
}

func defaultConfig() Config {
	return Config{WeeklySpec: "0 20 * * 0", ReminderSpec: "0 21 * * *", Location: time.UTC}
}

func TestNew_RejectsBadSpecs(t *testing.T) {
	_, err := New(Config{WeeklySpec: "not a cron", ReminderSpec: "0 21 * * *"}, &fakeWeekly{}, &fakeReminder{})
	assert.ErrorContains(t, err, "weekly cron")

	_, err = New(Config{WeeklySpec: "0 20 * * 0", ReminderSpec: "61 * * * *"}, &fakeWeekly{}, &fakeReminder{})
	assert.ErrorContains(t, err, "reminder cron")

	s, err := New(Config{WeeklySpec: "@weekly", ReminderSpec: "@daily"}, &fakeWeekly{}, &fakeReminder{})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, s.cfg.Location)
}

func TestRunWeekly(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)

	weekly := &fakeWeekly{}
	s, err := New(Config{WeeklySpec: "0 20 * * 0", ReminderSpec: "0 21 * * *", Location: loc}, weekly, &fakeReminder{})
	require.NoError(t, err)

	require.NoError(t, s.RunWeekly(context.Background()))
	assert.Equal(t, 1, weekly.calls)
	assert.Equal(t, loc, weekly.now.Location())

	weekly.err = domain.ErrNoLogs
	assert.NoError(t, s.RunWeekly(context.Background()), "no logs is not a job failure")

	weekly.err = errors.New("db down")
	assert.Error(t, s.RunWeekly(context.Background()))
}

func TestRunReminder(t *testing.T) {
	reminder := &fakeReminder{result: &domain.ReminderResult{Skipped: true}}
	s, err := New(defaultConfig(), &fakeWeekly{}, reminder)
	require.NoError(t, err)

	require.NoError(t, s.RunReminder(context.Background()))

	reminder.result = &domain.ReminderResult{Streak: domain.StreakSummary{Status: domain.StreakBroken}, Notified: true}
	require.NoError(t, s.RunReminder(context.Background()))

	reminder.err = errors.New("db down")
	assert.Error(t, s.RunReminder(context.Background()))
	assert.Equal(t, 3, reminder.calls)
}

func TestStartStop(t *testing.T) {
	s, err := New(defaultConfig(), &fakeWeekly{}, &fakeReminder{})
	require.NoError(t, err)

	_, ok := s.Next("weekly")
	assert.False(t, ok, "no schedule before Start")

	require.NoError(t, s.Start(context.Background()))
	assert.Error(t, s.Start(context.Background()), "second Start must fail")

	next, ok := s.Next("weekly")
	require.True(t, ok)
	assert.Equal(t, time.Sunday, next.Weekday())
	assert.Equal(t, 20, next.Hour())

	next, ok = s.Next("reminder")
	require.True(t, ok)
	assert.Equal(t, 21, next.Hour())

	_, ok = s.Next("unknown")
	assert.False(t, ok)

	s.Stop()
	_, ok = s.Next("weekly")
	assert.False(t, ok)

	// Stopping twice is harmless
	s.Stop()
}
