// Package scheduler runs the weekly verdict and daily check-in on cron schedules.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/service"
	rcron "github.com/robfig/cron/v3"
)

// StopTimeout bounds how long Stop waits for running jobs.
const StopTimeout = 5 * time.Second

// Config holds the standard five-field cron specs and the timezone they run in.
type Config struct {
	WeeklySpec   string
	ReminderSpec string
	Location     *time.Location
}

type Scheduler struct {
	weekly   service.WeeklyService
	reminder service.ReminderService
	cfg      Config

	mu      sync.Mutex
	cron    *rcron.Cron
	entries map[string]rcron.EntryID
	cancel  context.CancelFunc
	ctx     context.Context
}

// New validates both specs and returns a stopped scheduler.
func New(cfg Config, weekly service.WeeklyService, reminder service.ReminderService) (*Scheduler, error) {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	parser := rcron.NewParser(rcron.Minute | rcron.Hour | rcron.Dom | rcron.Month | rcron.Dow | rcron.Descriptor)
	if _, err := parser.Parse(cfg.WeeklySpec); err != nil {
		return nil, fmt.Errorf("weekly cron %q: %w", cfg.WeeklySpec, err)
	}
	if _, err := parser.Parse(cfg.ReminderSpec); err != nil {
		return nil, fmt.Errorf("reminder cron %q: %w", cfg.ReminderSpec, err)
	}

	return &Scheduler{
		weekly:   weekly,
		reminder: reminder,
		cfg:      cfg,
		entries:  make(map[string]rcron.EntryID),
	}, nil
}

// Start registers both jobs and starts the cron loop. Jobs run with a context
// derived from ctx, cancelled by Stop.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil {
		return errors.New("scheduler already started")
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.cron = rcron.New(rcron.WithLocation(s.cfg.Location))

	jobs := []struct {
		name string
		spec string
		run  func(context.Context) error
	}{
		{"weekly", s.cfg.WeeklySpec, s.RunWeekly},
		{"reminder", s.cfg.ReminderSpec, s.RunReminder},
	}
	for _, job := range jobs {
		job := job
		id, err := s.cron.AddFunc(job.spec, func() {
			if err := job.run(s.ctx); err != nil {
				log.Printf("[scheduler] job %s error: %v", job.name, err)
			}
		})
		if err != nil {
			s.cancel()
			s.cron = nil
			return fmt.Errorf("register %s job: %w", job.name, err)
		}
		s.entries[job.name] = id
	}

	s.cron.Start()
	log.Printf("[scheduler] started: weekly=%q reminder=%q tz=%s",
		s.cfg.WeeklySpec, s.cfg.ReminderSpec, s.cfg.Location)
	return nil
}

// Next returns the next scheduled run of the named job ("weekly" or "reminder").
func (s *Scheduler) Next(name string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return time.Time{}, false
	}
	id, ok := s.entries[name]
	if !ok {
		return time.Time{}, false
	}
	return s.cron.Entry(id).Next, true
}

// Stop halts scheduling and waits up to StopTimeout for running jobs.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	c := s.cron
	cancel := s.cancel
	s.cron = nil
	s.cancel = nil
	s.entries = make(map[string]rcron.EntryID)
	s.mu.Unlock()

	if c == nil {
		return
	}

	stopCtx := c.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(StopTimeout):
		log.Printf("[scheduler] stop timeout waiting for running jobs")
	}
	if cancel != nil {
		cancel()
	}
	log.Printf("[scheduler] stopped")
}

// RunWeekly runs the weekly verdict once. An empty log history is not an error.
func (s *Scheduler) RunWeekly(ctx context.Context) error {
	result, err := s.weekly.Run(ctx, s.now())
	if errors.Is(err, domain.ErrNoLogs) {
		log.Printf("[scheduler] weekly verdict skipped: no logs")
		return nil
	}
	if err != nil {
		return err
	}
	log.Printf("[scheduler] weekly verdict stored for week of %s (notified=%v)",
		result.Record.WeekStart, result.Notified)
	return nil
}

// RunReminder runs the daily check-in once.
func (s *Scheduler) RunReminder(ctx context.Context) error {
	result, err := s.reminder.Run(ctx, s.now())
	if err != nil {
		return err
	}
	if result.Skipped {
		log.Printf("[scheduler] reminder skipped: today already logged")
		return nil
	}
	log.Printf("[scheduler] reminder sent (streak=%s notified=%v)", result.Streak.Status, result.Notified)
	return nil
}

func (s *Scheduler) now() time.Time {
	return time.Now().In(s.cfg.Location)
}
