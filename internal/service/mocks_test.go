package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/langfuse"
	"github.com/blaisecz/study-tracker/pkg/pagination"
)

// MockDailyLogRepository is a mock implementation of DailyLogRepository
type MockDailyLogRepository struct {
	logs map[string]*domain.DailyLog
	err  error
}

func NewMockDailyLogRepository() *MockDailyLogRepository {
	return &MockDailyLogRepository{
		logs: make(map[string]*domain.DailyLog),
	}
}

func (m *MockDailyLogRepository) add(date time.Time, planned, actual string, energy, clarity int) {
	d := domain.NormalizeDate(date)
	m.logs[d.Format(domain.DateLayout)] = &domain.DailyLog{
		LogDate:      d,
		PlannedTasks: planned,
		ActualTasks:  actual,
		Energy:       energy,
		Clarity:      clarity,
	}
}

func (m *MockDailyLogRepository) sorted(desc bool) []domain.DailyLog {
	out := make([]domain.DailyLog, 0, len(m.logs))
	for _, l := range m.logs {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool {
		if desc {
			return out[i].LogDate.After(out[j].LogDate)
		}
		return out[i].LogDate.Before(out[j].LogDate)
	})
	return out
}

func (m *MockDailyLogRepository) Upsert(ctx context.Context, log *domain.DailyLog) error {
	if m.err != nil {
		return m.err
	}
	log.LogDate = domain.NormalizeDate(log.LogDate)
	key := log.LogDate.Format(domain.DateLayout)
	if existing, ok := m.logs[key]; ok {
		log.ID = existing.ID
		log.CreatedAt = existing.CreatedAt
	} else {
		log.CreatedAt = time.Now()
	}
	log.UpdatedAt = time.Now()
	stored := *log
	m.logs[key] = &stored
	return nil
}

func (m *MockDailyLogRepository) GetByDate(ctx context.Context, date time.Time) (*domain.DailyLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	log, ok := m.logs[domain.NormalizeDate(date).Format(domain.DateLayout)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return log, nil
}

func (m *MockDailyLogRepository) ListRecent(ctx context.Context, n int) ([]domain.DailyLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := m.sorted(true)
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (m *MockDailyLogRepository) ListAll(ctx context.Context) ([]domain.DailyLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.sorted(false), nil
}

func (m *MockDailyLogRepository) List(ctx context.Context, filter domain.DailyLogFilter) ([]domain.DailyLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var before *time.Time
	if c, err := pagination.DecodeCursor(filter.Cursor); err == nil && c != nil {
		before = &c.Date
	}
	var out []domain.DailyLog
	for _, l := range m.sorted(true) {
		if before != nil && !l.LogDate.Before(*before) {
			continue
		}
		out = append(out, l)
	}
	limit := pagination.NormalizeLimit(filter.Limit) + 1
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockDailyLogRepository) LatestDate(ctx context.Context) (*time.Time, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := m.sorted(true)
	if len(out) == 0 {
		return nil, nil
	}
	d := out[0].LogDate
	return &d, nil
}

// MockWeeklyVerdictRepository is a mock implementation of WeeklyVerdictRepository
type MockWeeklyVerdictRepository struct {
	records []domain.WeeklyVerdictRecord
	err     error
}

func (m *MockWeeklyVerdictRepository) Create(ctx context.Context, record *domain.WeeklyVerdictRecord) error {
	if m.err != nil {
		return m.err
	}
	record.CreatedAt = time.Now()
	m.records = append(m.records, *record)
	return nil
}

func (m *MockWeeklyVerdictRepository) ListRecent(ctx context.Context, limit int) ([]domain.WeeklyVerdictRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.WeeklyVerdictRecord, len(m.records))
	copy(out, m.records)
	sort.Slice(out, func(i, j int) bool { return out[i].WeekStart.After(out[j].WeekStart) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// MockNotifier records messages
type MockNotifier struct {
	enabled  bool
	messages []string
	err      error
}

func (m *MockNotifier) Notify(ctx context.Context, text string) error {
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, text)
	return nil
}

func (m *MockNotifier) Enabled() bool { return m.enabled }

// MockCoach is a mock implementation of llm.CoachLLM
type MockCoach struct {
	output   *domain.CoachingOutput
	err      error
	received *domain.CoachingContext
}

func (m *MockCoach) Coach(ctx context.Context, c *domain.CoachingContext) (*domain.CoachingOutput, error) {
	m.received = c
	if m.err != nil {
		return nil, m.err
	}
	return m.output, nil
}

// MockLangfuse records traces and scores
type MockLangfuse struct {
	enabled bool
	traces  []langfuse.TraceInput
	scores  []langfuse.ScoreInput
}

func (m *MockLangfuse) IsEnabled() bool { return m.enabled }

func (m *MockLangfuse) CreateTrace(ctx context.Context, in langfuse.TraceInput) (string, error) {
	if !m.enabled {
		return "", nil
	}
	m.traces = append(m.traces, in)
	return "trace-1", nil
}

func (m *MockLangfuse) CreateScore(ctx context.Context, in langfuse.ScoreInput) error {
	if !m.enabled {
		return nil
	}
	if in.TraceID == "" {
		return errors.New("trace id required")
	}
	m.scores = append(m.scores, in)
	return nil
}

func (m *MockLangfuse) Flush(ctx context.Context) error { return nil }
