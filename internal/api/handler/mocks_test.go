package handler

import (
	"context"
	"time"

	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/google/uuid"
)

// MockLogService is a mock implementation of LogService
type MockLogService struct {
	saveFunc    func(ctx context.Context, req *domain.CreateDailyLogRequest) (*domain.DailyLog, *domain.DayAnalysis, error)
	getFunc     func(ctx context.Context, date time.Time) (*domain.DailyLog, error)
	listFunc    func(ctx context.Context, filter domain.DailyLogFilter) (*domain.DailyLogListResponse, error)
	analyzeFunc func(ctx context.Context, req *domain.AnalyzeDayRequest) *domain.DayAnalysis
}

func (m *MockLogService) Save(ctx context.Context, req *domain.CreateDailyLogRequest) (*domain.DailyLog, *domain.DayAnalysis, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, req)
	}
	date, _ := time.Parse(domain.DateLayout, req.Date)
	log := &domain.DailyLog{
		ID:           uuid.New(),
		LogDate:      date,
		PlannedTasks: req.PlannedTasks,
		ActualTasks:  req.ActualTasks,
		Energy:       req.Energy,
		Clarity:      req.Clarity,
	}
	result := &domain.DayAnalysis{
		CompletionRatio: 1,
		BurnoutFlag:     domain.BurnoutLow,
		Gaps:            []string{},
		RiskFlags:       []string{},
	}
	return log, result, nil
}

func (m *MockLogService) Get(ctx context.Context, date time.Time) (*domain.DailyLog, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, date)
	}
	return nil, domain.ErrNotFound
}

func (m *MockLogService) List(ctx context.Context, filter domain.DailyLogFilter) (*domain.DailyLogListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, filter)
	}
	return &domain.DailyLogListResponse{
		Data:       []domain.DailyLogResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockLogService) ListAll(ctx context.Context) ([]domain.DailyLog, error) {
	return nil, nil
}

func (m *MockLogService) AnalyzeDay(ctx context.Context, req *domain.AnalyzeDayRequest) *domain.DayAnalysis {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, req)
	}
	return &domain.DayAnalysis{BurnoutFlag: domain.BurnoutLow, Gaps: []string{}, RiskFlags: []string{}}
}

// MockAnalysisService records the requested window sizes.
type MockAnalysisService struct {
	days []int
	err  error
}

func (m *MockAnalysisService) Trend(ctx context.Context, days int) (*domain.TrendResponse, error) {
	m.days = append(m.days, days)
	return &domain.TrendResponse{Days: days}, m.err
}

func (m *MockAnalysisService) Balance(ctx context.Context, days int) (*domain.BalanceSummary, error) {
	m.days = append(m.days, days)
	return &domain.BalanceSummary{Coverage: map[domain.Topic]int{}, Risks: []string{}}, m.err
}

func (m *MockAnalysisService) AIDepth(ctx context.Context, days int) (*domain.DepthProfile, error) {
	m.days = append(m.days, days)
	return &domain.DepthProfile{LevelScore: map[int]int{0: 0}, Warnings: []string{}}, m.err
}

func (m *MockAnalysisService) DSADepth(ctx context.Context, days int) (*domain.DepthProfile, error) {
	m.days = append(m.days, days)
	return &domain.DepthProfile{LevelScore: map[int]int{0: 0}, Warnings: []string{}}, m.err
}

func (m *MockAnalysisService) Weekly(ctx context.Context, days int) (*domain.WeeklyReport, error) {
	m.days = append(m.days, days)
	return &domain.WeeklyReport{Window: domain.WindowInfo{Days: days}}, m.err
}

type MockWeeklyService struct {
	runFunc  func(ctx context.Context, now time.Time) (*domain.WeeklyRunResponse, error)
	records  []domain.WeeklyVerdictRecord
	gotLimit int
}

func (m *MockWeeklyService) Run(ctx context.Context, now time.Time) (*domain.WeeklyRunResponse, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, now)
	}
	return nil, domain.ErrNoLogs
}

func (m *MockWeeklyService) History(ctx context.Context, limit int) ([]domain.WeeklyVerdictRecord, error) {
	m.gotLimit = limit
	return m.records, nil
}

type MockReminderService struct {
	today time.Time
}

func (m *MockReminderService) Run(ctx context.Context, today time.Time) (*domain.ReminderResult, error) {
	m.today = today
	return &domain.ReminderResult{Skipped: true, Streak: domain.StreakSummary{Status: domain.StreakContinue, Length: 1, DisciplineScore: 100}}, nil
}

func (m *MockReminderService) Streak(ctx context.Context, today time.Time) (*domain.StreakSummary, error) {
	m.today = today
	return &domain.StreakSummary{Status: domain.StreakContinue, Length: 3, LastLogDate: today.Format(domain.DateLayout), DisciplineScore: 100}, nil
}

type MockInsightsService struct {
	generateErr error
	feedback    []domain.FeedbackRequest
	gotDays     int
}

func (m *MockInsightsService) Generate(ctx context.Context, days int, now time.Time) (*domain.InsightsResponse, error) {
	m.gotDays = days
	if m.generateErr != nil {
		return nil, m.generateErr
	}
	return &domain.InsightsResponse{
		Coaching: domain.CoachingOutput{Summary: "Steady week.", Guidance: []string{"Revise graphs"}},
		TraceID:  "trace-123",
	}, nil
}

func (m *MockInsightsService) Feedback(ctx context.Context, req *domain.FeedbackRequest) error {
	m.feedback = append(m.feedback, *req)
	return nil
}
