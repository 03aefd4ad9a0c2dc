package repository

import (
	"context"
	"errors"
	"time"

	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyLogRepository interface {
	Upsert(ctx context.Context, log *domain.DailyLog) error
	GetByDate(ctx context.Context, date time.Time) (*domain.DailyLog, error)
	ListRecent(ctx context.Context, n int) ([]domain.DailyLog, error)
	ListAll(ctx context.Context) ([]domain.DailyLog, error)
	List(ctx context.Context, filter domain.DailyLogFilter) ([]domain.DailyLog, error)
	LatestDate(ctx context.Context) (*time.Time, error)
}

type dailyLogRepository struct {
	db *gorm.DB
}

func NewDailyLogRepository(db *gorm.DB) DailyLogRepository {
	return &dailyLogRepository{db: db}
}

// Upsert inserts the log or replaces the fields of the existing log for the
// same date. On return log holds the stored row.
func (r *dailyLogRepository) Upsert(ctx context.Context, log *domain.DailyLog) error {
	log.LogDate = domain.NormalizeDate(log.LogDate)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "log_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"planned_tasks", "actual_tasks", "energy", "clarity", "reflection", "updated_at",
		}),
	}).Create(log).Error
	if err != nil {
		return err
	}

	// On conflict the generated ID was discarded; reload the surviving row.
	stored, err := r.GetByDate(ctx, log.LogDate)
	if err != nil {
		return err
	}
	*log = *stored
	return nil
}

func (r *dailyLogRepository) GetByDate(ctx context.Context, date time.Time) (*domain.DailyLog, error) {
	var log domain.DailyLog
	err := r.db.WithContext(ctx).First(&log, "log_date = ?", domain.NormalizeDate(date)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &log, nil
}

// ListRecent returns up to n logs, newest first.
func (r *dailyLogRepository) ListRecent(ctx context.Context, n int) ([]domain.DailyLog, error) {
	var logs []domain.DailyLog
	err := r.db.WithContext(ctx).
		Order("log_date DESC").
		Limit(n).
		Find(&logs).Error
	return logs, err
}

// ListAll returns every log, oldest first.
func (r *dailyLogRepository) ListAll(ctx context.Context) ([]domain.DailyLog, error) {
	var logs []domain.DailyLog
	err := r.db.WithContext(ctx).Order("log_date ASC").Find(&logs).Error
	return logs, err
}

func (r *dailyLogRepository) List(ctx context.Context, filter domain.DailyLogFilter) ([]domain.DailyLog, error) {
	query := r.db.WithContext(ctx).Order("log_date DESC")

	if filter.From != nil {
		query = query.Where("log_date >= ?", domain.NormalizeDate(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("log_date <= ?", domain.NormalizeDate(*filter.To))
	}

	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			query = query.Where("log_date < ?", domain.NormalizeDate(cursor.Date))
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var logs []domain.DailyLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// LatestDate returns the most recent log date, or nil when nothing is logged.
func (r *dailyLogRepository) LatestDate(ctx context.Context) (*time.Time, error) {
	var log domain.DailyLog
	err := r.db.WithContext(ctx).
		Select("log_date").
		Order("log_date DESC").
		Take(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	date := domain.NormalizeDate(log.LogDate)
	return &date, nil
}
