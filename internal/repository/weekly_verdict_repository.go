package repository

import (
	"context"

	"github.com/blaisecz/study-tracker/internal/domain"
	"gorm.io/gorm"
)

// WeeklyVerdictRepository stores weekly review text. Rows are never updated.
type WeeklyVerdictRepository interface {
	Create(ctx context.Context, record *domain.WeeklyVerdictRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.WeeklyVerdictRecord, error)
}

type weeklyVerdictRepository struct {
	db *gorm.DB
}

func NewWeeklyVerdictRepository(db *gorm.DB) WeeklyVerdictRepository {
	return &weeklyVerdictRepository{db: db}
}

func (r *weeklyVerdictRepository) Create(ctx context.Context, record *domain.WeeklyVerdictRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *weeklyVerdictRepository) ListRecent(ctx context.Context, limit int) ([]domain.WeeklyVerdictRecord, error) {
	var records []domain.WeeklyVerdictRecord
	err := r.db.WithContext(ctx).
		Order("week_start DESC, created_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}
