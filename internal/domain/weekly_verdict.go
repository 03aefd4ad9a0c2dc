package domain

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyVerdictRecord is an append-only row holding the text of one weekly review.
type WeeklyVerdictRecord struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	WeekStart   time.Time `gorm:"type:date;not null;index:idx_weekly_verdicts_week_start,sort:desc" json:"week_start"`
	VerdictText string    `gorm:"type:text;not null" json:"verdict_text"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (WeeklyVerdictRecord) TableName() string {
	return "weekly_verdicts"
}

// WeeklyVerdictResponse is the response body for stored verdicts.
// @Description Stored weekly verdict.
type WeeklyVerdictResponse struct {
	ID          uuid.UUID `json:"id"`
	WeekStart   string    `json:"week_start" example:"2024-01-08"`
	VerdictText string    `json:"verdict_text"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r *WeeklyVerdictRecord) ToResponse() WeeklyVerdictResponse {
	return WeeklyVerdictResponse{
		ID:          r.ID,
		WeekStart:   r.WeekStart.Format(DateLayout),
		VerdictText: r.VerdictText,
		CreatedAt:   r.CreatedAt,
	}
}

// WeeklyRunResponse is returned after the weekly job runs.
type WeeklyRunResponse struct {
	Record   WeeklyVerdictResponse `json:"record"`
	Report   WeeklyReport          `json:"report"`
	Notified bool                  `json:"notified"`
}
