package domain

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date format used on the wire and in cursors.
const DateLayout = "2006-01-02"

// DailyLog is one day of planned vs. actual study work. LogDate is unique:
// saving a second log for the same date replaces the first.
type DailyLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LogDate      time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_logs_date" json:"log_date"`
	PlannedTasks string    `gorm:"type:text;not null;default:''" json:"planned_tasks"`
	ActualTasks  string    `gorm:"type:text;not null;default:''" json:"actual_tasks"`
	Energy       int       `gorm:"type:smallint;not null" json:"energy"`
	Clarity      int       `gorm:"type:smallint;not null" json:"clarity"`
	Reflection   string    `gorm:"type:text;not null;default:''" json:"reflection"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DailyLog) TableName() string {
	return "daily_logs"
}

// Record returns the read-only view of the log consumed by the analysis engine.
func (l *DailyLog) Record() LogRecord {
	return LogRecord{
		Date:    l.LogDate,
		Planned: l.PlannedTasks,
		Actual:  l.ActualTasks,
		Energy:  l.Energy,
		Clarity: l.Clarity,
	}
}

// Records converts a window of stored logs into engine input.
func Records(logs []DailyLog) []LogRecord {
	records := make([]LogRecord, len(logs))
	for i := range logs {
		records[i] = logs[i].Record()
	}
	return records
}

// NormalizeDate truncates t to midnight UTC of its calendar date.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CreateDailyLogRequest is the request body for saving a day.
// @Description Planned vs. actual study work for one calendar date.
type CreateDailyLogRequest struct {
	// Calendar date (YYYY-MM-DD)
	Date string `json:"date" validate:"required,datetime=2006-01-02" example:"2024-01-15"`
	// Newline-separated planned tasks
	PlannedTasks string `json:"planned_tasks" validate:"max=10000" example:"Maths: Vector spaces\nPolity: Fundamental Rights"`
	// Newline-separated completed tasks
	ActualTasks string `json:"actual_tasks" validate:"max=10000" example:"Maths: Vector spaces"`
	// Self-reported energy from 1 (drained) to 10 (sharp)
	Energy int `json:"energy" validate:"required,min=1,max=10" example:"5" minimum:"1" maximum:"10"`
	// Self-reported clarity from 1 (lost) to 10 (confident)
	Clarity int `json:"clarity" validate:"required,min=1,max=10" example:"5" minimum:"1" maximum:"10"`
	// Free-text reflection, stored but not analyzed
	Reflection string `json:"reflection,omitempty" validate:"max=10000" example:"Polity slipped after a long maths session"`
}

// AnalyzeDayRequest analyzes text without storing it.
type AnalyzeDayRequest struct {
	PlannedTasks string `json:"planned_tasks" validate:"max=10000"`
	ActualTasks  string `json:"actual_tasks" validate:"max=10000"`
	Energy       int    `json:"energy" validate:"required,min=1,max=10"`
	Clarity      int    `json:"clarity" validate:"required,min=1,max=10"`
}

// DailyLogResponse is the response body for daily log endpoints.
// @Description Stored study log.
type DailyLogResponse struct {
	ID           uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Date         string    `json:"date" example:"2024-01-15"`
	PlannedTasks string    `json:"planned_tasks"`
	ActualTasks  string    `json:"actual_tasks"`
	Energy       int       `json:"energy" example:"5"`
	Clarity      int       `json:"clarity" example:"5"`
	Reflection   string    `json:"reflection,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (l *DailyLog) ToResponse() DailyLogResponse {
	return DailyLogResponse{
		ID:           l.ID,
		Date:         l.LogDate.Format(DateLayout),
		PlannedTasks: l.PlannedTasks,
		ActualTasks:  l.ActualTasks,
		Energy:       l.Energy,
		Clarity:      l.Clarity,
		Reflection:   l.Reflection,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
	}
}

// SaveDailyLogResponse pairs the stored log with its immediate analysis.
type SaveDailyLogResponse struct {
	Log      DailyLogResponse `json:"log"`
	Analysis DayAnalysis      `json:"analysis"`
}

// DailyLogListResponse is the response body for listing logs.
// @Description Paginated list of study logs, newest first.
type DailyLogListResponse struct {
	Data       []DailyLogResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJkYXRlIjoiMjAyNC0wMS0xNVQwMDowMDowMFoifQ=="`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// DailyLogFilter contains filter parameters for listing logs.
type DailyLogFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
