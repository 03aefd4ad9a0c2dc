package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/service"
	"github.com/blaisecz/study-tracker/pkg/problem"
)

// CheckInHandler triggers the weekly review and daily reminder jobs on demand
// and exposes their stored results.
type CheckInHandler struct {
	weekly   service.WeeklyService
	reminder service.ReminderService
	now      Clock
}

func NewCheckInHandler(weekly service.WeeklyService, reminder service.ReminderService, now Clock) *CheckInHandler {
	if now == nil {
		now = time.Now
	}
	return &CheckInHandler{
		weekly:   weekly,
		reminder: reminder,
		now:      now,
	}
}

// RunWeekly handles POST /v1/weekly/run
// @Summary Run the weekly verdict now
// @Description Analyzes the last seven logs, stores the verdict and sends it to the notification channel.
// @Tags weekly
// @Produce json
// @Success 201 {object} domain.WeeklyRunResponse
// @Failure 404 {object} problem.Problem "No logs to review"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /weekly/run [post]
func (h *CheckInHandler) RunWeekly(w http.ResponseWriter, r *http.Request) {
	result, err := h.weekly.Run(r.Context(), h.now())
	if err != nil {
		if errors.Is(err, domain.ErrNoLogs) {
			problem.NotFound("No study logs to review").Write(w)
			return
		}
		problem.InternalError("Failed to run weekly verdict").Write(w)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

// History handles GET /v1/weekly
// @Summary Stored weekly verdicts
// @Tags weekly
// @Produce json
// @Param limit query integer false "Number of verdicts (1-100)" default(10) minimum(1) maximum(100)
// @Success 200 {array} domain.WeeklyVerdictResponse
// @Failure 400 {object} problem.Problem "Invalid limit"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /weekly [get]
func (h *CheckInHandler) History(w http.ResponseWriter, r *http.Request) {
	limit, ok := parseIntParam(r, "limit", service.DefaultHistoryLimit)
	if !ok || limit < 1 || limit > 100 {
		problem.BadRequest("limit must be an integer between 1 and 100").Write(w)
		return
	}

	records, err := h.weekly.History(r.Context(), limit)
	if err != nil {
		problem.InternalError("Failed to load weekly verdicts").Write(w)
		return
	}

	response := make([]domain.WeeklyVerdictResponse, len(records))
	for i := range records {
		response[i] = records[i].ToResponse()
	}
	writeJSON(w, http.StatusOK, response)
}

// Streak handles GET /v1/streak
// @Summary Logging streak
// @Tags check-in
// @Produce json
// @Success 200 {object} domain.StreakSummary
// @Failure 500 {object} problem.Problem "Server error"
// @Router /streak [get]
func (h *CheckInHandler) Streak(w http.ResponseWriter, r *http.Request) {
	streak, err := h.reminder.Streak(r.Context(), h.now())
	if err != nil {
		problem.InternalError("Failed to compute streak").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, streak)
}

// RunReminder handles POST /v1/reminder/run
// @Summary Run the daily check-in now
// @Description Sends the streak reminder unless today is already logged.
// @Tags check-in
// @Produce json
// @Success 200 {object} domain.ReminderResult
// @Failure 500 {object} problem.Problem "Server error"
// @Router /reminder/run [post]
func (h *CheckInHandler) RunReminder(w http.ResponseWriter, r *http.Request) {
	result, err := h.reminder.Run(r.Context(), h.now())
	if err != nil {
		problem.InternalError("Failed to run daily reminder").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
