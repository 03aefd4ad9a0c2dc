package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/blaisecz/study-tracker/internal/api/validation"
	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/llm"
	"github.com/blaisecz/study-tracker/internal/service"
	"github.com/blaisecz/study-tracker/pkg/problem"
)

// InsightsHandler handles the LLM coaching endpoints.
type InsightsHandler struct {
	service service.InsightsService
	now     Clock
}

// NewInsightsHandler creates a new InsightsHandler.
func NewInsightsHandler(service service.InsightsService, now Clock) *InsightsHandler {
	if now == nil {
		now = time.Now
	}
	return &InsightsHandler{service: service, now: now}
}

// GetInsights handles GET /v1/insights
// @Summary Weekly report with a coaching note
// @Description Builds the deterministic weekly report and asks the LLM for a short coaching note on it.
// @Tags insights
// @Produce json
// @Param days query integer false "Number of most recent logs" default(7) minimum(1) maximum(365)
// @Success 200 {object} domain.InsightsResponse
// @Failure 400 {object} problem.Problem "Invalid days"
// @Failure 500 {object} problem.Problem "Server error"
// @Failure 502 {object} problem.Problem "LLM request failed"
// @Failure 503 {object} problem.Problem "LLM service unavailable"
// @Router /insights [get]
func (h *InsightsHandler) GetInsights(w http.ResponseWriter, r *http.Request) {
	days, ok := parseDays(w, r, service.DefaultWeeklyDays)
	if !ok {
		return
	}

	result, err := h.service.Generate(r.Context(), days, h.now())
	if err != nil {
		if errors.Is(err, llm.ErrOpenAIUnavailable) {
			problem.ServiceUnavailable("OpenAI service is not configured").Write(w)
			return
		}
		if errors.Is(err, llm.ErrOpenAIRequest) || errors.Is(err, llm.ErrOpenAIResponse) {
			problem.BadGateway("Failed to generate coaching from LLM").Write(w)
			return
		}
		problem.InternalError("Failed to generate insights").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// PostFeedback handles POST /v1/insights/feedback
// @Summary Rate a coaching note
// @Tags insights
// @Accept json
// @Param body body domain.FeedbackRequest true "Feedback request"
// @Success 204 "Feedback recorded"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /insights/feedback [post]
func (h *InsightsHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	var req domain.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid request body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	if err := h.service.Feedback(r.Context(), &req); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.BadRequest("Invalid feedback").Write(w)
			return
		}
		problem.InternalError("Failed to record feedback").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
