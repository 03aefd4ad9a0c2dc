package handler

import (
	"encoding/json"
	"net/http"

	"github.com/blaisecz/study-tracker/internal/api/validation"
	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/service"
	"github.com/blaisecz/study-tracker/pkg/problem"
)

// AnalysisHandler serves the read-only analyses. Nothing here writes to storage.
type AnalysisHandler struct {
	logs     service.LogService
	analysis service.AnalysisService
}

func NewAnalysisHandler(logs service.LogService, analysis service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		logs:     logs,
		analysis: analysis,
	}
}

// Day handles POST /v1/analysis/day
// @Summary Analyze a day without saving it
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body domain.AnalyzeDayRequest true "Day text and self-ratings"
// @Success 200 {object} domain.DayAnalysis
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Router /analysis/day [post]
func (h *AnalysisHandler) Day(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalyzeDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	writeJSON(w, http.StatusOK, h.logs.AnalyzeDay(r.Context(), &req))
}

// Trend handles GET /v1/analysis/trend
// @Summary Multi-day trend
// @Description Averages over the most recent logged days. trend is null when nothing was logged.
// @Tags analysis
// @Produce json
// @Param days query integer false "Number of most recent logs" default(7) minimum(1) maximum(365)
// @Success 200 {object} domain.TrendResponse
// @Failure 400 {object} problem.Problem "Invalid days"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analysis/trend [get]
func (h *AnalysisHandler) Trend(w http.ResponseWriter, r *http.Request) {
	days, ok := parseDays(w, r, service.DefaultTrendDays)
	if !ok {
		return
	}
	result, err := h.analysis.Trend(r.Context(), days)
	if err != nil {
		problem.InternalError("Failed to compute trend").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Balance handles GET /v1/analysis/balance
// @Summary Topical balance
// @Tags analysis
// @Produce json
// @Param days query integer false "Number of most recent logs" default(7) minimum(1) maximum(365)
// @Success 200 {object} domain.BalanceSummary
// @Failure 400 {object} problem.Problem "Invalid days"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analysis/balance [get]
func (h *AnalysisHandler) Balance(w http.ResponseWriter, r *http.Request) {
	days, ok := parseDays(w, r, service.DefaultBalanceDays)
	if !ok {
		return
	}
	result, err := h.analysis.Balance(r.Context(), days)
	if err != nil {
		problem.InternalError("Failed to compute balance").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// AIDepth handles GET /v1/analysis/depth/ai
// @Summary AI depth profile
// @Tags analysis
// @Produce json
// @Param days query integer false "Number of most recent logs" default(14) minimum(1) maximum(365)
// @Success 200 {object} domain.DepthProfile
// @Failure 400 {object} problem.Problem "Invalid days"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analysis/depth/ai [get]
func (h *AnalysisHandler) AIDepth(w http.ResponseWriter, r *http.Request) {
	days, ok := parseDays(w, r, service.DefaultDepthDays)
	if !ok {
		return
	}
	result, err := h.analysis.AIDepth(r.Context(), days)
	if err != nil {
		problem.InternalError("Failed to compute AI depth").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// DSADepth handles GET /v1/analysis/depth/dsa
// @Summary DSA depth profile
// @Tags analysis
// @Produce json
// @Param days query integer false "Number of most recent logs" default(14) minimum(1) maximum(365)
// @Success 200 {object} domain.DepthProfile
// @Failure 400 {object} problem.Problem "Invalid days"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analysis/depth/dsa [get]
func (h *AnalysisHandler) DSADepth(w http.ResponseWriter, r *http.Request) {
	days, ok := parseDays(w, r, service.DefaultDepthDays)
	if !ok {
		return
	}
	result, err := h.analysis.DSADepth(r.Context(), days)
	if err != nil {
		problem.InternalError("Failed to compute DSA depth").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Weekly handles GET /v1/analysis/weekly
// @Summary Weekly report preview
// @Description Runs every window analysis and the verdict synthesis without storing or sending anything.
// @Tags analysis
// @Produce json
// @Param days query integer false "Number of most recent logs" default(7) minimum(1) maximum(365)
// @Success 200 {object} domain.WeeklyReport
// @Failure 400 {object} problem.Problem "Invalid days"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /analysis/weekly [get]
func (h *AnalysisHandler) Weekly(w http.ResponseWriter, r *http.Request) {
	days, ok := parseDays(w, r, service.DefaultWeeklyDays)
	if !ok {
		return
	}
	result, err := h.analysis.Weekly(r.Context(), days)
	if err != nil {
		problem.InternalError("Failed to compute weekly report").Write(w)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
