package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/blaisecz/study-tracker/internal/api/validation"
	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/service"
	"github.com/blaisecz/study-tracker/pkg/pagination"
	"github.com/blaisecz/study-tracker/pkg/problem"
	"github.com/go-chi/chi/v5"
)

type LogHandler struct {
	service service.LogService
}

func NewLogHandler(service service.LogService) *LogHandler {
	return &LogHandler{service: service}
}

// Create handles POST /v1/logs
// @Summary Save a study day
// @Description Store planned vs. actual work for a date and return the day analysis. A second log for the same date replaces the first.
// @Tags logs
// @Accept json
// @Produce json
// @Param request body domain.CreateDailyLogRequest true "Study day"
// @Success 201 {object} domain.SaveDailyLogResponse "Stored log with analysis"
// @Failure 400 {object} problem.Problem "Invalid JSON body"
// @Failure 422 {object} problem.Problem "Invalid fields"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /logs [post]
func (h *LogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateDailyLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	log, result, err := h.service.Save(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			problem.ValidationError("Request body contains invalid fields", []problem.FieldError{
				{Field: "date", Message: "must be a date in YYYY-MM-DD format"},
			}).Write(w)
			return
		}
		problem.InternalError("Failed to save study log").Write(w)
		return
	}

	writeJSON(w, http.StatusCreated, domain.SaveDailyLogResponse{
		Log:      log.ToResponse(),
		Analysis: *result,
	})
}

// Get handles GET /v1/logs/{date}
// @Summary Get a study day
// @Tags logs
// @Produce json
// @Param date path string true "Calendar date" format(date) example(2024-01-15)
// @Success 200 {object} domain.DailyLogResponse
// @Failure 400 {object} problem.Problem "Invalid date"
// @Failure 404 {object} problem.Problem "No log for date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /logs/{date} [get]
func (h *LogHandler) Get(w http.ResponseWriter, r *http.Request) {
	date, err := parseDate(chi.URLParam(r, "date"))
	if err != nil {
		problem.BadRequest("date must be in YYYY-MM-DD format").Write(w)
		return
	}

	log, err := h.service.Get(r.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No study log for " + date.Format(domain.DateLayout)).Write(w)
			return
		}
		problem.InternalError("Failed to load study log").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, log.ToResponse())
}

// List handles GET /v1/logs
// @Summary List study days
// @Description Paginated history, newest first. Filter by an inclusive date range.
// @Tags logs
// @Produce json
// @Param from query string false "First date (YYYY-MM-DD)" format(date)
// @Param to query string false "Last date (YYYY-MM-DD)" format(date)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.DailyLogListResponse
// @Failure 422 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /logs [get]
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list study logs").Write(w)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func parseListFilter(r *http.Request) (domain.DailyLogFilter, []problem.FieldError) {
	var filter domain.DailyLogFilter
	var fieldErrors []problem.FieldError
	q := r.URL.Query()

	if fromStr := q.Get("from"); fromStr != "" {
		from, err := parseDate(fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "from", Message: "must be a date in YYYY-MM-DD format"})
		} else {
			filter.From = &from
		}
	}

	if toStr := q.Get("to"); toStr != "" {
		to, err := parseDate(toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "to", Message: "must be a date in YYYY-MM-DD format"})
		} else {
			filter.To = &to
		}
	}

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		fieldErrors = append(fieldErrors, problem.FieldError{Field: "to", Message: "must not be before from"})
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "limit", Message: "must be a positive integer"})
		} else {
			filter.Limit = limit
		}
	}

	if cursor := q.Get("cursor"); cursor != "" {
		if _, err := pagination.DecodeCursor(cursor); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{Field: "cursor", Message: "is invalid"})
		} else {
			filter.Cursor = cursor
		}
	}

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
