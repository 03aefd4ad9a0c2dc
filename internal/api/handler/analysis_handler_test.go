package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func newAnalysisRouter(logs *MockLogService, svc *MockAnalysisService) http.Handler {
	h := NewAnalysisHandler(logs, svc)
	r := chi.NewRouter()
	r.Post("/v1/analysis/day", h.Day)
	r.Get("/v1/analysis/trend", h.Trend)
	r.Get("/v1/analysis/balance", h.Balance)
	r.Get("/v1/analysis/depth/ai", h.AIDepth)
	r.Get("/v1/analysis/depth/dsa", h.DSADepth)
	r.Get("/v1/analysis/weekly", h.Weekly)
	return r
}

func TestAnalysisHandler_Windows(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		wantStatusCode int
		wantDays       int
	}{
		{"trend default", "/v1/analysis/trend", http.StatusOK, 7},
		{"trend explicit", "/v1/analysis/trend?days=30", http.StatusOK, 30},
		{"balance default", "/v1/analysis/balance", http.StatusOK, 7},
		{"ai depth default", "/v1/analysis/depth/ai", http.StatusOK, 14},
		{"dsa depth default", "/v1/analysis/depth/dsa", http.StatusOK, 14},
		{"weekly default", "/v1/analysis/weekly", http.StatusOK, 7},
		{"days max", "/v1/analysis/trend?days=365", http.StatusOK, 365},
		{"days zero", "/v1/analysis/trend?days=0", http.StatusBadRequest, 0},
		{"days too large", "/v1/analysis/balance?days=366", http.StatusBadRequest, 0},
		{"days not a number", "/v1/analysis/depth/ai?days=week", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockAnalysisService{}
			rec := httptest.NewRecorder()
			newAnalysisRouter(&MockLogService{}, svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatusCode)
			}
			if tt.wantStatusCode != http.StatusOK {
				if len(svc.days) != 0 {
					t.Errorf("service called on invalid request: %v", svc.days)
				}
				return
			}
			if len(svc.days) != 1 || svc.days[0] != tt.wantDays {
				t.Errorf("days = %v, want [%d]", svc.days, tt.wantDays)
			}
		})
	}
}

func TestAnalysisHandler_ServiceError(t *testing.T) {
	svc := &MockAnalysisService{err: errors.New("db down")}
	rec := httptest.NewRecorder()
	newAnalysisRouter(&MockLogService{}, svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analysis/weekly", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestAnalysisHandler_Day(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{"valid", `{"planned_tasks": "DSA: graphs", "actual_tasks": "", "energy": 3, "clarity": 3}`, http.StatusOK},
		{"invalid JSON", `{`, http.StatusBadRequest},
		{"energy missing", `{"planned_tasks": "DSA", "clarity": 3}`, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/v1/analysis/day", strings.NewReader(tt.body))
			newAnalysisRouter(&MockLogService{}, &MockAnalysisService{}).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatusCode)
			}
		})
	}
}
