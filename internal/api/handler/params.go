package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/service"
	"github.com/blaisecz/study-tracker/pkg/problem"
)

// Clock returns the current time in the configured timezone.
type Clock func() time.Time

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseIntParam parses an integer query parameter with a default value.
// ok is false when the parameter is present but not an integer.
func parseIntParam(r *http.Request, name string, defaultValue int) (value int, ok bool) {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultValue, true
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// parseDays reads the days window parameter and writes a 400 when it is
// outside 1..MaxWindowDays.
func parseDays(w http.ResponseWriter, r *http.Request, defaultValue int) (int, bool) {
	days, ok := parseIntParam(r, "days", defaultValue)
	if !ok || days < 1 || days > service.MaxWindowDays {
		problem.BadRequest("days must be an integer between 1 and " + strconv.Itoa(service.MaxWindowDays)).
			WithInstance(r.URL.Path).Write(w)
		return 0, false
	}
	return days, true
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateLayout, s)
}
