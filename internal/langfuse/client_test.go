package langfuse

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// recorder captures ingestion requests.
type recorder struct {
	mu     sync.Mutex
	bodies []map[string]any
	auth   string
}

func (r *recorder) handler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		var decoded map[string]any
		_ = json.Unmarshal(body, &decoded)

		r.mu.Lock()
		if user, pass, ok := req.BasicAuth(); ok {
			r.auth = user + ":" + pass
		}
		r.bodies = append(r.bodies, decoded)
		r.mu.Unlock()

		w.WriteHeader(status)
	}
}

func (r *recorder) firstEvent(t *testing.T) map[string]any {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.bodies) != 1 {
		t.Fatalf("expected 1 request, got %d", len(r.bodies))
	}
	batch, ok := r.bodies[0]["batch"].([]any)
	if !ok || len(batch) != 1 {
		t.Fatal("expected batch with 1 event")
	}
	return batch[0].(map[string]any)
}

func TestNewClient_Disabled(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name:   "empty base URL",
			config: Config{BaseURL: "", PublicKey: "pk", SecretKey: "sk"},
		},
		{
			name:   "empty public key",
			config: Config{BaseURL: "http://localhost", PublicKey: "", SecretKey: "sk"},
		},
		{
			name:   "empty secret key",
			config: Config{BaseURL: "http://localhost", PublicKey: "pk", SecretKey: ""},
		},
		{
			name:   "all empty",
			config: Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.config)
			if c.IsEnabled() {
				t.Error("expected client to be disabled")
			}
		})
	}
}

func TestDisabledClient_NoOps(t *testing.T) {
	c := NewClient(Config{})

	traceID, err := c.CreateTrace(context.Background(), TraceInput{Name: TraceWeeklyCoaching})
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if traceID != "" {
		t.Errorf("expected empty trace ID, got %s", traceID)
	}

	if err := c.CreateScore(context.Background(), ScoreInput{TraceID: "t", Name: ScoreCoachingRating, Value: 4}); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if err := c.Flush(context.Background()); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
}

func TestCreateTrace_EnabledClient(t *testing.T) {
	rec := &recorder{}
	server := httptest.NewServer(rec.handler(http.StatusOK))
	defer server.Close()

	c := NewClient(Config{
		BaseURL:     server.URL,
		PublicKey:   "pk-test",
		SecretKey:   "sk-test",
		Environment: "testing",
	})

	traceID, err := c.CreateTrace(context.Background(), TraceInput{
		SessionID: "2024-W03",
		Name:      TraceWeeklyCoaching,
		Input:     map[string]any{"days": 7},
		Output:    map[string]any{"summary": "Solid week"},
		Tags:      []string{"study-tracker"},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if traceID == "" {
		t.Error("expected non-empty trace ID")
	}
	if err := c.Flush(context.Background()); err != nil {
		t.Fatalf("flush: %v", err)
	}

	rec.mu.Lock()
	auth := rec.auth
	rec.mu.Unlock()
	if auth != "pk-test:sk-test" {
		t.Errorf("expected auth pk-test:sk-test, got %s", auth)
	}

	event := rec.firstEvent(t)
	if event["type"] != "trace-create" {
		t.Errorf("expected type trace-create, got %v", event["type"])
	}

	body := event["body"].(map[string]any)
	if body["id"] != traceID {
		t.Errorf("expected id %s, got %v", traceID, body["id"])
	}
	if body["name"] != TraceWeeklyCoaching {
		t.Errorf("expected name %s, got %v", TraceWeeklyCoaching, body["name"])
	}
	if body["sessionId"] != "2024-W03" {
		t.Errorf("expected sessionId 2024-W03, got %v", body["sessionId"])
	}

	metadata := body["metadata"].(map[string]any)
	if metadata["environment"] != "testing" {
		t.Errorf("expected environment testing, got %v", metadata["environment"])
	}
}

func TestCreateScore_EnabledClient(t *testing.T) {
	rec := &recorder{}
	server := httptest.NewServer(rec.handler(http.StatusOK))
	defer server.Close()

	c := NewClient(Config{
		BaseURL:   server.URL,
		PublicKey: "pk-test",
		SecretKey: "sk-test",
	})

	err := c.CreateScore(context.Background(), ScoreInput{
		TraceID: "trace-abc123",
		Name:    ScoreCoachingRating,
		Value:   4.5,
		Comment: "Useful plan",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := c.Flush(context.Background()); err != nil {
		t.Fatalf("flush: %v", err)
	}

	event := rec.firstEvent(t)
	if event["type"] != "score-create" {
		t.Errorf("expected type score-create, got %v", event["type"])
	}

	body := event["body"].(map[string]any)
	if body["traceId"] != "trace-abc123" {
		t.Errorf("expected traceId trace-abc123, got %v", body["traceId"])
	}
	if body["name"] != ScoreCoachingRating {
		t.Errorf("expected name %s, got %v", ScoreCoachingRating, body["name"])
	}
	if body["value"] != 4.5 {
		t.Errorf("expected value 4.5, got %v", body["value"])
	}
}

func TestCreateScore_RequiresTraceID(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://localhost", PublicKey: "pk", SecretKey: "sk"})

	if err := c.CreateScore(context.Background(), ScoreInput{Name: ScoreCoachingRating, Value: 1}); err == nil {
		t.Error("expected error for missing trace id")
	}
}

func TestFlush_ReportsServerError(t *testing.T) {
	rec := &recorder{}
	server := httptest.NewServer(rec.handler(http.StatusInternalServerError))
	defer server.Close()

	c := NewClient(Config{
		BaseURL:   server.URL,
		PublicKey: "pk-test",
		SecretKey: "sk-test",
	})

	traceID, err := c.CreateTrace(context.Background(), TraceInput{Name: "test"})
	if err != nil {
		t.Fatalf("queueing should not fail, got %v", err)
	}
	// Trace ID is generated locally
	if traceID == "" {
		t.Error("expected trace ID even on error")
	}

	if err := c.Flush(context.Background()); err == nil {
		t.Error("expected error on server failure")
	}
	// The error is reported once
	if err := c.Flush(context.Background()); err != nil {
		t.Errorf("expected cleared error, got %v", err)
	}
}
