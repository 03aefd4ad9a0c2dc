package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/blaisecz/study-tracker/internal/app"
	"github.com/blaisecz/study-tracker/internal/config"
	"github.com/fatih/color"
)

// testOpener returns an opener backed by one SQLite file shared across calls.
func testOpener(t *testing.T) opener {
	t.Helper()
	color.NoColor = true
	cfg := &config.Config{
		DBDriver:   "sqlite",
		SQLitePath: filepath.Join(t.TempDir(), "cli.db"),
		Timezone:   "UTC",
	}
	return func(ctx context.Context) (*app.App, error) {
		return app.New(ctx, cfg)
	}
}

func run(t *testing.T, open opener, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(open)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestLogThenReport(t *testing.T) {
	open := testOpener(t)

	out, err := run(t, open, "log",
		"--date", "2024-01-15",
		"--planned", "Maths: Vector spaces",
		"--planned", "GS Polity: Fundamental Rights",
		"--actual", "Maths: Vector spaces",
		"--energy", "6", "--clarity", "7")
	if err != nil {
		t.Fatalf("log: %v", err)
	}
	if !strings.Contains(out, "Saved 2024-01-15") || !strings.Contains(out, "0.50") {
		t.Errorf("unexpected log output:\n%s", out)
	}

	out, err = run(t, open, "logs")
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	if !strings.Contains(out, "2024-01-15") {
		t.Errorf("logs output missing date:\n%s", out)
	}

	out, err = run(t, open, "report", "--days", "7")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	for _, want := range []string{"Trend", "Balance", "AI depth", "DSA depth", "Verdict"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestLog_RejectsInvalidInput(t *testing.T) {
	open := testOpener(t)

	_, err := run(t, open, "log", "--date", "2024-01-15", "--energy", "11", "--clarity", "5")
	if err == nil || !strings.Contains(err.Error(), "energy must be at most 10") {
		t.Fatalf("expected energy validation error, got %v", err)
	}

	_, err = run(t, open, "log", "--date", "2024-01-15", "--energy", "5")
	if err == nil {
		t.Fatal("expected missing --clarity to fail")
	}
}

func TestReport_RejectsBadDays(t *testing.T) {
	_, err := run(t, testOpener(t), "report", "--days", "0")
	if err == nil {
		t.Fatal("expected error for --days 0")
	}
}

func TestWeeklyAndHistory(t *testing.T) {
	open := testOpener(t)

	out, err := run(t, open, "weekly")
	if err != nil {
		t.Fatalf("weekly on empty db: %v", err)
	}
	if !strings.Contains(out, "No logs to review.") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := run(t, open, "seed"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	out, err = run(t, open, "weekly")
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if !strings.Contains(out, "Stored verdict for week of") || !strings.Contains(out, "notified: false") {
		t.Errorf("unexpected weekly output:\n%s", out)
	}

	out, err = run(t, open, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if strings.Contains(out, "No weekly verdicts yet.") {
		t.Errorf("history should list the stored verdict:\n%s", out)
	}
}

func TestRemindAndStreak(t *testing.T) {
	open := testOpener(t)

	out, err := run(t, open, "streak")
	if err != nil {
		t.Fatalf("streak: %v", err)
	}
	if !strings.Contains(out, "NEW") || !strings.Contains(out, "discipline=50/100") {
		t.Errorf("unexpected streak output:\n%s", out)
	}

	out, err = run(t, open, "remind")
	if err != nil {
		t.Fatalf("remind: %v", err)
	}
	if !strings.Contains(out, "Daily Check-in") || !strings.Contains(out, "not sent") {
		t.Errorf("unexpected remind output:\n%s", out)
	}

	// Seeding logs today, so the next reminder is skipped
	if _, err := run(t, open, "seed"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	out, err = run(t, open, "remind")
	if err != nil {
		t.Fatalf("remind: %v", err)
	}
	if !strings.Contains(out, "Today is already logged.") || !strings.Contains(out, "CONTINUE") {
		t.Errorf("unexpected remind output:\n%s", out)
	}
}

func TestAnalyze(t *testing.T) {
	out, err := run(t, testOpener(t), "analyze",
		"--planned", "DSA: graphs", "--energy", "2", "--clarity", "3")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(out, "HIGH") {
		t.Errorf("expected HIGH burnout:\n%s", out)
	}
}
