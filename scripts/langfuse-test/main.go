// Script to check Langfuse connectivity by sending a sample weekly-verdict
// trace and a rating score for it.
// Usage: go run ./scripts/langfuse-test
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/blaisecz/study-tracker/internal/analysis"
	"github.com/blaisecz/study-tracker/internal/config"
	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/langfuse"
)

func main() {
	appCfg := config.Load()
	cfg := langfuse.Config{
		BaseURL:     appCfg.LangfuseBaseURL,
		PublicKey:   appCfg.LangfusePublicKey,
		SecretKey:   appCfg.LangfuseSecretKey,
		Environment: appCfg.LangfuseEnv,
	}

	fmt.Println("=== Langfuse Connection Test ===")
	fmt.Printf("Base URL:    %s\n", cfg.BaseURL)
	fmt.Printf("Public Key:  %s\n", maskKey(cfg.PublicKey))
	fmt.Printf("Secret Key:  %s\n", maskKey(cfg.SecretKey))
	fmt.Printf("Environment: %s\n", cfg.Environment)
	fmt.Println()

	client := langfuse.NewClient(cfg)
	if !client.IsEnabled() {
		log.Fatal("Langfuse client is disabled. Check your env vars.")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// A one-day sample window so the trace carries a realistic verdict
	now := time.Now().UTC()
	engine := analysis.NewEngine(analysis.DefaultLexicon())
	report := engine.Weekly([]domain.LogRecord{{
		Date:    domain.NormalizeDate(now),
		Planned: "Maths: Vector spaces\nGS Polity: Fundamental Rights",
		Actual:  "Maths: Vector spaces",
		Energy:  5,
		Clarity: 6,
	}})

	year, week := now.ISOWeek()
	traceID, err := client.CreateTrace(ctx, langfuse.TraceInput{
		SessionID: fmt.Sprintf("%d-W%02d", year, week),
		Name:      langfuse.TraceWeeklyVerdict,
		Input:     report.Window,
		Output:    report.Verdict,
		Tags:      []string{"test", "manual"},
	})
	if err != nil {
		log.Fatalf("Failed to create trace: %v", err)
	}

	if err := client.CreateScore(ctx, langfuse.ScoreInput{
		TraceID: traceID,
		Name:    langfuse.ScoreCoachingRating,
		Value:   5,
		Comment: "langfuse-test script",
	}); err != nil {
		log.Fatalf("Failed to create score: %v", err)
	}

	// Events are sent in the background; wait for delivery
	if err := client.Flush(ctx); err != nil {
		log.Fatalf("Failed to deliver events: %v", err)
	}

	fmt.Println("✓ Test trace created successfully!")
	fmt.Printf("  Trace ID: %s\n", traceID)
	fmt.Printf("  View at:  %s/trace/%s\n", cfg.BaseURL, traceID)
}

func maskKey(key string) string {
	if len(key) < 8 {
		if key == "" {
			return "(empty)"
		}
		return "***"
	}
	return key[:8] + "..."
}
