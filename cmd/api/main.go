// Study Tracker API
//
// REST API for logging planned vs. actual study work and reviewing execution.
//
//	@title			Study Tracker API
//	@version		1.0
//	@description	Log planned vs. actual study work and get deterministic feedback on execution, burnout, topical balance and depth.
//
//	@BasePath	/v1
//
//	@tag.name			logs
//	@tag.description	Daily study log endpoints
//
//	@tag.name			analysis
//	@tag.description	Day and window analyses
//
//	@tag.name			weekly
//	@tag.description	Weekly verdict job and history
//
//	@tag.name			check-in
//	@tag.description	Streak and daily reminder
//
//	@tag.name			insights
//	@tag.description	LLM coaching on the weekly report
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/study-tracker/internal/api"
	"github.com/blaisecz/study-tracker/internal/api/handler"
	"github.com/blaisecz/study-tracker/internal/app"
	"github.com/blaisecz/study-tracker/internal/config"
	"github.com/blaisecz/study-tracker/internal/scheduler"
	"github.com/blaisecz/study-tracker/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg := config.Load()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, telemetry.ServiceName)
	if err != nil {
		log.Fatalf("Failed to initialize tracing: %v", err)
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	log.Println("Database migration completed")

	// Initialize handlers
	logHandler := handler.NewLogHandler(a.Logs)
	analysisHandler := handler.NewAnalysisHandler(a.Logs, a.Analysis)
	checkInHandler := handler.NewCheckInHandler(a.Weekly, a.Reminder, a.Now)
	insightsHandler := handler.NewInsightsHandler(a.Insights, a.Now)

	// Setup router
	router := api.NewRouter(logHandler, analysisHandler, checkInHandler, insightsHandler)

	var sched *scheduler.Scheduler
	if cfg.SchedulerEnabled {
		sched, err = scheduler.New(scheduler.Config{
			WeeklySpec:   cfg.WeeklyCron,
			ReminderSpec: cfg.ReminderCron,
			Location:     a.Location,
		}, a.Weekly, a.Reminder)
		if err != nil {
			log.Fatalf("Invalid scheduler config: %v", err)
		}
		if err := sched.Start(ctx); err != nil {
			log.Fatalf("Failed to start scheduler: %v", err)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if sched != nil {
		sched.Stop()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown failed: %v", err)
	}
	if err := a.Close(shutdownCtx); err != nil {
		log.Printf("Database close failed: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Printf("Tracer shutdown failed: %v", err)
	}
}
