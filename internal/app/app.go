// Package app wires configuration, storage and services shared by the API
// server and the CLI.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/blaisecz/study-tracker/internal/analysis"
	"github.com/blaisecz/study-tracker/internal/config"
	"github.com/blaisecz/study-tracker/internal/domain"
	"github.com/blaisecz/study-tracker/internal/langfuse"
	"github.com/blaisecz/study-tracker/internal/llm"
	"github.com/blaisecz/study-tracker/internal/notify"
	"github.com/blaisecz/study-tracker/internal/repository"
	"github.com/blaisecz/study-tracker/internal/seed"
	"github.com/blaisecz/study-tracker/internal/service"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Location *time.Location

	LogRepo     repository.DailyLogRepository
	VerdictRepo repository.WeeklyVerdictRepository

	Notifier notify.Notifier
	Langfuse langfuse.Client

	Logs     service.LogService
	Analysis service.AnalysisService
	Weekly   service.WeeklyService
	Reminder service.ReminderService
	Insights service.InsightsService
}

// Migrate creates or updates the study tracker tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.DailyLog{}, &domain.WeeklyVerdictRecord{})
}

// New opens the database, migrates it, optionally seeds it and builds every service.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", cfg.Timezone, err)
	}

	db, err := config.NewDatabase(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	a := Build(cfg, db, loc)

	if cfg.Seed {
		log.Println("Seeding database with sample data (SEED=true)...")
		if _, err := seed.Run(ctx, a.LogRepo, a.Now()); err != nil {
			return nil, fmt.Errorf("seed database: %w", err)
		}
	}

	return a, nil
}

// Build wires repositories and services over an open, migrated database.
func Build(cfg *config.Config, db *gorm.DB, loc *time.Location) *App {
	if loc == nil {
		loc = time.UTC
	}

	engine := analysis.NewEngine(analysis.DefaultLexicon())

	logRepo := repository.NewDailyLogRepository(db)
	verdictRepo := repository.NewWeeklyVerdictRepository(db)

	notifier := notify.New(cfg.TelegramBotToken, cfg.TelegramChatID)
	lf := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	})

	// A nil *OpenAIClient must not end up inside a non-nil interface.
	var coach llm.CoachLLM
	if c := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAICoachModel); c != nil {
		coach = c
	} else {
		log.Println("Warning: OpenAI API key not configured, insights endpoint will be unavailable")
	}

	analysisService := service.NewAnalysisService(logRepo, engine)
	reminderService := service.NewReminderService(logRepo, notifier)

	return &App{
		Config:      cfg,
		DB:          db,
		Location:    loc,
		LogRepo:     logRepo,
		VerdictRepo: verdictRepo,
		Notifier:    notifier,
		Langfuse:    lf,
		Logs:        service.NewLogService(logRepo, engine),
		Analysis:    analysisService,
		Weekly:      service.NewWeeklyService(logRepo, verdictRepo, engine, notifier, lf),
		Reminder:    reminderService,
		Insights:    service.NewInsightsService(analysisService, reminderService, coach, lf),
	}
}

// Now returns the current time in the configured timezone.
func (a *App) Now() time.Time {
	return time.Now().In(a.Location)
}

// Close flushes pending Langfuse events and closes the database.
func (a *App) Close(ctx context.Context) error {
	if err := a.Langfuse.Flush(ctx); err != nil {
		log.Printf("[langfuse] flush failed: %v", err)
	}
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
