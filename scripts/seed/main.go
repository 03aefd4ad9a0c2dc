// Script to insert sample study logs for the last three weeks.
// Usage: go run ./scripts/seed
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/blaisecz/study-tracker/internal/app"
	"github.com/blaisecz/study-tracker/internal/config"
	"github.com/blaisecz/study-tracker/internal/seed"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()
	cfg.Seed = false

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer a.Close(ctx)

	created, err := seed.Run(ctx, a.LogRepo, a.Now())
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Println("Seed completed!")
	fmt.Printf("\nCreated %d sample logs (%d days requested).\n", created, seed.SeededDays)
	fmt.Println("Try: curl localhost:8080/v1/analysis/weekly")
}
