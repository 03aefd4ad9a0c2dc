// studyctl logs study days and prints analyses from the terminal.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/blaisecz/study-tracker/internal/app"
	"github.com/blaisecz/study-tracker/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	open := func(ctx context.Context) (*app.App, error) {
		return app.New(ctx, config.Load())
	}

	if err := newRootCmd(open).ExecuteContext(ctx); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}
