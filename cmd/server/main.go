// Command server runs the memorable-quantities HTTP API.
//
// Exit codes: 0 = clean shutdown, 1 = startup or serve error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/memorable-quantities/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("application stopped", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}
