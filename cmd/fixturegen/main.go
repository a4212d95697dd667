package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/fourtreestech/ilc-models/internal/config"
	"github.com/fourtreestech/ilc-models/internal/logging"
)

const appVersion = "dev"

func main() {
	if os.Getenv("FIXTUREGEN_SKIP_RUN") == "1" {
		return
	}

	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "fixturegen",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(cfg, logger)
	if err := app.Run(ctx); err != nil {
		logging.Error(logger, "dataset generation failed", err)
		stop()
		os.Exit(1)
	}
}
