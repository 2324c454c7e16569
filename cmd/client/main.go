package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mbelyaev/eventmap-client/internal/client/cli"
	"github.com/mbelyaev/eventmap-client/internal/client/config"
	"github.com/mbelyaev/eventmap-client/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
