package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-events-rest/internal/adapter"
	"github.com/MKhiriev/go-events-rest/internal/client"
	"github.com/MKhiriev/go-events-rest/internal/config"
	"github.com/MKhiriev/go-events-rest/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("events-client", logger.WithOutput(os.Stderr), logger.WithLevel(zerolog.WarnLevel))

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(cfg.Args) == 1 && cfg.Args[0] == "build-info" {
		printBuildInfo()
		return
	}

	eventsAdapter, err := adapter.NewHTTPEventsAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create events adapter")
	}

	app, err := client.NewApp(eventsAdapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, cfg.Args); err != nil {
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrBadArguments) {
			fmt.Fprint(os.Stderr, client.Usage)
		}
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
