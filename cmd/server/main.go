package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-events-rest/internal/config"
	"github.com/MKhiriev/go-events-rest/internal/handler"
	"github.com/MKhiriev/go-events-rest/internal/handler/http"
	"github.com/MKhiriev/go-events-rest/internal/logger"
	"github.com/MKhiriev/go-events-rest/internal/metrics"
	"github.com/MKhiriev/go-events-rest/internal/server"
	"github.com/MKhiriev/go-events-rest/internal/service"
	"github.com/MKhiriev/go-events-rest/internal/store"
	"github.com/MKhiriev/go-events-rest/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("events-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	var opts []http.Option
	if cfg.Metrics.Enabled {
		m := metrics.NewManager(
			metrics.WithRuntimeCollectors(),
			metrics.WithDBStats(storages.SQLDB(), "events"),
		)
		opts = append(opts, http.WithMetrics(m, cfg.Metrics.Path))

		go workers.NewWorkers(
			workers.NewStorageHealthWorker(storages, m, workers.DefaultStorageCheckInterval, workers.DefaultStorageCheckTimeout, log),
		).Run(ctx)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
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
