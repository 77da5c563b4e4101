package main

import (
	"context"
	"fmt"

	"github.com/Daafh07/HeartbeatSenseDB/internal/config"
	handlerhttp "github.com/Daafh07/HeartbeatSenseDB/internal/handler/http"
	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/internal/metrics"
	"github.com/Daafh07/HeartbeatSenseDB/internal/server"
	"github.com/Daafh07/HeartbeatSenseDB/internal/service"
	"github.com/Daafh07/HeartbeatSenseDB/internal/store"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// optional .env for local development; a missing file is not an error
	_ = godotenv.Load()

	log := logger.NewLogger("heartbeat-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("version", cfg.App.Version).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	repositories, err := store.NewRepositories(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer func() {
		if err := repositories.Close(); err != nil {
			log.Err(err).Msg("error closing repositories")
		}
	}()

	services := service.NewServices(repositories, *cfg, log)

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)
	handler := handlerhttp.NewHandler(services, httpMetrics, repositories, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
