package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Infogain-GenAI/sample-app1/internal/config"
	"github.com/Infogain-GenAI/sample-app1/internal/handler"
	"github.com/Infogain-GenAI/sample-app1/internal/logger"
	"github.com/Infogain-GenAI/sample-app1/internal/server"
	"github.com/Infogain-GenAI/sample-app1/internal/service"
	"github.com/Infogain-GenAI/sample-app1/internal/store"
	"github.com/Infogain-GenAI/sample-app1/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("sample-app-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = logger.NewLoggerWithLevel(os.Stdout, "sample-app-server", cfg.App.Debug)
	if cfg.DebugInProduction() {
		log.Warn().Msg("debug logging is enabled in production")
	}

	if buildInfo.HasVersion() && cfg.App.Version == config.DefaultAppVersion {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
