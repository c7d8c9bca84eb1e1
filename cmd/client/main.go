package main

import (
	"fmt"

	"github.com/anaszait/tadabbur/internal/adapter"
	"github.com/anaszait/tadabbur/internal/client"
	"github.com/anaszait/tadabbur/internal/config"
	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/service"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("tadabbur-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	localStore, err := store.NewLocalStore(cfg.Storage.DB.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating local store")
	}
	defer func() { _ = localStore.Close() }()

	services := service.NewClientServices(localStore, serverAdapter, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
