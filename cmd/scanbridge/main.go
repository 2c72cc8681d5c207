package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/eliziario/scanbridge/internal/config"
	"github.com/eliziario/scanbridge/internal/connection"
	"github.com/eliziario/scanbridge/internal/logging"
	"github.com/eliziario/scanbridge/internal/prompt"
	"github.com/eliziario/scanbridge/internal/vault"
	"github.com/eliziario/scanbridge/pkg/api"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.config/scanbridge/config.yaml)")
	address := flag.String("address", "", "status API listen address (overrides config)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *address != "" {
		cfg.Settings.StatusAddress = *address
	}

	logger := logging.NewLogger("scanbridge", true)

	manager := connection.NewManager(cfg, vault.NewKeychain(), prompt.Denied{}, logger).Activate()

	server := api.NewServer(manager, cfg.Settings.StatusAddress, logger)
	if err := server.Run(); err != nil {
		logger.WithError(err).Fatal("Status API exited")
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}
