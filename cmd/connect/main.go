package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/eliziario/scanbridge/internal/config"
	"github.com/eliziario/scanbridge/internal/connection"
	"github.com/eliziario/scanbridge/internal/logging"
	"github.com/eliziario/scanbridge/internal/prompt"
	"github.com/eliziario/scanbridge/internal/vault"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.config/scanbridge/config.yaml)")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger("connect", false)
	manager := connection.NewManager(cfg, vault.NewKeychain(), prompt.NewTerminal(), logger)

	fmt.Println("Connect to the security scanning server.")
	ok, err := manager.Connect(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connect failed: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Fprintln(os.Stderr, "Could not connect; credentials were not saved.")
		os.Exit(1)
	}

	fmt.Println("✅ Connected, credentials saved.")
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}
