package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/eliziario/scanbridge/internal/client"
	"github.com/eliziario/scanbridge/internal/config"
	"github.com/eliziario/scanbridge/internal/connection"
	"github.com/eliziario/scanbridge/internal/logging"
	"github.com/eliziario/scanbridge/internal/prompt"
	"github.com/eliziario/scanbridge/internal/vault"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.config/scanbridge/config.yaml)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <[format:]name@version> ...\n", os.Args[0])
		os.Exit(1)
	}

	components := make([]client.Coordinates, 0, flag.NArg())
	for _, arg := range flag.Args() {
		coords, err := client.ParseCoordinates(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		components = append(components, coords)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger("module-metadata", false)
	manager := connection.NewManager(cfg, vault.NewKeychain(), prompt.NewTerminal(), logger)

	modules, err := manager.GetModuleMetadata(context.Background(), components)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Module metadata lookup failed: %v\n", err)
		os.Exit(1)
	}

	for _, module := range modules {
		fmt.Printf("%s  license=%s  %s\n", module.Coordinates, module.License, module.Description)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}
