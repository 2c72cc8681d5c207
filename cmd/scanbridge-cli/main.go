package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eliziario/scanbridge/internal/config"
	"github.com/eliziario/scanbridge/internal/logging"
	"github.com/eliziario/scanbridge/internal/tui"
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

	logger := logging.NewLogger("scanbridge-cli", false)

	program := tea.NewProgram(tui.NewModel(cfg, vault.NewKeychain(), logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running setup wizard: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}
