package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.URL != "" || cfg.Server.Username != "" {
		t.Error("Expected no stored server credentials by default")
	}
	if cfg.Proxy.Support != ProxyDefault {
		t.Errorf("Expected proxy support %q, got %q", ProxyDefault, cfg.Proxy.Support)
	}
	if cfg.Settings.RequestTimeout != 30*time.Second {
		t.Errorf("Expected 30s request timeout, got %v", cfg.Settings.RequestTimeout)
	}
	if cfg.Metadata.URL == "" {
		t.Error("Expected a default metadata service URL")
	}
}

func TestLoadFromMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cfg.Proxy.Support != ProxyDefault {
		t.Error("Expected default config for missing file")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	cfg.Server.URL = "https://scan.example.com"
	cfg.Server.Username = "alice"
	cfg.Proxy = Proxy{Support: ProxyOverride, URL: "http://proxy.example:3128", Auth: "Basic abc"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if loaded.Server.URL != "https://scan.example.com" || loaded.Server.Username != "alice" {
		t.Errorf("Round trip lost server keys: %+v", loaded.Server)
	}
	if loaded.Proxy.URL != "http://proxy.example:3128" || loaded.Proxy.Auth != "Basic abc" {
		t.Errorf("Round trip lost proxy block: %+v", loaded.Proxy)
	}
}

func TestSettersSaveImmediately(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}

	if err := cfg.SetServerURL("https://scan.example.com"); err != nil {
		t.Fatalf("SetServerURL failed: %v", err)
	}
	if err := cfg.SetUsername("alice"); err != nil {
		t.Fatalf("SetUsername failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Config file not written: %v", err)
	}
	if !strings.Contains(string(data), "https://scan.example.com") || !strings.Contains(string(data), "alice") {
		t.Errorf("Persisted file missing server keys:\n%s", data)
	}
	if strings.Contains(string(data), "password") {
		t.Error("Config file must never mention a password")
	}

	if cfg.ServerURL() != "https://scan.example.com" || cfg.Username() != "alice" {
		t.Error("Getters out of sync with setters")
	}
}

func TestConfigPathLayout(t *testing.T) {
	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir failed: %v", err)
	}
	if !filepath.IsAbs(dir) {
		t.Error("Expected absolute config directory")
	}
	if !strings.HasSuffix(dir, filepath.Join(".config", "scanbridge")) {
		t.Errorf("Unexpected config directory %s", dir)
	}

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath failed: %v", err)
	}
	if path != filepath.Join(dir, "config.yaml") {
		t.Errorf("Unexpected config path %s", path)
	}
}
