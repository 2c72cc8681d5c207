package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the durable application state. The password is never stored
// here; it lives in the OS keychain (see internal/vault).
type Config struct {
	Server   Server   `yaml:"server"`
	Metadata Metadata `yaml:"metadata"`
	Proxy    Proxy    `yaml:"proxy"`
	Settings Settings `yaml:"settings"`

	path string
}

type Server struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
}

type Metadata struct {
	URL string `yaml:"url"`
}

// ProxySupport values for Proxy.Support.
const (
	ProxyDefault  = "default"
	ProxyOverride = "override"
	ProxyOff      = "off"
)

type Proxy struct {
	Support string `yaml:"support"` // default, override, off
	URL     string `yaml:"url,omitempty"`
	Auth    string `yaml:"auth,omitempty"` // Proxy-Authorization value
}

type Settings struct {
	RequestTimeout time.Duration `yaml:"request_timeout"`
	StatusAddress  string        `yaml:"status_address"`
}

func DefaultConfig() *Config {
	return &Config{
		Metadata: Metadata{
			URL: "https://metadata.scanbridge.dev",
		},
		Proxy: Proxy{
			Support: ProxyDefault,
		},
		Settings: Settings{
			RequestTimeout: 30 * time.Second,
			StatusAddress:  "127.0.0.1:8639",
		},
	}
}

func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", "scanbridge"), nil
}

func ConfigPath() (string, error) {
	configDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

// Load reads the config file, returning defaults when it does not exist.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads config from an explicit path. Used by tests and by
// binaries that take a -config flag.
func LoadFrom(path string) (*Config, error) {
	config := DefaultConfig()
	config.path = path

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func (c *Config) Save() error {
	path := c.path
	if path == "" {
		var err error
		path, err = ConfigPath()
		if err != nil {
			return err
		}
		c.path = path
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ServerURL returns the durable server URL key.
func (c *Config) ServerURL() string { return c.Server.URL }

// Username returns the durable username key.
func (c *Config) Username() string { return c.Server.Username }

// SetServerURL updates the durable server URL key and saves immediately.
func (c *Config) SetServerURL(url string) error {
	c.Server.URL = url
	return c.Save()
}

// SetUsername updates the durable username key and saves immediately.
func (c *Config) SetUsername(username string) error {
	c.Server.Username = username
	return c.Save()
}
