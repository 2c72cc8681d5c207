package connection

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/eliziario/scanbridge/internal/client"
	"github.com/eliziario/scanbridge/internal/config"
	"github.com/eliziario/scanbridge/internal/prompt"
	"github.com/eliziario/scanbridge/internal/proxy"
	"github.com/eliziario/scanbridge/internal/vault"
)

// Storage is the durable key-value state holding the two non-secret
// credential keys. *config.Config satisfies it.
type Storage interface {
	ServerURL() string
	Username() string
	SetServerURL(url string) error
	SetUsername(username string) error
}

// Manager orchestrates credential population (storage → keychain → prompt),
// proxy-aware client construction, connection validation, and
// persistence-on-success. It is the single owner of the in-memory
// credential triple; no concurrent mutators are expected.
type Manager struct {
	app      config.App
	storage  Storage
	vault    vault.Store
	asker    prompt.Asker
	proxyCfg config.Proxy
	metadata config.Metadata
	settings config.Settings
	log      *logrus.Logger

	creds Credentials
}

func NewManager(cfg *config.Config, store vault.Store, asker prompt.Asker, logger *logrus.Logger) *Manager {
	return &Manager{
		app:      config.DefaultApp(),
		storage:  cfg,
		vault:    store,
		asker:    asker,
		proxyCfg: cfg.Proxy,
		metadata: cfg.Metadata,
		settings: cfg.Settings,
		log:      logger,
	}
}

// Activate populates credentials best-effort without prompting. Failure to
// populate is non-fatal and leaves the triple empty. Returns the manager
// for chaining.
func (m *Manager) Activate() *Manager {
	if _, err := m.populate(false); err != nil {
		m.log.WithError(err).Warn("Non-interactive credential population failed")
	}
	return m
}

// AreCredentialsSet reports whether all three credential fields are held
// in memory.
func (m *Manager) AreCredentialsSet() bool {
	return m.creds.Complete()
}

// ServerURL returns the durable server URL key.
func (m *Manager) ServerURL() string {
	return m.storage.ServerURL()
}

// Connect forces interactive credential population, validates the
// connection, and persists the credentials only after validation succeeds.
// A missing field or a rejected connection yields false; environment
// faults (keychain, storage, malformed proxy) yield an error.
func (m *Manager) Connect(ctx context.Context) (bool, error) {
	ok, err := m.populate(true)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	m.log.WithField("server", m.creds.URL).Info("Validating connection")

	cfg, err := m.clientConfig(true)
	if err != nil {
		return false, err
	}

	ok, err = CheckConnection(ctx, client.NewScan(cfg))
	if err != nil {
		return false, err
	}
	if !ok {
		m.log.WithField("server", m.creds.URL).Warn("Connection validation failed, credentials not persisted")
		return false, nil
	}

	// Persist only now, url then username then password.
	if err := m.storage.SetServerURL(m.creds.URL); err != nil {
		return false, fmt.Errorf("failed to persist server URL: %w", err)
	}
	if err := m.storage.SetUsername(m.creds.Username); err != nil {
		return false, fmt.Errorf("failed to persist username: %w", err)
	}
	account := AccountID(m.creds.URL, m.creds.Username)
	if err := m.vault.Set(m.app.KeyringService, account, m.creds.Password); err != nil {
		return false, fmt.Errorf("failed to persist password: %w", err)
	}

	m.log.WithField("server", m.creds.URL).Info("Connected")
	return true, nil
}

// GetComponents ensures credentials are populated (without prompting) and
// issues a component-details request. Connectivity is not validated first;
// request errors surface directly.
func (m *Manager) GetComponents(ctx context.Context, components []client.Coordinates) ([]client.Artifact, error) {
	if err := m.ensureCredentials(); err != nil {
		return nil, err
	}

	cfg, err := m.clientConfig(true)
	if err != nil {
		return nil, err
	}
	return client.NewScan(cfg).ComponentDetails(ctx, components)
}

// GetModuleMetadata issues a module-metadata request against the secondary
// service. The metadata client carries proxy and User-Agent configuration
// but never the scan service's credentials.
func (m *Manager) GetModuleMetadata(ctx context.Context, components []client.Coordinates) ([]client.ModuleReport, error) {
	cfg, err := m.clientConfig(false)
	if err != nil {
		return nil, err
	}
	return client.NewMetadata(cfg).ModuleMetadata(ctx, components)
}

func (m *Manager) ensureCredentials() error {
	if m.creds.Complete() {
		return nil
	}
	if _, err := m.populate(false); err != nil {
		return err
	}
	return nil
}

// clientConfig assembles a fresh client configuration. The primary client
// carries the credential triple; the metadata client only inherits headers
// and proxy. Proxy-Authorization is attached iff a proxy route is
// configured and an ambient authorization value exists.
func (m *Manager) clientConfig(forPrimary bool) (client.Config, error) {
	resolution, err := proxy.Resolve(m.proxyCfg)
	if err != nil {
		return client.Config{}, err
	}

	headers := map[string]string{
		"User-Agent": m.app.UserAgent,
	}
	if resolution.Configured() && resolution.Auth != "" {
		headers["Proxy-Authorization"] = resolution.Auth
	}

	cfg := client.Config{
		Headers: headers,
		Proxy:   resolution,
		Timeout: m.settings.RequestTimeout,
	}
	if forPrimary {
		cfg.ServerURL = m.creds.URL
		cfg.Username = m.creds.Username
		cfg.Password = m.creds.Password
	} else {
		cfg.ServerURL = m.metadata.URL
	}
	return cfg, nil
}
