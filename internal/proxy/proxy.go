package proxy

import (
	"fmt"
	"net/url"

	"github.com/eliziario/scanbridge/internal/config"
)

// Mode distinguishes the three resolution outcomes. A proxy block that is
// enabled but has no URL is observably different from one that is switched
// off: the former still allows ambient transport settings to route TLS
// negotiation elsewhere.
type Mode int

const (
	// ModeOff means proxy support is explicitly disabled; no proxy is used
	// even when a URL is configured.
	ModeOff Mode = iota
	// ModeUnset means proxy support is enabled but no address is configured.
	ModeUnset
	// ModeConfigured means a proxy address was parsed successfully.
	ModeConfigured
)

type Endpoint struct {
	Protocol string
	Host     string
	Port     string // empty when the URL carries no port
}

// Resolution is the tagged result of Resolve. Config is only meaningful
// when Mode is ModeConfigured; Auth carries the ambient
// Proxy-Authorization value regardless of mode.
type Resolution struct {
	Mode   Mode
	Config Endpoint
	Auth   string
}

// Configured reports whether a proxy route exists.
func (r Resolution) Configured() bool {
	return r.Mode == ModeConfigured
}

// URL rebuilds the proxy address for transport wiring. Only valid for
// ModeConfigured resolutions.
func (r Resolution) URL() *url.URL {
	host := r.Config.Host
	if r.Config.Port != "" {
		host = host + ":" + r.Config.Port
	}
	return &url.URL{Scheme: r.Config.Protocol, Host: host}
}

// Resolve derives the proxy configuration from the ambient settings.
// Support "off" short-circuits everything; a malformed proxy URL is an
// environment fault and propagates.
func Resolve(cfg config.Proxy) (Resolution, error) {
	if cfg.Support == config.ProxyOff {
		return Resolution{Mode: ModeOff}, nil
	}

	if cfg.URL == "" {
		return Resolution{Mode: ModeUnset, Auth: cfg.Auth}, nil
	}

	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return Resolution{}, fmt.Errorf("failed to parse proxy URL %q: %w", cfg.URL, err)
	}
	if parsed.Scheme == "" || parsed.Hostname() == "" {
		return Resolution{}, fmt.Errorf("proxy URL %q is missing scheme or host", cfg.URL)
	}

	return Resolution{
		Mode: ModeConfigured,
		Config: Endpoint{
			Protocol: parsed.Scheme,
			Host:     parsed.Hostname(),
			Port:     parsed.Port(),
		},
		Auth: cfg.Auth,
	}, nil
}
