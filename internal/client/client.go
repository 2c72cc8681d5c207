package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/eliziario/scanbridge/internal/proxy"
)

// Config is assembled fresh for every client; it is never persisted.
type Config struct {
	ServerURL string
	Username  string
	Password  string
	Headers   map[string]string
	Proxy     proxy.Resolution
	Timeout   time.Duration
}

// StatusError is a non-2xx response from the remote service. The validator
// treats these as ordinary (recoverable) failures.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.Code, e.Body)
}

// Scan is the client for the primary security-scanning service. Requests
// carry basic auth plus the configured headers.
type Scan struct {
	cfg  Config
	http *http.Client
}

// Metadata is the client for the secondary module-metadata service. It
// never carries the scan service's username/password, only headers and
// proxy configuration.
type Metadata struct {
	cfg  Config
	http *http.Client
}

func NewScan(cfg Config) *Scan {
	return &Scan{cfg: cfg, http: newHTTPClient(cfg)}
}

func NewMetadata(cfg Config) *Metadata {
	cfg.Username = ""
	cfg.Password = ""
	return &Metadata{cfg: cfg, http: newHTTPClient(cfg)}
}

// newHTTPClient wires the resolved proxy into the transport. An enabled
// but address-less proxy resolution behaves like no proxy at all.
func newHTTPClient(cfg Config) *http.Client {
	transport := &http.Transport{}
	if cfg.Proxy.Configured() {
		proxyURL := cfg.Proxy.URL()
		transport.Proxy = func(*http.Request) (*url.URL, error) {
			return proxyURL, nil
		}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}

// Ping issues the minimal authenticated round trip used for connection
// validation. Any 2xx response means the server is reachable and the
// credentials were accepted.
func (s *Scan) Ping(ctx context.Context) error {
	req, err := s.newRequest(ctx, http.MethodGet, "/api/v2/ping", nil)
	if err != nil {
		return err
	}
	return s.do(req, nil)
}

// ComponentDetails looks up vulnerability data for the given components.
func (s *Scan) ComponentDetails(ctx context.Context, components []Coordinates) ([]Artifact, error) {
	req, err := s.newRequest(ctx, http.MethodPost, "/api/v2/components/details", componentDetailsRequest{Components: components})
	if err != nil {
		return nil, err
	}

	var resp componentDetailsResponse
	if err := s.do(req, &resp); err != nil {
		return nil, err
	}
	return resp.Artifacts, nil
}

func (s *Scan) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	req, err := newJSONRequest(ctx, method, s.cfg.ServerURL, path, body, s.cfg)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(s.cfg.Username, s.cfg.Password)
	return req, nil
}

func (s *Scan) do(req *http.Request, out interface{}) error {
	return doJSON(s.http, req, out)
}

// ModuleMetadata looks up per-module metadata for the given components.
func (m *Metadata) ModuleMetadata(ctx context.Context, components []Coordinates) ([]ModuleReport, error) {
	req, err := newJSONRequest(ctx, http.MethodPost, m.cfg.ServerURL, "/api/modules/details", moduleMetadataRequest{Components: components}, m.cfg)
	if err != nil {
		return nil, err
	}

	var resp moduleMetadataResponse
	if err := doJSON(m.http, req, &resp); err != nil {
		return nil, err
	}
	return resp.Modules, nil
}

func newJSONRequest(ctx context.Context, method, base, path string, body interface{}, cfg Config) (*http.Request, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(base, "/")+path, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range cfg.Headers {
		req.Header.Set(key, value)
	}
	return req, nil
}

func doJSON(httpClient *http.Client, req *http.Request, out interface{}) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", req.URL.Host, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
