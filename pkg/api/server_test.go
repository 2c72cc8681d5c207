package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/eliziario/scanbridge/internal/config"
	"github.com/eliziario/scanbridge/internal/connection"
	"github.com/eliziario/scanbridge/internal/prompt"
	"github.com/eliziario/scanbridge/internal/testutil"
)

func newTestServer(t *testing.T, scanURL string, keyring *testutil.MockKeyring) *Server {
	t.Helper()

	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	cfg.Server.URL = scanURL
	cfg.Server.Username = "bob"

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	manager := connection.NewManager(cfg, keyring, prompt.Denied{}, logger).Activate()
	return NewServer(manager, "127.0.0.1:0", logger)
}

func TestStatusEndpoint(t *testing.T) {
	keyring := testutil.NewMockKeyring()
	keyring.Secrets["scanbridge:"+connection.AccountID("https://x.example", "bob")] = "secret"

	server := newTestServer(t, "https://x.example", keyring)

	recorder := httptest.NewRecorder()
	server.engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/status", nil))

	testutil.AssertEqual(t, http.StatusOK, recorder.Code)

	var status struct {
		Server         string `json:"server"`
		CredentialsSet bool   `json:"credentialsSet"`
	}
	testutil.AssertNoError(t, json.Unmarshal(recorder.Body.Bytes(), &status))
	testutil.AssertEqual(t, "https://x.example", status.Server)
	testutil.AssertEqual(t, true, status.CredentialsSet)
}

func TestComponentsEndpoint(t *testing.T) {
	scan := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"componentDetails": []map[string]interface{}{
				{"coordinates": map[string]string{"name": "lodash", "version": "4.17.21"}, "matchState": "exact"},
			},
		})
	}))
	defer scan.Close()

	keyring := testutil.NewMockKeyring()
	keyring.Secrets["scanbridge:"+connection.AccountID(scan.URL, "bob")] = "secret"

	server := newTestServer(t, scan.URL, keyring)

	body := strings.NewReader(`{"components":[{"name":"lodash","version":"4.17.21"}]}`)
	recorder := httptest.NewRecorder()
	server.engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/components", body))

	testutil.AssertEqual(t, http.StatusOK, recorder.Code)
	if !strings.Contains(recorder.Body.String(), "exact") {
		t.Errorf("Expected artifact in response, got %s", recorder.Body.String())
	}
}

func TestComponentsEndpointRejectsBadBody(t *testing.T) {
	server := newTestServer(t, "https://x.example", testutil.NewMockKeyring())

	recorder := httptest.NewRecorder()
	server.engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/components", strings.NewReader(`{}`)))

	testutil.AssertEqual(t, http.StatusBadRequest, recorder.Code)
}
