package testutil

import (
	"fmt"
	"testing"

	"github.com/eliziario/scanbridge/internal/prompt"
)

// AssertEqual fails the test if expected != actual
func AssertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()
	if expected != actual {
		t.Errorf("Expected %v, got %v", expected, actual)
	}
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Error("Expected an error, got nil")
	}
}

// MockKeyring is an in-memory vault.Store for tests.
type MockKeyring struct {
	Secrets map[string]string
	Errors  map[string]error
	SetLog  []string
}

func NewMockKeyring() *MockKeyring {
	return &MockKeyring{
		Secrets: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

func (m *MockKeyring) key(service, account string) string {
	return fmt.Sprintf("%s:%s", service, account)
}

func (m *MockKeyring) Get(service, account string) (string, error) {
	key := m.key(service, account)
	if err, exists := m.Errors[key]; exists {
		return "", err
	}
	return m.Secrets[key], nil
}

func (m *MockKeyring) Set(service, account, value string) error {
	key := m.key(service, account)
	if err, exists := m.Errors[key]; exists {
		return err
	}
	m.Secrets[key] = value
	m.SetLog = append(m.SetLog, key)
	return nil
}

func (m *MockKeyring) Delete(service, account string) error {
	delete(m.Secrets, m.key(service, account))
	return nil
}

// ScriptedAsker replays canned answers and records every request so tests
// can assert prompt order and count.
type ScriptedAsker struct {
	Answers  map[string]string
	Requests []prompt.Request
	Err      error
}

func NewScriptedAsker(answers map[string]string) *ScriptedAsker {
	return &ScriptedAsker{Answers: answers}
}

func (s *ScriptedAsker) Ask(req prompt.Request) (string, error) {
	s.Requests = append(s.Requests, req)
	if s.Err != nil {
		return "", s.Err
	}
	answer := s.Answers[req.Message]
	if answer == "" {
		// Same as the terminal: submitting nothing takes the default.
		answer = req.Default
	}
	if req.Validate != nil && answer != "" {
		if err := req.Validate(answer); err != nil {
			return "", nil
		}
	}
	return answer, nil
}

// MockStorage is an in-memory connection.Storage that records write order.
type MockStorage struct {
	URL      string
	User     string
	WriteLog []string
	Err      error
}

func (m *MockStorage) ServerURL() string { return m.URL }
func (m *MockStorage) Username() string  { return m.User }

func (m *MockStorage) SetServerURL(url string) error {
	if m.Err != nil {
		return m.Err
	}
	m.URL = url
	m.WriteLog = append(m.WriteLog, "url")
	return nil
}

func (m *MockStorage) SetUsername(username string) error {
	if m.Err != nil {
		return m.Err
	}
	m.User = username
	m.WriteLog = append(m.WriteLog, "username")
	return nil
}
