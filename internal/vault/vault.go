package vault

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"
)

// Store is the minimal secret-store surface the connection manager needs.
// Keyed by (service, account); no in-process caching.
type Store interface {
	Get(service, account string) (string, error)
	Set(service, account, value string) error
	Delete(service, account string) error
}

// Keychain is the OS-native implementation backed by zalando/go-keyring.
// On darwin a read triggers a biometric prompt first (see vault_darwin.go).
type Keychain struct{}

func NewKeychain() *Keychain {
	return &Keychain{}
}

// Get returns the stored secret, or empty string when no entry exists for
// the account. Environment faults (locked keychain, denied biometrics) are
// returned as errors.
func (k *Keychain) Get(service, account string) (string, error) {
	secret, err := k.getWithBiometric(service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to retrieve secret from keychain: %w", err)
	}

	decoded, err := decodeSecret(secret)
	if err != nil {
		return "", fmt.Errorf("failed to decode secret: %w", err)
	}
	return decoded, nil
}

func (k *Keychain) Set(service, account, value string) error {
	if err := keyring.Set(service, account, value); err != nil {
		return fmt.Errorf("failed to store secret in keychain: %w", err)
	}
	return nil
}

func (k *Keychain) Delete(service, account string) error {
	if err := keyring.Delete(service, account); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete secret from keychain: %w", err)
	}
	return nil
}

// decodeSecret handles base64-encoded secrets from go-keyring.
func decodeSecret(secret string) (string, error) {
	if strings.HasPrefix(secret, "go-keyring-base64:") {
		encoded := strings.TrimPrefix(secret, "go-keyring-base64:")
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return "", fmt.Errorf("failed to decode base64 secret: %w", err)
		}
		return string(decoded), nil
	}
	return secret, nil
}
