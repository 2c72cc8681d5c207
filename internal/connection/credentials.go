package connection

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
)

// Credentials is the in-memory triple. URL and username are durable config
// keys; the password only ever lands in the OS keychain.
type Credentials struct {
	URL      string
	Username string
	Password string
}

// Complete reports whether all three fields are non-empty.
func (c Credentials) Complete() bool {
	return c.URL != "" && c.Username != "" && c.Password != ""
}

// AccountID derives the keychain account key for a server+user pair. The
// hash keeps the pair out of the keychain index in plaintext while staying
// deterministic, so the same pair always maps to the same entry.
func AccountID(serverURL, username string) string {
	sum := sha256.Sum256([]byte(serverURL + username))
	return hex.EncodeToString(sum[:])
}

// validateServerURL is the inline prompt validator for the server URL.
func validateServerURL(value string) error {
	parsed, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	if parsed.Host == "" {
		return fmt.Errorf("URL must include a host")
	}
	return nil
}

// validateNonEmpty is the inline prompt validator for username and password.
func validateNonEmpty(value string) error {
	if value == "" {
		return fmt.Errorf("value must not be empty")
	}
	return nil
}
