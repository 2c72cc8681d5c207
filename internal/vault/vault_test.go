package vault

import (
	"testing"
)

func TestDecodeSecretPlain(t *testing.T) {
	decoded, err := decodeSecret("plain-password")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if decoded != "plain-password" {
		t.Errorf("Expected plain-password, got %q", decoded)
	}
}

func TestDecodeSecretBase64Prefix(t *testing.T) {
	// go-keyring encodes values it considers binary-unsafe.
	decoded, err := decodeSecret("go-keyring-base64:c2VjcmV0")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if decoded != "secret" {
		t.Errorf("Expected secret, got %q", decoded)
	}
}

func TestDecodeSecretBadBase64(t *testing.T) {
	if _, err := decodeSecret("go-keyring-base64:!!!"); err == nil {
		t.Error("Expected an error for invalid base64")
	}
}
