//go:build !darwin
// +build !darwin

package vault

import (
	"github.com/zalando/go-keyring"
)

// No biometric gate outside macOS. Windows Credential Manager prompts on
// its own when the vault is locked.
func (k *Keychain) getWithBiometric(service, account string) (string, error) {
	return keyring.Get(service, account)
}
