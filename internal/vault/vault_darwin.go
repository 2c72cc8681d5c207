//go:build darwin
// +build darwin

package vault

import (
	"fmt"

	"github.com/ansxuman/go-touchid"
	"github.com/zalando/go-keyring"
)

func (k *Keychain) getWithBiometric(service, account string) (string, error) {
	authenticated, err := touchid.Auth(touchid.DeviceTypeBiometrics, "scanbridge needs to access your server credentials")
	if err != nil {
		return "", fmt.Errorf("biometric authentication failed: %w", err)
	}

	if !authenticated {
		return "", fmt.Errorf("biometric authentication was cancelled or failed")
	}

	return keyring.Get(service, account)
}
