package connection

import (
	"fmt"

	"github.com/eliziario/scanbridge/internal/prompt"
)

// populateState drives the three-stage resolution sequence. Stages run
// strictly in order; any empty result transitions to aborted and no
// partial triple is ever committed.
type populateState int

const (
	awaitingURL populateState = iota
	awaitingUsername
	awaitingPassword
	populateComplete
	populateAborted
)

// populate resolves the credential triple from storage, keychain, and
// (when interactive) the prompt. The keychain lookup is keyed by the
// previously stored url+username pair, not the newly entered one. Returns
// false when any stage yields an empty value; keychain faults propagate
// as errors. The in-memory triple is assigned atomically on success only.
func (m *Manager) populate(interactive bool) (bool, error) {
	storedURL := m.storage.ServerURL()
	storedUsername := m.storage.Username()

	var next Credentials
	state := awaitingURL
	for state != populateComplete && state != populateAborted {
		switch state {
		case awaitingURL:
			value := storedURL
			if interactive {
				def := value
				if def == "" {
					def = m.creds.URL
				}
				if def == "" {
					def = "https://"
				}
				answer, err := m.asker.Ask(prompt.Request{
					Message:  "Server URL",
					Default:  def,
					Validate: validateServerURL,
				})
				if err != nil {
					return false, fmt.Errorf("failed to prompt for server URL: %w", err)
				}
				value = answer
			}
			if value == "" {
				state = populateAborted
				continue
			}
			next.URL = value
			state = awaitingUsername

		case awaitingUsername:
			value := storedUsername
			if interactive {
				def := value
				if def == "" {
					def = m.creds.Username
				}
				answer, err := m.asker.Ask(prompt.Request{
					Message:  "Username",
					Default:  def,
					Validate: validateNonEmpty,
				})
				if err != nil {
					return false, fmt.Errorf("failed to prompt for username: %w", err)
				}
				value = answer
			}
			if value == "" {
				state = populateAborted
				continue
			}
			next.Username = value
			state = awaitingPassword

		case awaitingPassword:
			value, err := m.vault.Get(m.app.KeyringService, AccountID(storedURL, storedUsername))
			if err != nil {
				return false, fmt.Errorf("failed to read password from keychain: %w", err)
			}
			if interactive {
				answer, err := m.asker.Ask(prompt.Request{
					Message:  "Password",
					Default:  value,
					Secret:   true,
					Validate: validateNonEmpty,
				})
				if err != nil {
					return false, fmt.Errorf("failed to prompt for password: %w", err)
				}
				value = answer
			}
			if value == "" {
				state = populateAborted
				continue
			}
			next.Password = value
			state = populateComplete
		}
	}

	if state == populateAborted {
		return false, nil
	}

	m.creds = next
	return true, nil
}
