// Package secrets resolves credentials from the environment first and
// the OS keychain second, so nothing sensitive lives in config files.
package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/zalando/go-keyring"

	"jobscout-engine/internal/config"
)

// KeyringService groups this app's secrets in the OS keychain.
const KeyringService = "jobscout"

// LookupAccount is the keychain account holding the profile-lookup
// credential pool (comma-separated).
const LookupAccount = "jobscout:lookup"

// Key returns the credential for envVar, falling back to the keychain
// account of the same name. Empty string means "not configured", which
// adapters treat as "use sample data" rather than an error.
func Key(envVar string) string {
	if v := strings.TrimSpace(os.Getenv(envVar)); v != "" {
		return v
	}
	v, err := keyring.Get(KeyringService, envVar)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

// LookupAPIKeys returns the rotating credential pool for the profile
// lookup client: LOOKUP_API_KEYS env (comma-separated) first, then the
// keychain. An empty pool is valid; the client synthesizes results.
func LookupAPIKeys() []string {
	raw := strings.TrimSpace(os.Getenv("LOOKUP_API_KEYS"))
	if raw == "" {
		if v, err := keyring.Get(KeyringService, LookupAccount); err == nil {
			raw = v
		}
	}
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func SetLookupAPIKeys(keys []string) error {
	var clean []string
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			clean = append(clean, k)
		}
	}
	if len(clean) == 0 {
		return errors.New("no keys given")
	}
	return keyring.Set(KeyringService, LookupAccount, strings.Join(clean, ","))
}

// IMAPPassword resolves the alerts-inbox password: ALERTS_IMAP_PASSWORD
// env, then a per-account keychain entry.
func IMAPPassword(cfg config.Config) string {
	if v := strings.TrimSpace(os.Getenv("ALERTS_IMAP_PASSWORD")); v != "" {
		return v
	}
	v, err := keyring.Get(KeyringService, IMAPKeyringAccount(cfg))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(v)
}

func SetIMAPPassword(cfg config.Config, password string) error {
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, IMAPKeyringAccount(cfg), password)
}

func IMAPKeyringAccount(cfg config.Config) string {
	return fmt.Sprintf("jobscout:imap:%s@%s",
		cfg.Sources.Alerts.Username, cfg.Sources.Alerts.IMAPHost)
}
