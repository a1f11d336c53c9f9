package keychain

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/skillpilot/skillpilot/internal/domain"
	"github.com/skillpilot/skillpilot/internal/ports"
)

// Service is the keychain service name secrets are stored under
const Service = "com.skillpilot.ssh"

// Store keeps SSH passwords and passphrases in the OS keychain
type Store struct {
	service string
}

var _ ports.SecretStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{service: Service}
}

func (s *Store) Get(key string) (string, error) {
	secret, err := keyring.Get(s.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("secret for %s: %w", key, domain.ErrSecretNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read keychain: %w", err)
	}
	return secret, nil
}

func (s *Store) Set(key, secret string) error {
	if err := keyring.Set(s.service, key, secret); err != nil {
		return fmt.Errorf("failed to write keychain: %w", err)
	}
	return nil
}

// Delete removes the secret; a missing secret is not an error
func (s *Store) Delete(key string) error {
	err := keyring.Delete(s.service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("failed to delete keychain entry: %w", err)
	}
	return nil
}
