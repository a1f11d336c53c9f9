package ports

// SecretStore holds passwords and key passphrases keyed by server id
type SecretStore interface {
	Delete(key string) error
	// Get returns domain.ErrSecretNotFound when no secret exists for key
	Get(key string) (string, error)
	Set(key, secret string) error
}
