package secrets

import (
	"context"
	"errors"
)

// ErrSecretNotFound is returned when a provider has no secret for a key.
var ErrSecretNotFound = errors.New("secret not found")

// Provider defines a generic secrets source interface.
// Concrete implementations (AWS, process environment) satisfy this.
type Provider interface {
	// GetSecret retrieves a secret by key/path and returns a key-value map.
	GetSecret(ctx context.Context, key string) (map[string]string, error)
}
