package secrets

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// EnvProvider resolves secrets from the process environment (including
// anything godotenv loaded from a .env file).
// The key is a comma-separated list of variable names; variables that are
// unset or empty are left out of the result.
type EnvProvider struct {
	lookup func(string) (string, bool)
}

// NewEnvProvider creates an environment-backed provider.
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{lookup: os.LookupEnv}
}

func (p *EnvProvider) GetSecret(_ context.Context, key string) (map[string]string, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: empty variable list", ErrSecretNotFound)
	}
	result := make(map[string]string)
	for _, name := range strings.Split(key, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if v, ok := p.lookup(name); ok && v != "" {
			result[name] = v
		}
	}
	return result, nil
}
