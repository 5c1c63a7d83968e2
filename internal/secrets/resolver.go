package secrets

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Checker-Finance/secretsync/internal/assignment"
	pkgsecrets "github.com/Checker-Finance/secretsync/pkg/secrets"
)

// Resolver resolves the operator-supplied fixed secrets (tokens and API keys
// that do not come from the credential document).
//
// When secretID is set the provider is queried once for that secret and the
// names are looked up in the returned map. Otherwise the names themselves are
// the lookup key (environment-style providers).
type Resolver struct {
	logger   *zap.Logger
	provider pkgsecrets.Provider
	secretID string
}

// NewResolver constructs a fixed-secret resolver.
func NewResolver(logger *zap.Logger, provider pkgsecrets.Provider, secretID string) *Resolver {
	return &Resolver{
		logger:   logger,
		provider: provider,
		secretID: secretID,
	}
}

// Resolve returns one assignment per name, in the order given.
// A name without a value is an error.
func (r *Resolver) Resolve(ctx context.Context, names []string) ([]assignment.Assignment, error) {
	if len(names) == 0 {
		return nil, nil
	}

	key := r.secretID
	if key == "" {
		key = strings.Join(names, ",")
	}

	secretMap, err := r.provider.GetSecret(ctx, key)
	if err != nil {
		r.logger.Warn("secrets.fixed_fetch_failed",
			zap.String("key", key),
			zap.Error(err))
		return nil, fmt.Errorf("resolve fixed secrets: %w", err)
	}

	out := make([]assignment.Assignment, 0, len(names))
	var missing []string
	for _, name := range names {
		v, ok := secretMap[name]
		if !ok || v == "" {
			missing = append(missing, name)
			continue
		}
		out = append(out, assignment.Assignment{Name: name, Value: v})
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: no value for fixed secret(s) %s", pkgsecrets.ErrSecretNotFound, strings.Join(missing, ", "))
	}

	r.logger.Info("secrets.fixed_resolved",
		zap.Strings("names", names),
		zap.Bool("aws", r.secretID != ""),
	)
	return out, nil
}
