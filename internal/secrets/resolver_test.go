package secrets

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Checker-Finance/secretsync/internal/assignment"
	pkgsecrets "github.com/Checker-Finance/secretsync/pkg/secrets"
)

// --- Mock Provider ---

type mockProvider struct {
	secrets map[string]map[string]string
	err     error
	calls   int
	keys    []string
}

func (m *mockProvider) GetSecret(_ context.Context, key string) (map[string]string, error) {
	m.calls++
	m.keys = append(m.keys, key)
	if m.err != nil {
		return nil, m.err
	}
	if v, ok := m.secrets[key]; ok {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s", pkgsecrets.ErrSecretNotFound, key)
}

// --- Tests ---

func TestResolver_Resolve_FromSecretID(t *testing.T) {
	mock := &mockProvider{
		secrets: map[string]map[string]string{
			"dev/secretsync/fixed": {
				"GEMINI_API_KEY": "xyz",
				"BOT_TOKEN":      "abc",
				"UNUSED":         "ignored",
			},
		},
	}
	r := NewResolver(zap.NewNop(), mock, "dev/secretsync/fixed")

	got, err := r.Resolve(context.Background(), []string{"BOT_TOKEN", "GEMINI_API_KEY"})

	require.NoError(t, err)
	assert.Equal(t, []assignment.Assignment{
		{Name: "BOT_TOKEN", Value: "abc"},
		{Name: "GEMINI_API_KEY", Value: "xyz"},
	}, got)
	assert.Equal(t, 1, mock.calls)
	assert.Equal(t, []string{"dev/secretsync/fixed"}, mock.keys)
}

func TestResolver_Resolve_NamesAsKey(t *testing.T) {
	mock := &mockProvider{
		secrets: map[string]map[string]string{
			"BOT_TOKEN,GEMINI_API_KEY": {"BOT_TOKEN": "abc", "GEMINI_API_KEY": "xyz"},
		},
	}
	r := NewResolver(zap.NewNop(), mock, "")

	got, err := r.Resolve(context.Background(), []string{"BOT_TOKEN", "GEMINI_API_KEY"})

	require.NoError(t, err)
	assert.Equal(t, []string{"BOT_TOKEN", "GEMINI_API_KEY"}, assignment.Names(got))
}

func TestResolver_Resolve_EnvProvider(t *testing.T) {
	t.Setenv("BOT_TOKEN", "abc")
	t.Setenv("GEMINI_API_KEY", "xyz")
	r := NewResolver(zap.NewNop(), pkgsecrets.NewEnvProvider(), "")

	got, err := r.Resolve(context.Background(), []string{"GEMINI_API_KEY", "BOT_TOKEN"})

	require.NoError(t, err)
	assert.Equal(t, []assignment.Assignment{
		{Name: "GEMINI_API_KEY", Value: "xyz"},
		{Name: "BOT_TOKEN", Value: "abc"},
	}, got)
}

func TestResolver_Resolve_MissingValue(t *testing.T) {
	mock := &mockProvider{
		secrets: map[string]map[string]string{
			"fixed": {"BOT_TOKEN": "abc", "GEMINI_API_KEY": ""},
		},
	}
	r := NewResolver(zap.NewNop(), mock, "fixed")

	got, err := r.Resolve(context.Background(), []string{"BOT_TOKEN", "GEMINI_API_KEY"})

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, pkgsecrets.ErrSecretNotFound))
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestResolver_Resolve_ProviderError(t *testing.T) {
	mock := &mockProvider{err: fmt.Errorf("aws: access denied")}
	r := NewResolver(zap.NewNop(), mock, "fixed")

	_, err := r.Resolve(context.Background(), []string{"BOT_TOKEN"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestResolver_Resolve_NoNames(t *testing.T) {
	mock := &mockProvider{}
	r := NewResolver(zap.NewNop(), mock, "fixed")

	got, err := r.Resolve(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, mock.calls, "should not call provider without names")
}
