package secrets

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvProvider_GetSecret(t *testing.T) {
	t.Setenv("SECRETSYNC_TEST_TOKEN", "abc")
	t.Setenv("SECRETSYNC_TEST_EMPTY", "")

	p := NewEnvProvider()
	got, err := p.GetSecret(context.Background(), "SECRETSYNC_TEST_TOKEN, SECRETSYNC_TEST_EMPTY,SECRETSYNC_TEST_UNSET_XYZ")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"SECRETSYNC_TEST_TOKEN": "abc"}, got)
}

func TestEnvProvider_GetSecret_CustomLookup(t *testing.T) {
	p := &EnvProvider{lookup: func(k string) (string, bool) {
		if k == "GEMINI_API_KEY" {
			return "xyz", true
		}
		return "", false
	}}

	got, err := p.GetSecret(context.Background(), "GEMINI_API_KEY,BOT_TOKEN")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"GEMINI_API_KEY": "xyz"}, got)
}

func TestEnvProvider_GetSecret_EmptyKey(t *testing.T) {
	_, err := NewEnvProvider().GetSecret(context.Background(), " ")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSecretNotFound))
}
