package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv_Fallback(t *testing.T) {
	t.Setenv("NONEXISTENT_KEY_12345", "")
	assert.Equal(t, "fallback", GetEnv("NONEXISTENT_KEY_12345", "fallback"))
}

func TestGetEnv_Set(t *testing.T) {
	t.Setenv("TEST_KEY_ABC", "value123")
	assert.Equal(t, "value123", GetEnv("TEST_KEY_ABC", "fallback"))
}

func TestGetEnvList(t *testing.T) {
	def := []string{"A", "B"}

	t.Setenv("LIST_UNSET_KEY", "")
	assert.Equal(t, def, GetEnvList("LIST_UNSET_KEY", def))

	t.Setenv("LIST_KEY", " BOT_TOKEN , GEMINI_API_KEY,,")
	assert.Equal(t, []string{"BOT_TOKEN", "GEMINI_API_KEY"}, GetEnvList("LIST_KEY", def))

	t.Setenv("LIST_DISABLED", "-")
	assert.Empty(t, GetEnvList("LIST_DISABLED", def))
}

func TestGetEnvFields(t *testing.T) {
	def := []string{"npx"}

	t.Setenv("FIELDS_KEY", "npx  -y supabase functions secrets set")
	assert.Equal(t,
		[]string{"npx", "-y", "supabase", "functions", "secrets", "set"},
		GetEnvFields("FIELDS_KEY", def))

	t.Setenv("FIELDS_BLANK", "   ")
	assert.Equal(t, def, GetEnvFields("FIELDS_BLANK", def))
}
