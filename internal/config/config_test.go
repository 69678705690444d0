package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("GLOSS_PROVIDER", "groq")
	t.Setenv("GLOSS_MODEL", "llama-3.1-8b-instant")
	t.Setenv("GLOSS_LANGUAGE", "German")

	cfg := &Config{Provider: "ollama", Model: "llama3.1:8b"}
	cfg.applyEnv()

	assert.Equal(t, "groq", cfg.Provider)
	assert.Equal(t, "llama-3.1-8b-instant", cfg.Model)
	assert.Equal(t, "German", cfg.Language)
}

func TestApplyEnvProviderKeyFallback(t *testing.T) {
	t.Setenv("GLOSS_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "gsk-test")

	cfg := &Config{Provider: "groq"}
	cfg.applyEnv()
	assert.Equal(t, "gsk-test", cfg.APIKey)
}

func TestApplyEnvExplicitKeyWins(t *testing.T) {
	t.Setenv("GLOSS_API_KEY", "explicit")
	t.Setenv("GROQ_API_KEY", "fallback")

	cfg := &Config{Provider: "groq"}
	cfg.applyEnv()
	assert.Equal(t, "explicit", cfg.APIKey)
}

func TestApplyEnvFileValueKept(t *testing.T) {
	t.Setenv("GLOSS_PROVIDER", "")

	cfg := &Config{Provider: "anthropic", APIKey: "from-file"}
	cfg.applyEnv()
	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "from-file", cfg.APIKey)
}

func TestCatalogLookups(t *testing.T) {
	p := GetProvider("anthropic")
	assert.NotNil(t, p)
	assert.True(t, p.NeedsAPIKey)
	assert.Nil(t, GetProvider("nope"))

	l := GetLanguage("German")
	assert.NotNil(t, l)
	assert.Nil(t, GetLanguage("Klingon"))
}
