package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Empty(t, cfg.LLM.Provider)
	assert.Empty(t, cfg.Classifier.Categories)
	assert.Empty(t, cfg.Traversal.Stopwords)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoad(t *testing.T) {
	content := `
[llm]
provider = "openai"
model = "gpt-4o-mini"
api_key = "sk-test"

[classifier]
fallback = "Serene"

[[classifier.categories]]
name = "Ominous"
keywords = ["shadow", "loom"]

[traversal]
stopwords = ["the", "a"]

[server]
port = "9090"
`
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, "Serene", cfg.Classifier.Fallback)
	require.Len(t, cfg.Classifier.Categories, 1)
	assert.Equal(t, "Ominous", cfg.Classifier.Categories[0].Name)
	assert.Equal(t, []string{"shadow", "loom"}, cfg.Classifier.Categories[0].Keywords)
	assert.Equal(t, []string{"the", "a"}, cfg.Traversal.Stopwords)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[llm\nprovider"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("LLM_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("PORT", "3000")

	cfg := Default()
	cfg.LLM.Provider = "openai"
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "3000", cfg.Server.Port)
}

func TestApplyEnvKeepsFileValues(t *testing.T) {
	// t.Setenv records the original value for restoration; the vars must be
	// absent, not empty, for the parser to leave the struct alone.
	for _, key := range []string{"LLM_PROVIDER", "LLM_MODEL", "PORT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Default()
	cfg.LLM.Model = "claude-sonnet-4-20250514"
	require.NoError(t, cfg.ApplyEnv())

	assert.Equal(t, "claude-sonnet-4-20250514", cfg.LLM.Model)
	assert.Equal(t, "8080", cfg.Server.Port)
}
