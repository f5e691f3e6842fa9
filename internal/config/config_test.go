package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
	assert.Equal(t, "resume_improved.md", cfg.Output.Path)
	assert.Equal(t, "default", cfg.Output.Template)
}

func TestLoad_MissingFileRequired(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	require.Error(t, err)
}

func TestLoad_ReadsFileAndAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  path: out.md\n"), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "out.md", cfg.Output.Path)
	assert.Equal(t, "default", cfg.Output.Template)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAI.Model)
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("RESUMAKE_TEST_MODEL", "gpt-4o-mini")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openai:\n  model: ${RESUMAKE_TEST_MODEL}\n"), 0o644))

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openai: [unclosed\n"), 0o644))

	_, err := Load(path, true)
	require.Error(t, err)
}

func TestOpenAIEnabled(t *testing.T) {
	assert.False(t, OpenAIConfig{}.Enabled())
	assert.True(t, OpenAIConfig{APIKey: "sk-test"}.Enabled())
	assert.False(t, OpenAIConfig{APIKey: "sk-test", Disabled: true}.Enabled())
}

func TestInit_WritesStarterConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Init(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "openai:")

	// Second write without force refuses.
	require.Error(t, Init(path, false))
	require.NoError(t, Init(path, true))
}
