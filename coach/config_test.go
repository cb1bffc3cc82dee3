package coach

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MissingFileYieldsZeroConfig(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestLoadConfig_ParsesFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"server_addr": ":9090",
		"empty_policy": "strict",
		"opening_pool": ["Q0?", "Q1?"],
		"llm": {"provider": "deepseek", "model": "deepseek-chat", "api_key_env": "DEEPSEEK_API_KEY", "base_url": "https://api.deepseek.com"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ServerAddr)
	assert.Equal(t, "strict", cfg.EmptyPolicy)
	assert.Equal(t, []string{"Q0?", "Q1?"}, cfg.OpeningPool)
	require.NotNil(t, cfg.LLM)
	assert.Equal(t, "deepseek", cfg.LLM.Provider)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestResolveLLM_DefaultsAndEnvCredential(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	s := Config{}.ResolveLLM()
	assert.Equal(t, "openai", s.Provider)
	assert.Equal(t, "gpt-4o-mini", s.Model)
	assert.Equal(t, "sk-test", s.APIKey)
}

func TestResolveLLM_CustomEnvName(t *testing.T) {
	t.Setenv("DEEPSEEK_API_KEY", "dk-test")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := Config{LLM: &LLMConfig{
		Provider:  "deepseek",
		Model:     "deepseek-chat",
		APIKeyEnv: "DEEPSEEK_API_KEY",
		BaseURL:   "https://api.deepseek.com",
	}}
	s := cfg.ResolveLLM()
	assert.Equal(t, "dk-test", s.APIKey)
	assert.Equal(t, "https://api.deepseek.com", s.BaseURL)
}

func TestNewOpenAILLMFromConfig_RequiresCredential(t *testing.T) {
	_, err := NewOpenAILLMFromConfig(&LLMSettings{Model: "gpt-4o-mini"})
	assert.ErrorIs(t, err, ErrMissingCredential)
}
