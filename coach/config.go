package coach

import (
	"encoding/json"
	"fmt"
	"os"
)

// LLMConfig selects the completion provider. The credential itself never
// lives in the file; api_key_env names the environment variable to read.
type LLMConfig struct {
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	APIKeyEnv string `json:"api_key_env,omitempty"`
	BaseURL   string `json:"base_url,omitempty"`
}

// Config is the on-disk JSON configuration.
type Config struct {
	ServerAddr  string     `json:"server_addr,omitempty"`
	LLM         *LLMConfig `json:"llm,omitempty"`
	EmptyPolicy string     `json:"empty_policy,omitempty"`
	// OpeningPool enables the offline start variant: hand-written opening
	// questions served without a model call when no credential is set.
	OpeningPool []string `json:"opening_pool,omitempty"`
}

// LoadConfig reads path. A missing file yields the zero config so local dev
// works with environment variables alone.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveLLM fills LLMSettings from the config plus the process environment.
// The credential is read at resolve time, not at load time, so a server
// started without one can still answer health checks.
func (c Config) ResolveLLM() LLMSettings {
	s := LLMSettings{Provider: "openai", Model: "gpt-4o-mini"}
	envName := "OPENAI_API_KEY"
	if c.LLM != nil {
		if c.LLM.Provider != "" {
			s.Provider = c.LLM.Provider
		}
		if c.LLM.Model != "" {
			s.Model = c.LLM.Model
		}
		if c.LLM.APIKeyEnv != "" {
			envName = c.LLM.APIKeyEnv
		}
		s.BaseURL = c.LLM.BaseURL
	}
	s.APIKey = os.Getenv(envName)
	return s
}
