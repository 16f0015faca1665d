package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avvvet/dsbuddy/internal/models"
)

func validConfig() *Config {
	return &Config{
		Provider:       ProviderOpenAI,
		Model:          "gpt-4o-mini",
		OpenAIAPIKey:   "sk-test",
		OllamaURL:      "http://localhost:11434",
		Temperature:    0.6,
		GatewayTimeout: time.Minute,
		PythonBin:      "python3",
		SandboxTimeout: time.Minute,
	}
}

func TestValidateOK(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateMissingCredential(t *testing.T) {
	cfg := validConfig()
	cfg.OpenAIAPIKey = ""

	err := cfg.Validate()

	var configErr *models.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "OPENAI_API_KEY", configErr.Key)
}

func TestValidateOllamaNeedsNoKey(t *testing.T) {
	cfg := validConfig()
	cfg.Provider = ProviderOllama
	cfg.OpenAIAPIKey = ""

	require.NoError(t, cfg.Validate())
}

func TestValidateUnknownProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Provider = "bard"

	var configErr *models.ConfigError
	require.ErrorAs(t, cfg.Validate(), &configErr)
	assert.Equal(t, "DSBUDDY_PROVIDER", configErr.Key)
}

func TestValidateTemperatureRange(t *testing.T) {
	cfg := validConfig()
	cfg.Temperature = 2.5

	var configErr *models.ConfigError
	require.ErrorAs(t, cfg.Validate(), &configErr)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DSBUDDY_PROVIDER", "ollama")
	t.Setenv("DSBUDDY_MODEL", "llama3.2")
	t.Setenv("DSBUDDY_TEMPERATURE", "0.2")
	t.Setenv("DSBUDDY_SANDBOX_TIMEOUT", "90s")

	cfg := Load()
	assert.Equal(t, ProviderOllama, cfg.Provider)
	assert.Equal(t, "llama3.2", cfg.Model)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 90*time.Second, cfg.SandboxTimeout)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DSBUDDY_PROVIDER", "")
	t.Setenv("DSBUDDY_TEMPERATURE", "not-a-number")

	cfg := Load()
	assert.Equal(t, ProviderOpenAI, cfg.Provider)
	assert.Equal(t, 0.6, cfg.Temperature)
	assert.Equal(t, "python3", cfg.PythonBin)
}
