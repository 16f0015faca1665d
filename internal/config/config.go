package config

import (
	"os"
	"strconv"
	"time"

	"github.com/avvvet/dsbuddy/internal/models"
)

// Provider names accepted by DSBUDDY_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)

type Config struct {
	// LLM configuration
	Provider       string
	Model          string
	OpenAIAPIKey   string
	OllamaURL      string
	Temperature    float64
	GatewayTimeout time.Duration

	// Sandbox configuration
	PythonBin      string
	SandboxTimeout time.Duration

	// Service configuration
	ServiceName string
}

func Load() *Config {
	return &Config{
		// LLM settings
		Provider:       getEnv("DSBUDDY_PROVIDER", ProviderOpenAI),
		Model:          getEnv("DSBUDDY_MODEL", "gpt-4o-mini"),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OllamaURL:      getEnv("OLLAMA_URL", "http://localhost:11434"),
		Temperature:    getFloatEnv("DSBUDDY_TEMPERATURE", 0.6),
		GatewayTimeout: getDurationEnv("DSBUDDY_GATEWAY_TIMEOUT", 120*time.Second),

		// Sandbox settings
		PythonBin:      getEnv("DSBUDDY_PYTHON", "python3"),
		SandboxTimeout: getDurationEnv("DSBUDDY_SANDBOX_TIMEOUT", 60*time.Second),

		// Service settings
		ServiceName: getEnv("SERVICE_NAME", "dsbuddy"),
	}
}

// Validate checks the loaded configuration and returns a ConfigError for
// the first problem found. A missing credential here is fatal at startup.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return &models.ConfigError{Key: "OPENAI_API_KEY", Reason: "required when DSBUDDY_PROVIDER is openai"}
		}
	case ProviderOllama:
		if c.OllamaURL == "" {
			return &models.ConfigError{Key: "OLLAMA_URL", Reason: "required when DSBUDDY_PROVIDER is ollama"}
		}
	default:
		return &models.ConfigError{Key: "DSBUDDY_PROVIDER", Reason: "unknown provider " + strconv.Quote(c.Provider)}
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return &models.ConfigError{Key: "DSBUDDY_TEMPERATURE", Reason: "must be between 0 and 2"}
	}
	if c.PythonBin == "" {
		return &models.ConfigError{Key: "DSBUDDY_PYTHON", Reason: "must not be empty"}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
