package llm

import (
	"context"
	"errors"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"

	"github.com/avvvet/dsbuddy/internal/config"
	"github.com/avvvet/dsbuddy/internal/models"
)

// Gateway sends conversations to a langchaingo-backed model endpoint. One
// synchronous call per request, no retry, no streaming; the only bound is
// the per-call timeout.
type Gateway struct {
	name        string
	backend     llms.Model
	temperature float64
	timeout     time.Duration
}

// New builds a Gateway for the configured provider. The configuration is
// expected to have been validated already; an unknown provider name still
// surfaces as a ConfigError rather than a panic.
func New(cfg *config.Config) (*Gateway, error) {
	var (
		backend llms.Model
		err     error
	)

	switch cfg.Provider {
	case config.ProviderOpenAI:
		backend, err = openai.New(
			openai.WithToken(cfg.OpenAIAPIKey),
			openai.WithModel(cfg.Model),
		)
	case config.ProviderOllama:
		backend, err = ollama.New(
			ollama.WithServerURL(cfg.OllamaURL),
			ollama.WithModel(cfg.Model),
		)
	default:
		return nil, &models.ConfigError{Key: "DSBUDDY_PROVIDER", Reason: "unknown provider " + cfg.Provider}
	}
	if err != nil {
		return nil, &models.GatewayError{Provider: cfg.Provider, Err: err}
	}

	return &Gateway{
		name:        cfg.Provider,
		backend:     backend,
		temperature: cfg.Temperature,
		timeout:     cfg.GatewayTimeout,
	}, nil
}

// Complete sends the conversation and returns the completion text as-is.
func (g *Gateway) Complete(ctx context.Context, conv models.Conversation) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	content := make([]llms.MessageContent, 0, len(conv))
	for _, msg := range conv {
		role := schema.ChatMessageTypeHuman
		if msg.Role == models.RoleSystem {
			role = schema.ChatMessageTypeSystem
		}
		content = append(content, llms.TextParts(role, msg.Content))
	}

	resp, err := g.backend.GenerateContent(ctx, content, llms.WithTemperature(g.temperature))
	if err != nil {
		return "", &models.GatewayError{Provider: g.name, Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &models.GatewayError{Provider: g.name, Err: errors.New("empty response from model")}
	}

	return resp.Choices[0].Content, nil
}
