package llm

import (
	"context"

	"github.com/avvvet/dsbuddy/internal/models"
)

// Provider defines the interface for LLM providers. Complete sends one
// conversation and returns the model's text content unmodified; this layer
// never inspects or sanitizes what the model said.
type Provider interface {
	Complete(ctx context.Context, conv models.Conversation) (string, error)
}
