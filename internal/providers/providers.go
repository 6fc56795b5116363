package providers

import (
	"context"

	"github.com/studiolanding/promptgen/internal/images"
)

// Config represents one request to a vision-capable LLM provider
type Config struct {
	Model       string
	Temperature float64
	MaxTokens   int
	Prompt      string
	Images      []images.Encoded
}

// Provider defines the interface for a vision-capable LLM provider
type Provider interface {
	ExtractText(ctx context.Context, config Config) (string, error)
}
