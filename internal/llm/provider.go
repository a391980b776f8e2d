// Package llm generates an optional prose narrative about the scanned
// dataset. The narrative is presentation only: it is produced after
// aggregation and never feeds back into the statistics.
package llm

import (
	"context"
	"time"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Generate produces prose for the given prompt
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// GenerateRequest contains the input for narrative generation
type GenerateRequest struct {
	System    string
	Prompt    string
	Model     string
	MaxTokens int
}

// GenerateResponse contains the provider's output
type GenerateResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	Provider  string // "openai", "ollama", ""
	Model     string
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	MaxTokens int
}
