package llm

import (
	"context"
	"fmt"
	"strings"

	"vitae/internal/model"
)

const narratorSystem = "You are a careful writer. Describe the dataset you are given in two or " +
	"three sentences of plain prose. Use only the numbers provided; do not invent facts, dates, " +
	"or names that are not in the input."

// Narrator turns a finished report into a short prose paragraph
type Narrator struct {
	provider Provider
	config   Config
}

// NewNarrator builds a narrator for the configured provider
func NewNarrator(cfg model.LLMConfig) (*Narrator, error) {
	config := Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}

	provider, err := newProvider(config)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}

	return &Narrator{provider: provider, config: config}, nil
}

func newProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)
	case "ollama":
		return NewOllamaProvider(config)
	case "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai, ollama)", config.Provider)
	}
}

// Narrate generates the narrative for a report
func (n *Narrator) Narrate(ctx context.Context, report *model.Report) (*model.Narrative, error) {
	resp, err := n.provider.Generate(ctx, GenerateRequest{
		System:    narratorSystem,
		Prompt:    buildPrompt(report),
		Model:     n.config.Model,
		MaxTokens: n.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", n.provider.Name(), err)
	}

	return &model.Narrative{
		Provider: n.provider.Name(),
		Model:    resp.Model,
		Text:     resp.Text,
	}, nil
}

func buildPrompt(report *model.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dataset: %s (%d office-holders).\n", report.Subject, len(report.Records))
	if s := report.Summary; s != nil {
		fmt.Fprintf(&b, "Deceased: %d, living: %d.\n", s.Deceased, s.Living)
		fmt.Fprintf(&b, "Youngest age at death: %d (%s).\n", s.MinAge, s.MinAgeName)
		fmt.Fprintf(&b, "Oldest age at death: %d (%s).\n", s.MaxAge, s.MaxAgeName)
		fmt.Fprintf(&b, "Average age at death: %d.\n", s.AverageAge)
	} else {
		b.WriteString("All records are living; no age-at-death statistics exist.\n")
	}
	if len(report.Skipped) > 0 {
		fmt.Fprintf(&b, "%d source rows could not be parsed and were excluded.\n", len(report.Skipped))
	}

	return b.String()
}
