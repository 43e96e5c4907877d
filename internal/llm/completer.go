package llm

import (
	"context"
	"fmt"

	"aiss/internal/config"
	"aiss/internal/services"
)

// Completer issues a JSON-only completion and returns the raw payload.
type Completer interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// New builds the completer for cfg.Provider.
func New(ctx context.Context, cfg config.LLMConfig, opts ...Option) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderOpenRouter, "":
		return NewClient(configFrom(cfg), opts...), nil
	case config.ProviderGemini:
		return NewGeminiClient(ctx, configFrom(cfg), opts...)
	default:
		return nil, services.Wrap(services.ErrConfiguration, "llm", "new",
			fmt.Sprintf("unsupported provider %q", cfg.Provider), nil)
	}
}

func configFrom(cfg config.LLMConfig) Config {
	return Config{
		APIKey:         cfg.APIKey,
		BaseURL:        cfg.BaseURL,
		Model:          cfg.Model,
		Referer:        cfg.Referer,
		Title:          cfg.Title,
		TimeoutSeconds: int(cfg.Timeout.Seconds()),
		MaxRetries:     cfg.MaxRetries,
	}
}
