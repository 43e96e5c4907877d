package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable. It does not require an API
// key; commands that contact the completion service call ValidateLLM.
func (c *Config) Validate() error {
	if err := c.validateLLMShape(); err != nil {
		return err
	}
	if err := c.validateWikipedia(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	if c.Batch.Concurrency < 1 || c.Batch.Concurrency > 32 {
		return errors.New("batch.concurrency must be between 1 and 32")
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateDisplay()
}

// ValidateLLM checks that a completion call can be attempted.
func (c *Config) ValidateLLM() error {
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = defaultConfigPath
		}
		return fmt.Errorf("llm.api_key is required. Set %s env var or edit %s (create with 'aiss config init')", c.APIKeyEnv(), defaultPath)
	}
	return nil
}

func (c *Config) validateLLMShape() error {
	switch c.LLM.Provider {
	case ProviderOpenRouter:
		if err := validateURL("llm.base_url", c.LLM.BaseURL); err != nil {
			return err
		}
	case ProviderGemini:
		if c.LLM.BaseURL != "" {
			if err := validateURL("llm.base_url", c.LLM.BaseURL); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("llm.provider must be %q or %q, got %q", ProviderOpenRouter, ProviderGemini, c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return errors.New("llm.model must be set")
	}
	if c.LLM.MaxRetries > 10 {
		return errors.New("llm.max_retries must be 10 or fewer")
	}
	return nil
}

func (c *Config) validateWikipedia() error {
	if !c.Wikipedia.Enabled {
		return nil
	}
	resolved := strings.ReplaceAll(c.Wikipedia.BaseURL, "{lang}", c.Wikipedia.Language)
	return validateURL("wikipedia.base_url", resolved)
}

func (c *Config) validateHistory() error {
	if c.History.Keep < 0 {
		return errors.New("history.keep must be zero or positive")
	}
	if c.History.Enabled && strings.TrimSpace(c.History.Path) == "" {
		return errors.New("history.path must be set when history.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateDisplay() error {
	switch c.Display.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("display.color must be auto, always or never, got %q", c.Display.Color)
	}
	if c.Display.Width < 0 {
		return errors.New("display.width must be zero or positive")
	}
	return nil
}

func validateURL(key, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", key, raw)
	}
	return nil
}
