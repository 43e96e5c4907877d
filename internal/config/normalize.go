package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLLM()
	c.normalizeWikipedia()
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	c.normalizeDisplay()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir
	}
	if c.Paths.DataDir, err = expandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLLM() {
	c.LLM.Provider = strings.ToLower(strings.TrimSpace(c.LLM.Provider))
	if c.LLM.Provider == "" {
		c.LLM.Provider = defaultLLMProvider
	}
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		if value, ok := os.LookupEnv(c.APIKeyEnv()); ok {
			c.LLM.APIKey = strings.TrimSpace(value)
		}
	}
	c.LLM.BaseURL = strings.TrimSpace(c.LLM.BaseURL)
	c.LLM.Model = strings.TrimSpace(c.LLM.Model)
	if c.LLM.Provider == ProviderGemini {
		// The OpenRouter defaults do not apply to the Gemini SDK.
		if c.LLM.BaseURL == defaultOpenRouterBaseURL {
			c.LLM.BaseURL = ""
		}
		if c.LLM.Model == "" || c.LLM.Model == defaultOpenRouterModel {
			c.LLM.Model = defaultGeminiModel
		}
	} else {
		if c.LLM.BaseURL == "" {
			c.LLM.BaseURL = defaultOpenRouterBaseURL
		}
		if c.LLM.Model == "" {
			c.LLM.Model = defaultOpenRouterModel
		}
	}
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = defaultLLMTimeoutSeconds
	}
	if c.LLM.MaxRetries < 0 {
		c.LLM.MaxRetries = 0
	}
	c.Classifier.Model = strings.TrimSpace(c.Classifier.Model)
}

// APIKeyEnv names the environment variable consulted for the configured
// provider's key.
func (c *Config) APIKeyEnv() string {
	if strings.EqualFold(strings.TrimSpace(c.LLM.Provider), ProviderGemini) {
		return "GEMINI_API_KEY"
	}
	return "OPENROUTER_API_KEY"
}

func (c *Config) normalizeWikipedia() {
	c.Wikipedia.BaseURL = strings.TrimRight(strings.TrimSpace(c.Wikipedia.BaseURL), "/")
	if c.Wikipedia.BaseURL == "" {
		c.Wikipedia.BaseURL = defaultWikipediaBaseURL
	}
	c.Wikipedia.Language = strings.ToLower(strings.TrimSpace(c.Wikipedia.Language))
	if c.Wikipedia.Language == "" {
		c.Wikipedia.Language = defaultWikipediaLanguage
	}
	if strings.TrimSpace(c.Wikipedia.UserAgent) == "" {
		c.Wikipedia.UserAgent = defaultWikipediaAgent
	}
	if c.Wikipedia.TimeoutSeconds <= 0 {
		c.Wikipedia.TimeoutSeconds = defaultWikipediaTimeout
	}
	if c.Wikipedia.MaxChars <= 0 {
		c.Wikipedia.MaxChars = defaultWikipediaMaxChars
	}
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Path) == "" {
		c.History.Path = filepath.Join(c.Paths.DataDir, defaultHistoryFile)
		return nil
	}
	expanded, err := expandPath(c.History.Path)
	if err != nil {
		return fmt.Errorf("history.path: %w", err)
	}
	c.History.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeDisplay() {
	c.Display.Color = strings.ToLower(strings.TrimSpace(c.Display.Color))
	if c.Display.Color == "" {
		c.Display.Color = defaultDisplayColor
	}
}
