package testsupport

import (
	"path/filepath"
	"testing"

	"aiss/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// Wikipedia lookups are off unless WithWikipedia points them at a test server.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.LLM.APIKey = "test"
	cfgVal.LLM.MaxRetries = 0
	cfgVal.LLM.TimeoutSeconds = 5
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.History.Path = filepath.Join(base, "data", "history.db")
	cfgVal.Wikipedia.Enabled = false
	cfgVal.Display.Color = config.ColorNever

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithLLMServer points the OpenRouter client at url, typically an httptest server.
func WithLLMServer(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.LLM.Provider = config.ProviderOpenRouter
		b.cfg.LLM.BaseURL = url
	}
}

// WithWikipedia enables context hints against url.
func WithWikipedia(url string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Wikipedia.Enabled = true
		b.cfg.Wikipedia.BaseURL = url
	}
}

// WithoutHistory disables the history store.
func WithoutHistory() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// WithoutAPIKey clears the LLM key so commands that need it fail validation.
func WithoutAPIKey() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.LLM.APIKey = ""
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
