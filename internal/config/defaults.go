package config

const (
	defaultConfigPath        = "~/.config/aiss/config.toml"
	projectConfigName        = "aiss.toml"
	defaultDataDir           = "~/.local/share/aiss"
	defaultLogDir            = "~/.local/share/aiss/logs"
	defaultHistoryFile       = "history.db"
	defaultLLMProvider       = ProviderOpenRouter
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1/chat/completions"
	defaultOpenRouterModel   = "google/gemini-3-flash-preview"
	defaultGeminiModel       = "gemini-2.5-flash"
	defaultLLMReferer        = "https://github.com/aiss-cli/aiss"
	defaultLLMTitle          = "aiss"
	defaultLLMTimeoutSeconds = 90
	defaultLLMMaxRetries     = 3
	defaultWikipediaBaseURL  = "https://{lang}.wikipedia.org/api/rest_v1"
	defaultWikipediaLanguage = "en"
	defaultWikipediaAgent    = "aiss/dev (context lookup)"
	defaultWikipediaTimeout  = 10
	defaultWikipediaMaxChars = 600
	defaultHistoryKeep       = 500
	defaultBatchConcurrency  = 4
	defaultLogFormat         = "console"
	defaultLogLevel          = "warn"
	defaultDisplayColor      = ColorAuto
)

// Supported completion providers.
const (
	ProviderOpenRouter = "openrouter"
	ProviderGemini     = "gemini"
)

// Supported display.color values.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		LLM: LLM{
			Provider:       defaultLLMProvider,
			BaseURL:        defaultOpenRouterBaseURL,
			Model:          defaultOpenRouterModel,
			Referer:        defaultLLMReferer,
			Title:          defaultLLMTitle,
			TimeoutSeconds: defaultLLMTimeoutSeconds,
			MaxRetries:     defaultLLMMaxRetries,
		},
		Wikipedia: Wikipedia{
			Enabled:        true,
			BaseURL:        defaultWikipediaBaseURL,
			Language:       defaultWikipediaLanguage,
			UserAgent:      defaultWikipediaAgent,
			TimeoutSeconds: defaultWikipediaTimeout,
			MaxChars:       defaultWikipediaMaxChars,
		},
		History: History{
			Enabled: true,
			Keep:    defaultHistoryKeep,
		},
		Batch: Batch{
			Concurrency: defaultBatchConcurrency,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Display: Display{
			Color: defaultDisplayColor,
		},
	}
}
