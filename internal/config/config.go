package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains data and log locations.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// LLM contains the completion service connection used for classification and
// record generation.
type LLM struct {
	// Provider is "openrouter" or "gemini".
	Provider       string `toml:"provider"`
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	Model          string `toml:"model"`
	Referer        string `toml:"referer"`
	Title          string `toml:"title"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MaxRetries     int    `toml:"max_retries"`
}

// Classifier overrides the [llm] model for the classification call, which is
// short and benefits from a cheaper model.
type Classifier struct {
	Model string `toml:"model"`
}

// Wikipedia configures the context hint lookup.
type Wikipedia struct {
	Enabled        bool   `toml:"enabled"`
	BaseURL        string `toml:"base_url"`
	Language       string `toml:"language"`
	UserAgent      string `toml:"user_agent"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	MaxChars       int    `toml:"max_chars"`
}

// History configures the local record history.
type History struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
	// Keep bounds the number of stored records; 0 keeps everything.
	Keep int `toml:"keep"`
}

// Batch configures the batch command.
type Batch struct {
	Concurrency int `toml:"concurrency"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
	// File additionally writes logs to <log_dir>/aiss.log.
	File bool `toml:"file"`
}

// Display controls terminal rendering.
type Display struct {
	// Color is "auto", "always" or "never".
	Color string `toml:"color"`
	// Width caps panel width; 0 uses the renderer default.
	Width int `toml:"width"`
}

// Config encapsulates all configuration values for aiss.
//
// Configuration sections by subsystem:
//   - Paths: data and log directories
//   - LLM: completion service connection
//   - Classifier: model override for classification
//   - Wikipedia: context hint lookup
//   - History: local SQLite history of rendered records
//   - Batch: concurrency of the batch command
//   - Logging: log format and level
//   - Display: colour and width of terminal output
type Config struct {
	Paths      Paths      `toml:"paths"`
	LLM        LLM        `toml:"llm"`
	Classifier Classifier `toml:"classifier"`
	Wikipedia  Wikipedia  `toml:"wikipedia"`
	History    History    `toml:"history"`
	Batch      Batch      `toml:"batch"`
	Logging    Logging    `toml:"logging"`
	Display    Display    `toml:"display"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, "", false, fmt.Errorf("parse config: %s", strict.String())
			}
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the data directory and, when file logging is on,
// the log directory.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.DataDir}
	if c.Logging.File {
		dirs = append(dirs, c.Paths.LogDir)
	}
	if c.History.Enabled {
		dirs = append(dirs, filepath.Dir(c.History.Path))
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
// An existing file is left untouched unless overwrite is set.
func CreateSample(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file %s already exists", path)
		}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// LLMConfig contains the resolved settings for one completion call site.
type LLMConfig struct {
	Provider   string
	APIKey     string
	BaseURL    string
	Model      string
	Referer    string
	Title      string
	Timeout    time.Duration
	MaxRetries int
}

// GetLLM returns the settings used to fetch format records.
func (c *Config) GetLLM() LLMConfig {
	return LLMConfig{
		Provider:   strings.TrimSpace(c.LLM.Provider),
		APIKey:     strings.TrimSpace(c.LLM.APIKey),
		BaseURL:    strings.TrimSpace(c.LLM.BaseURL),
		Model:      strings.TrimSpace(c.LLM.Model),
		Referer:    strings.TrimSpace(c.LLM.Referer),
		Title:      strings.TrimSpace(c.LLM.Title),
		Timeout:    time.Duration(c.LLM.TimeoutSeconds) * time.Second,
		MaxRetries: c.LLM.MaxRetries,
	}
}

// ClassifierLLM returns the settings for the classification call.
// Falls back to [llm] settings when no model override is configured.
func (c *Config) ClassifierLLM() LLMConfig {
	cfg := c.GetLLM()
	if model := strings.TrimSpace(c.Classifier.Model); model != "" {
		cfg.Model = model
	}
	return cfg
}

// HistoryPath returns the SQLite database path.
func (c *Config) HistoryPath() string {
	return c.History.Path
}

// LogFilePath returns the log file used when file logging is enabled.
func (c *Config) LogFilePath() string {
	if !c.Logging.File || c.Paths.LogDir == "" {
		return ""
	}
	return filepath.Join(c.Paths.LogDir, "aiss.log")
}
