package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"aiss/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Chdir(t.TempDir())
	return home
}

func TestLoadDefaultsExpandPaths(t *testing.T) {
	home := isolate(t)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(home, ".config", "aiss", "config.toml"); resolved != want {
		t.Fatalf("resolved = %q, want %q", resolved, want)
	}
	if want := filepath.Join(home, ".local", "share", "aiss"); cfg.Paths.DataDir != want {
		t.Fatalf("data dir = %q, want %q", cfg.Paths.DataDir, want)
	}
	if want := filepath.Join(cfg.Paths.DataDir, "history.db"); cfg.HistoryPath() != want {
		t.Fatalf("history path = %q, want %q", cfg.HistoryPath(), want)
	}
	if cfg.LLM.Provider != config.ProviderOpenRouter {
		t.Fatalf("provider = %q", cfg.LLM.Provider)
	}
	if cfg.Batch.Concurrency != config.Default().Batch.Concurrency {
		t.Fatalf("batch concurrency = %d", cfg.Batch.Concurrency)
	}
	if cfg.LogFilePath() != "" {
		t.Fatalf("file logging should be off by default, got %q", cfg.LogFilePath())
	}
	if err := cfg.ValidateLLM(); err == nil || !strings.Contains(err.Error(), "OPENROUTER_API_KEY") {
		t.Fatalf("expected missing key error naming the env var, got %v", err)
	}
}

func TestLoadUsesEnvKey(t *testing.T) {
	isolate(t)
	t.Setenv("OPENROUTER_API_KEY", " sk-test ")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LLM.APIKey != "sk-test" {
		t.Fatalf("api key = %q", cfg.LLM.APIKey)
	}
	if err := cfg.ValidateLLM(); err != nil {
		t.Fatalf("ValidateLLM: %v", err)
	}
}

func TestLoadProjectFile(t *testing.T) {
	isolate(t)
	content := `
[llm]
provider = "gemini"
api_key = "g-key"

[classifier]
model = "gemini-2.5-flash-lite"

[batch]
concurrency = 2

[logging]
level = "DEBUG"
`
	if err := os.WriteFile("aiss.toml", []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "aiss.toml" {
		t.Fatalf("expected project config, got %q (exists=%v)", resolved, exists)
	}
	if cfg.LLM.BaseURL != "" {
		t.Fatalf("gemini should drop the OpenRouter base url, got %q", cfg.LLM.BaseURL)
	}
	if cfg.LLM.Model == "google/gemini-3-flash-preview" || cfg.LLM.Model == "" {
		t.Fatalf("expected gemini default model, got %q", cfg.LLM.Model)
	}
	classifier := cfg.ClassifierLLM()
	if classifier.Model != "gemini-2.5-flash-lite" || classifier.APIKey != "g-key" {
		t.Fatalf("classifier settings = %+v", classifier)
	}
	if cfg.GetLLM().Timeout != 90*time.Second {
		t.Fatalf("timeout = %v", cfg.GetLLM().Timeout)
	}
	if cfg.Logging.Level != "debug" || cfg.Batch.Concurrency != 2 {
		t.Fatalf("unexpected logging/batch: %+v %+v", cfg.Logging, cfg.Batch)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[llm]\nmodle = \"x\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "modle") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"provider", func(c *config.Config) { c.LLM.Provider = "openai" }, "llm.provider"},
		{"base url", func(c *config.Config) { c.LLM.BaseURL = "not a url" }, "llm.base_url"},
		{"concurrency", func(c *config.Config) { c.Batch.Concurrency = 0 }, "batch.concurrency"},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"color", func(c *config.Config) { c.Display.Color = "sometimes" }, "display.color"},
		{"keep", func(c *config.Config) { c.History.Keep = -1 }, "history.keep"},
		{"wikipedia", func(c *config.Config) { c.Wikipedia.BaseURL = "ftp://{lang}.example" }, "wikipedia.base_url"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.History.Path = "/tmp/history.db"
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestSampleConfigParsesAndValidates(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path, false); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if err := config.CreateSample(path, false); err == nil {
		t.Fatal("expected refusal to overwrite an existing file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("sample is not valid TOML: %v", err)
	}
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config fails validation: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home := isolate(t)
	got, err := config.ExpandPath("~/data")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "data") {
		t.Fatalf("ExpandPath = %q", got)
	}
}

func TestEnsureDirectories(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(root, "data")
	cfg.Paths.LogDir = filepath.Join(root, "logs")
	cfg.Logging.File = true
	cfg.History.Path = filepath.Join(root, "hist", "history.db")
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir, filepath.Dir(cfg.History.Path)} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}
	if cfg.LogFilePath() != filepath.Join(cfg.Paths.LogDir, "aiss.log") {
		t.Fatalf("log file path = %q", cfg.LogFilePath())
	}
}
