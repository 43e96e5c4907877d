package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"aiss/internal/config"
	"aiss/internal/testsupport"
)

const (
	classifyReply = `{"find_model":"horror_movie","formatted_name":"Hollow Pines (2019)","description":"folk horror film","additional_info":[]}`
	recordReply   = `{"title":"Hollow Pines","release_year":2019,"tagline":"The woods remember.","subgenre":"Folk horror","fear_moments":[{"moment_name":"Bell Tower","type_of_fear":"Dread","payoff":"The bell rings alone"}]}`
)

// fakeLLM is an OpenRouter-compatible chat completions server. Queries whose
// user prompt mentions "unanswerable" get a 400.
type fakeLLM struct {
	server *httptest.Server

	mu    sync.Mutex
	calls int
}

func newFakeLLM(t *testing.T) *fakeLLM {
	t.Helper()
	f := &fakeLLM{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.calls++
		f.mu.Unlock()

		var system, user string
		for _, msg := range req.Messages {
			switch msg.Role {
			case "system":
				system = msg.Content
			case "user":
				user = msg.Content
			}
		}
		var content string
		switch {
		case strings.Contains(user, "unanswerable"):
			http.Error(w, `{"error":{"message":"bad request"}}`, http.StatusBadRequest)
			return
		case strings.Contains(user, `{"ok":true}`):
			content = `{"ok":true}`
		case strings.Contains(system, "classifying entertainment"):
			content = classifyReply
		default:
			content = recordReply
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": content}}},
		})
	}))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type cliTestEnv struct {
	cfg        *config.Config
	llm        *fakeLLM
	configPath string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	llm := newFakeLLM(t)
	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Chdir(base)

	opts = append([]testsupport.ConfigOption{testsupport.WithLLMServer(llm.server.URL)}, opts...)
	cfg := testsupport.NewConfig(t, opts...)

	configPath := filepath.Join(homeDir, ".config", "aiss", "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, llm: llm, configPath: configPath}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	a := newApp()
	var stdout, stderr bytes.Buffer
	a.root.SetOut(&stdout)
	a.root.SetErr(&stderr)
	a.root.SetIn(strings.NewReader(stdin))
	a.root.SetArgs(args)
	err := a.execute(context.Background())
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q\nactual: %s", needle, haystack)
	}
}

func requireOrder(t *testing.T, haystack string, fragments ...string) {
	t.Helper()
	last := -1
	for _, fragment := range fragments {
		idx := strings.Index(haystack, fragment)
		if idx < 0 || idx < last {
			t.Fatalf("expected %q after position %d in output:\n%s", fragment, last, haystack)
		}
		last = idx
	}
}
