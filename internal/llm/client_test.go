package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"google.golang.org/genai"

	"aiss/internal/config"
	"aiss/internal/services"
)

func choiceServer(t *testing.T, choice map[string]any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewEncoder(w).Encode(map[string]any{"choices": []any{choice}}); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func noSleep() []Option {
	return []Option{WithRetryBackoff(0, 0), WithSleeper(func(time.Duration) {})}
}

func TestClientCompleteJSONSendsPromptsAndHeaders(t *testing.T) {
	var got chatCompletionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if title := r.Header.Get("X-Title"); title != "aiss" {
			t.Errorf("unexpected X-Title %q", title)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": `{"title":"Dune"}`}}},
		})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model", Title: "aiss"})
	content, err := client.CompleteJSON(context.Background(), "  be a critic ", "Dune")
	if err != nil {
		t.Fatalf("CompleteJSON returned error: %v", err)
	}
	if content != `{"title":"Dune"}` {
		t.Fatalf("unexpected content %q", content)
	}
	if got.Model != "demo-model" || got.ResponseFormat["type"] != jsonResponseType {
		t.Fatalf("unexpected request %+v", got)
	}
	if len(got.Messages) != 2 || got.Messages[0].Content != "be a critic" || got.Messages[1].Role != "user" {
		t.Fatalf("unexpected messages %+v", got.Messages)
	}
}

func TestClientCompleteJSONRequiresInputs(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://127.0.0.1:0"})
	if _, err := client.CompleteJSON(context.Background(), "sys", "user"); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error without api key, got %v", err)
	}
	client = NewClient(Config{APIKey: "k", BaseURL: "http://127.0.0.1:0"})
	if _, err := client.CompleteJSON(context.Background(), " ", "user"); !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation error for blank system prompt, got %v", err)
	}
}

func TestClientHealthCheck(t *testing.T) {
	server := choiceServer(t, map[string]any{"message": map[string]any{"content": `{"ok":true}`}})
	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model"})
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck returned error: %v", err)
	}
}

func TestClientHealthCheckCodeFence(t *testing.T) {
	server := choiceServer(t, map[string]any{"message": map[string]any{"content": "```json\n{\"ok\":true}\n```"}})
	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, Model: "demo-model"})
	if err := client.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck returned error: %v", err)
	}
}

func TestClientHealthCheckFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "bad", BaseURL: server.URL, Model: "demo", MaxRetries: 3})
	err := client.HealthCheck(context.Background())
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected external service error, got %v", err)
	}
	if services.Hint(err) == "" {
		t.Fatal("expected an operator hint")
	}
}

func TestClientToolCallArguments(t *testing.T) {
	server := choiceServer(t, map[string]any{
		"finish_reason": "tool_calls",
		"message": map[string]any{
			"content": "",
			"tool_calls": []any{
				map[string]any{
					"type":     "function",
					"function": map[string]any{"name": "fill", "arguments": `{"title":"Alien"}`},
				},
			},
		},
	})
	client := NewClient(Config{APIKey: "test", BaseURL: server.URL})
	content, err := client.CompleteJSON(context.Background(), "sys", "user")
	if err != nil {
		t.Fatalf("CompleteJSON returned error: %v", err)
	}
	if content != `{"title":"Alien"}` {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestClientDeltaAndLegacyText(t *testing.T) {
	for name, choice := range map[string]map[string]any{
		"delta": {"delta": map[string]any{"content": `{"a":1}`}},
		"text":  {"finish_reason": "stop", "text": `{"a":1}`},
	} {
		t.Run(name, func(t *testing.T) {
			server := choiceServer(t, choice)
			client := NewClient(Config{APIKey: "test", BaseURL: server.URL})
			content, err := client.CompleteJSON(context.Background(), "sys", "user")
			if err != nil {
				t.Fatalf("CompleteJSON returned error: %v", err)
			}
			if content != `{"a":1}` {
				t.Fatalf("unexpected content %q", content)
			}
		})
	}
}

func TestClientEmptyContentHasSnippet(t *testing.T) {
	server := choiceServer(t, map[string]any{"finish_reason": "stop", "message": map[string]any{"content": ""}})
	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, MaxRetries: 1}, noSleep()...)
	_, err := client.CompleteJSON(context.Background(), "sys", "user")
	if err == nil {
		t.Fatal("expected completion to fail")
	}
	if !strings.Contains(err.Error(), "empty content") || !strings.Contains(err.Error(), "response_snippet=") {
		t.Fatalf("expected empty-content error to include snippet, got %v", err)
	}
	if !strings.Contains(err.Error(), "failed after 2 attempts") {
		t.Fatalf("expected attempt count in error, got %v", err)
	}
}

func TestClientRetriesOnHTTP429(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "rate limited"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": `{"ok":true}`}}},
		})
	}))
	defer server.Close()

	var slept []time.Duration
	client := NewClient(
		Config{APIKey: "test", BaseURL: server.URL, MaxRetries: 4},
		WithSleeper(func(d time.Duration) { slept = append(slept, d) }),
		WithRetryBackoff(0, 10*time.Second),
	)
	if _, err := client.CompleteJSON(context.Background(), "sys", "user"); err != nil {
		t.Fatalf("CompleteJSON returned error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
	if len(slept) != 1 || slept[0] != time.Second {
		t.Fatalf("expected single sleep of 1s, got %v", slept)
	}
}

func TestClientRetriesOn5xxThenGivesUp(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, MaxRetries: 2}, noSleep()...)
	_, err := client.CompleteJSON(context.Background(), "sys", "user")
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test", BaseURL: server.URL, MaxRetries: 3}, noSleep()...)
	if _, err := client.CompleteJSON(context.Background(), "sys", "user"); err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Fatalf("expected a single call, got %d", calls)
	}
}

func TestBackoffDoublesAndCaps(t *testing.T) {
	p := retryPolicy{baseDelay: time.Second, maxDelay: 5 * time.Second}
	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 5 * time.Second, 5 * time.Second}
	for i, w := range want {
		if got := p.backoff(i + 1); got != w {
			t.Fatalf("backoff(%d) = %s, want %s", i+1, got, w)
		}
	}
}

func TestParseRetryAfter(t *testing.T) {
	if d, ok := parseRetryAfter("3"); !ok || d != 3*time.Second {
		t.Fatalf("parseRetryAfter(3) = %s, %v", d, ok)
	}
	for _, value := range []string{"", "-1", "soon"} {
		if _, ok := parseRetryAfter(value); ok {
			t.Fatalf("parseRetryAfter(%q) should fail", value)
		}
	}
}

func TestNewSelectsProvider(t *testing.T) {
	completer, err := New(context.Background(), config.LLMConfig{Provider: config.ProviderOpenRouter, APIKey: "k", Model: "m"})
	if err != nil {
		t.Fatalf("New openrouter: %v", err)
	}
	if _, ok := completer.(*Client); !ok {
		t.Fatalf("expected *Client, got %T", completer)
	}

	completer, err = New(context.Background(), config.LLMConfig{Provider: config.ProviderGemini, APIKey: "k"})
	if err != nil {
		t.Fatalf("New gemini: %v", err)
	}
	gemini, ok := completer.(*GeminiClient)
	if !ok {
		t.Fatalf("expected *GeminiClient, got %T", completer)
	}
	if gemini.Model() != defaultGeminiModel {
		t.Fatalf("gemini model = %q", gemini.Model())
	}

	if _, err := New(context.Background(), config.LLMConfig{Provider: "acme"}); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if _, err := New(context.Background(), config.LLMConfig{Provider: config.ProviderGemini}); !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected configuration error without key, got %v", err)
	}
}

func TestGeminiErrorMapsStatus(t *testing.T) {
	err := geminiError(errorsAPI(429))
	var statusErr *httpStatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != 429 {
		t.Fatalf("expected status error 429, got %v", err)
	}
	if !errors.Is(classify("complete", err), services.ErrTransient) {
		t.Fatal("429 should classify as transient")
	}
}

func errorsAPI(code int) error {
	return genai.APIError{Code: code, Status: "RESOURCE_EXHAUSTED", Message: "quota exceeded"}
}
