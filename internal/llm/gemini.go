package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"aiss/internal/services"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiClient completes prompts through the Google GenAI SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
	apiKey string
	settings
}

// NewGeminiClient constructs a Gemini-backed completer. cfg.BaseURL, when set,
// overrides the SDK endpoint.
func NewGeminiClient(ctx context.Context, cfg Config, opts ...Option) (*GeminiClient, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, services.Wrap(services.ErrConfiguration, "llm", "gemini", "api key required", nil)
	}
	s := newSettings(cfg, opts)
	clientCfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: s.httpClient,
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		clientCfg.HTTPOptions.BaseURL = base
	}
	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "llm", "gemini", "create client", err)
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiClient{client: client, model: model, apiKey: apiKey, settings: s}, nil
}

// Model reports the configured model id.
func (g *GeminiClient) Model() string { return g.model }

// CompleteJSON asks the model for a JSON response to userPrompt under systemPrompt.
func (g *GeminiClient) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if err := checkPrompts(g.apiKey, systemPrompt, userPrompt); err != nil {
		return "", err
	}
	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(strings.TrimSpace(systemPrompt), genai.RoleUser),
		Temperature:       genai.Ptr[float32](0),
		ResponseMIMEType:  "application/json",
	}
	contents := []*genai.Content{
		genai.NewContentFromText(strings.TrimSpace(userPrompt), genai.RoleUser),
	}
	return g.retry.run(ctx, "complete", func(ctx context.Context) (string, error) {
		resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, genCfg)
		if err != nil {
			return "", geminiError(err)
		}
		if text := strings.TrimSpace(resp.Text()); text != "" {
			return text, nil
		}
		var finish string
		if len(resp.Candidates) > 0 {
			finish = string(resp.Candidates[0].FinishReason)
		}
		var blocked string
		if resp.PromptFeedback != nil {
			blocked = string(resp.PromptFeedback.BlockReason)
		}
		return "", &emptyContentError{Op: "gemini complete", FinishReason: finish, Refusal: blocked, Snippet: "<empty>"}
	})
}

// HealthCheck issues a fast ping to verify the API key and model are usable.
func (g *GeminiClient) HealthCheck(ctx context.Context) error {
	return healthCheck(ctx, g)
}

// geminiError maps SDK API errors onto the status error the retry policy
// understands.
func geminiError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &httpStatusError{StatusCode: apiErr.Code, Body: fmt.Sprintf("%s: %s", apiErr.Status, apiErr.Message)}
	}
	return err
}
