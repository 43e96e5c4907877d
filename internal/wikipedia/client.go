// Package wikipedia fetches page summaries used as context hints for
// generated records.
package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"aiss/internal/config"
	"aiss/internal/format"
	"aiss/internal/services"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultMaxChars = 600
	maxBodyBytes    = 1 << 20
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

// stripPolicy removes every tag from summary markup.
func stripPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Client queries the Wikipedia REST summary endpoint.
type Client struct {
	baseURL    string
	userAgent  string
	maxChars   int
	httpClient *http.Client
}

// New constructs a client from the [wikipedia] section. httpClient may be nil.
func New(cfg config.Wikipedia, httpClient *http.Client) *Client {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	lang := strings.TrimSpace(cfg.Language)
	if lang == "" {
		lang = "en"
	}
	maxChars := cfg.MaxChars
	if maxChars <= 0 {
		maxChars = defaultMaxChars
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.ReplaceAll(cfg.BaseURL, "{lang}", lang), "/"),
		userAgent:  strings.TrimSpace(cfg.UserAgent),
		maxChars:   maxChars,
		httpClient: httpClient,
	}
}

type summaryResponse struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Extract     string `json:"extract"`
	ExtractHTML string `json:"extract_html"`
}

// ContextHint returns a plain-text summary for the classified work. The
// formatted name is tried first; a trailing "(...)" qualifier is dropped
// on a miss.
func (c *Client) ContextHint(ctx context.Context, result format.ClassificationResult) (string, error) {
	title := strings.TrimSpace(result.FormattedName)
	if title == "" {
		return "", services.Wrap(services.ErrValidation, "wikipedia", "context hint", "classification has no name", nil)
	}
	summary, err := c.Summary(ctx, title)
	if err == nil {
		return summary, nil
	}
	if bare := stripQualifier(title); bare != title && errors.Is(err, services.ErrNotFound) {
		return c.Summary(ctx, bare)
	}
	return "", err
}

// Summary fetches and cleans the summary of the page titled title.
func (c *Client) Summary(ctx context.Context, title string) (string, error) {
	endpoint := c.baseURL + "/page/summary/" + url.PathEscape(strings.ReplaceAll(strings.TrimSpace(title), " ", "_"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("wikipedia request: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "wikipedia", "summary", title, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", services.Wrap(services.ErrTransient, "wikipedia", "summary", "read body", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", services.Wrap(services.ErrNotFound, "wikipedia", "summary", fmt.Sprintf("no page %q", title), nil)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError:
		return "", services.Wrap(services.ErrTransient, "wikipedia", "summary", fmt.Sprintf("http %d", resp.StatusCode), nil)
	case resp.StatusCode >= http.StatusMultipleChoices:
		return "", services.Wrap(services.ErrExternalService, "wikipedia", "summary", fmt.Sprintf("http %d", resp.StatusCode), nil)
	}

	var parsed summaryResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", services.Wrap(services.ErrExternalService, "wikipedia", "summary", "decode response", err)
	}
	if parsed.Type == "disambiguation" {
		return "", services.Wrap(services.ErrNotFound, "wikipedia", "summary", fmt.Sprintf("%q is a disambiguation page", title), nil)
	}

	text := parsed.Extract
	if strings.TrimSpace(parsed.ExtractHTML) != "" {
		text = Clean(parsed.ExtractHTML)
	}
	text = Truncate(collapse(text), c.maxChars)
	if text == "" {
		return "", services.Wrap(services.ErrNotFound, "wikipedia", "summary", fmt.Sprintf("page %q has no summary", title), nil)
	}
	return text, nil
}

// Clean strips markup and decodes entities.
func Clean(markup string) string {
	return collapse(html.UnescapeString(stripPolicy().Sanitize(markup)))
}

// Truncate shortens text to at most limit runes, preferring to end on a
// sentence and otherwise on a word, and marks the cut with an ellipsis.
func Truncate(text string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	cut := string(runes[:limit])
	if idx := strings.LastIndex(cut, ". "); idx > len(cut)/3 {
		return cut[:idx+1]
	}
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, ",;: ") + "…"
}

func collapse(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func stripQualifier(title string) string {
	if strings.HasSuffix(title, ")") {
		if idx := strings.LastIndex(title, " ("); idx > 0 {
			return strings.TrimSpace(title[:idx])
		}
	}
	return title
}
