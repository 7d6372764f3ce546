package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/jigardalal/siteninja-backend-sub001/internal/config"
)

// DefaultModel is used when a request does not supply a model override.
const DefaultModel = "gpt-4o-mini"

var (
	// ErrAuth means the provider rejected our credential, not the caller's
	// request. Routes surface it as a 500 with an operator-facing message.
	ErrAuth = errors.New("ai provider rejected the configured credential")

	// ErrRateLimited propagates the provider's 429 unchanged so callers
	// can back off.
	ErrRateLimited = errors.New("ai provider rate limit exceeded")
)

// SuggestionInput carries the content to analyze plus generation options.
type SuggestionInput struct {
	Content        string
	CurrentTitle   string
	TargetKeywords []string
	BusinessType   string
	Model          string
}

// Suggestions is the structured result of one provider call.
type Suggestions struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords"`
	Suggestions     []string `json:"suggestions"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client talks to an OpenAI-compatible chat-completions endpoint. No
// transport retries: backoff on 429 belongs to the caller.
type Client struct {
	http *resty.Client
}

func NewClient(cfg *config.AIConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetAuthToken(cfg.APIKey)

	return &Client{http: client}
}

const systemPrompt = "You are an SEO specialist for small-business websites. " +
	"Given page content, respond with a single JSON object with keys " +
	`"metaTitle" (string, max 60 chars), "metaDescription" (string, max 155 chars), ` +
	`"keywords" (array of strings) and "suggestions" (array of improvement notes).`

// Suggest invokes the provider and parses its structured reply.
func (c *Client) Suggest(ctx context.Context, in SuggestionInput) (*Suggestions, error) {
	model := in.Model
	if model == "" {
		model = DefaultModel
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(chatRequest{
			Model: model,
			Messages: []chatMessage{
				{Role: "system", Content: systemPrompt},
				{Role: "user", Content: buildUserPrompt(in)},
			},
			Temperature:    0.7,
			ResponseFormat: map[string]string{"type": "json_object"},
		}).
		SetResult(&chatResponse{}).
		Post("/chat/completions")
	if err != nil {
		return nil, fmt.Errorf("ai provider request failed: %w", err)
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrAuth
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("ai provider returned status %d", resp.StatusCode())
	}

	chat, ok := resp.Result().(*chatResponse)
	if !ok || len(chat.Choices) == 0 {
		return nil, fmt.Errorf("ai provider returned an empty completion")
	}

	return parseSuggestions(chat.Choices[0].Message.Content)
}

func buildUserPrompt(in SuggestionInput) string {
	var b strings.Builder
	if in.CurrentTitle != "" {
		fmt.Fprintf(&b, "Current title: %s\n", in.CurrentTitle)
	}
	if in.BusinessType != "" {
		fmt.Fprintf(&b, "Business type: %s\n", in.BusinessType)
	}
	if len(in.TargetKeywords) > 0 {
		fmt.Fprintf(&b, "Target keywords: %s\n", strings.Join(in.TargetKeywords, ", "))
	}
	fmt.Fprintf(&b, "Page content:\n%s", in.Content)
	return b.String()
}

// parseSuggestions tolerates models that wrap the JSON in code fences.
func parseSuggestions(content string) (*Suggestions, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var s Suggestions
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &s); err != nil {
		return nil, fmt.Errorf("ai provider returned malformed suggestions: %w", err)
	}
	return &s, nil
}
