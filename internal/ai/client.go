// Package ai wraps an OpenAI-compatible chat completions API for the content
// tools: virality scoring and caption improvement. Model output is validated
// against fixed schemas and retried on mismatch so callers never see
// free-form text.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lumina/creatorhub/internal/config"
	"github.com/lumina/creatorhub/internal/pkg/logger"
)

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("ai features are not configured")

// ErrBadModelOutput is returned when the model keeps producing responses
// that fail schema validation after all retries.
var ErrBadModelOutput = errors.New("model output failed validation")

// Client calls a chat-completions endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	maxRetries int
	httpClient *http.Client
}

// NewClient creates an AI client from configuration.
func NewClient(cfg *config.OpenAIConfig) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o"
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      model,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool { return c.apiKey != "" }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// ViralityCategory enumerates the buckets the scorer may return.
var viralityCategories = map[string]bool{
	"hook":       true,
	"trend":      true,
	"value":      true,
	"story":      true,
	"engagement": true,
}

// ViralityResult is the validated output of the virality scorer.
type ViralityResult struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
	Category  string `json:"category"`
}

// Caption is one improved caption variant.
type Caption struct {
	Headline string `json:"headline"`
	Body     string `json:"body"`
}

const viralityPrompt = `You score social media content ideas for viral potential.
Respond with ONLY a JSON object: {"score": <0-100 integer>, "reasoning": "<one or two sentences>", "category": "<one of: hook, trend, value, story, engagement>"}.
The category names the main viral driver of the idea.`

const captionsPrompt = `You improve social media captions for creators.
Respond with ONLY a JSON array of exactly 3 objects: [{"headline": "<short hook line>", "body": "<caption text>"}, ...].
Each variant should take a different angle. Keep the creator's voice.`

// ScoreVirality asks the model to rate a content idea and validates the
// response shape.
func (c *Client) ScoreVirality(ctx context.Context, platform, niche, idea string) (*ViralityResult, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	user := fmt.Sprintf("Platform: %s\nNiche: %s\nContent idea: %s", platform, niche, idea)

	var result *ViralityResult
	err := c.completeValidated(ctx, viralityPrompt, user, func(content string) error {
		var v ViralityResult
		if err := json.Unmarshal([]byte(content), &v); err != nil {
			return fmt.Errorf("not a JSON object: %w", err)
		}
		if v.Score < 0 || v.Score > 100 {
			return fmt.Errorf("score %d out of range", v.Score)
		}
		if v.Reasoning == "" {
			return errors.New("empty reasoning")
		}
		if !viralityCategories[v.Category] {
			return fmt.Errorf("unknown category %q", v.Category)
		}
		result = &v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ImproveCaptions asks the model for exactly three caption variants.
func (c *Client) ImproveCaptions(ctx context.Context, platform, niche, caption string) ([]Caption, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	user := fmt.Sprintf("Platform: %s\nNiche: %s\nOriginal caption: %s", platform, niche, caption)

	var result []Caption
	err := c.completeValidated(ctx, captionsPrompt, user, func(content string) error {
		var variants []Caption
		if err := json.Unmarshal([]byte(content), &variants); err != nil {
			return fmt.Errorf("not a JSON array: %w", err)
		}
		if len(variants) != 3 {
			return fmt.Errorf("got %d variants, want 3", len(variants))
		}
		for i, v := range variants {
			if v.Headline == "" || v.Body == "" {
				return fmt.Errorf("variant %d has empty fields", i)
			}
		}
		result = variants
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// completeValidated runs a completion and applies validate to the content,
// retrying with the validation error fed back to the model.
func (c *Client) completeValidated(ctx context.Context, system, user string, validate func(string) error) error {
	messages := []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}

	attempts := c.maxRetries + 1
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		content, err := c.complete(ctx, messages)
		if err != nil {
			return err
		}

		content = stripCodeFence(content)
		if err := validate(content); err == nil {
			return nil
		} else {
			lastErr = err
			logger.Warn("model output rejected", "attempt", i+1, "error", err.Error())
			messages = append(messages,
				chatMessage{Role: "assistant", Content: content},
				chatMessage{Role: "user", Content: "That response was invalid: " + err.Error() + ". Respond again with only the required JSON."},
			)
		}
	}
	return fmt.Errorf("%w: %v", ErrBadModelOutput, lastErr)
}

func (c *Client) complete(ctx context.Context, messages []chatMessage) (string, error) {
	request := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.7,
		MaxTokens:   1000,
	}

	jsonBody, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call completions: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("parse response: %w (body: %s)", err, string(body))
	}
	if response.Error != nil {
		return "", fmt.Errorf("API error: %s", response.Error.Message)
	}
	if len(response.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return response.Choices[0].Message.Content, nil
}

// stripCodeFence removes a markdown code fence the model sometimes wraps
// JSON in despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
