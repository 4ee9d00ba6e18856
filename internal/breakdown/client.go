package breakdown

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/genai"

	"smartdo/internal/logger"
	"smartdo/internal/model"
)

// Internal adapter interface to enable mocking without a real Gemini backend.
type generateAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var _ model.BreakdownClient = (*Client)(nil)

// Client asks the text-generation service to split a task into smaller
// actionable subtasks. Without an API key it runs in mock mode and returns a
// fixed 3-item template. Any failure degrades to an empty list: breakdown is
// best-effort enrichment and must never block the add-task path. One attempt
// per call, no retries.
type Client struct {
	api    generateAPI
	model  string
	logger *logger.Logger
}

// NewClient creates a breakdown client. An empty apiKey selects mock mode.
func NewClient(ctx context.Context, apiKey, model string, logger *logger.Logger) (*Client, error) {
	c := &Client{
		model:  model,
		logger: logger,
	}

	if apiKey == "" {
		logger.Info("Breakdown client: no API key configured, serving mock subtasks")
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	c.api = client.Models

	return c, nil
}

// Breakdown returns subtask suggestions for text. The caller is expected to
// guard against empty input.
func (c *Client) Breakdown(ctx context.Context, text string) []string {
	if c.api == nil {
		return []string{
			"Plan details for: " + text,
			"Execute: " + text,
			"Review: " + text,
		}
	}

	prompt := fmt.Sprintf("Break down this task into 3-5 smaller, actionable subtasks: %q. Keep them concise.", text)

	resp, err := c.api.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	})
	if err != nil {
		c.logger.Error("Breakdown client: generation failed",
			"error", err.Error())
		return nil
	}

	body := resp.Text()
	if body == "" {
		c.logger.Warn("Breakdown client: empty response body")
		return nil
	}

	var subtasks []string
	if err := json.Unmarshal([]byte(body), &subtasks); err != nil {
		c.logger.Error("Breakdown client: malformed response body",
			"error", err.Error())
		return nil
	}

	return subtasks
}
