// Package ai generates tutorial drafts from a topic prompt using an
// OpenAI-compatible chat completions endpoint.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jeonck/tutoria/internal/entities"
	"github.com/jeonck/tutoria/internal/markdown"
)

const systemPrompt = `You are a technical tutorial writer. Produce a single markdown document with YAML front matter containing exactly these keys: title, description, category, difficulty (Beginner, Intermediate or Advanced), duration (minutes, integer), tags (array). After the front matter, write the tutorial body in markdown. Output only the document, no commentary.`

// Client calls an OpenAI-compatible chat completions API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

// NewClient returns nil when no API key is configured; callers treat a nil
// client as "generation disabled".
func NewClient(baseURL, apiKey, model string) *Client {
	if apiKey == "" {
		return nil
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateTutorial asks the model for a tutorial about the topic and parses
// the returned markdown into an entity. The draft is not persisted.
func (c *Client) GenerateTutorial(ctx context.Context, topic string) (*entities.Tutorial, error) {
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	raw, err := c.complete(ctx, fmt.Sprintf("Write a tutorial about: %s", topic))
	if err != nil {
		return nil, err
	}

	tutorial := markdown.Parse(raw, "generated.md")
	// Generated drafts are not markdown imports; clear the provenance the
	// parser attaches.
	tutorial.IsImportedFromMarkdown = false
	tutorial.OriginalFileName = ""
	tutorial.OriginalMarkdownContent = ""
	return tutorial, nil
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call completions API: %w", err)
	}
	defer resp.Body.Close()

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("completions API error: %s", parsed.Error.Message)
		}
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completions API returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
