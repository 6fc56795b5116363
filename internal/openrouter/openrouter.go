package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/studiolanding/promptgen/internal/providers"
	"github.com/studiolanding/promptgen/internal/secrets"
)

// DefaultBaseURL is the OpenRouter aggregator endpoint, which speaks
// the OpenAI chat-completions schema.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// Client is a provider backed by OpenRouter's chat-completions API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New returns a new OpenRouter client for the given API key
func New(apiKey string) *Client {
	return NewWithBaseURL(apiKey, DefaultBaseURL)
}

// NewWithBaseURL returns a client pointed at a custom base URL
func NewWithBaseURL(apiKey, baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{},
	}
}

var (
	defaultOnce   sync.Once
	defaultClient *Client
	defaultErr    error
)

// Default returns the process-wide client, constructed on first call
// from the resolved credential and immutable thereafter. Both the
// client and a resolution failure are memoized, so the credential is
// looked up at most once per process.
func Default() (*Client, error) {
	defaultOnce.Do(func() {
		apiKey, err := secrets.APIKey()
		if err != nil {
			defaultErr = fmt.Errorf("cannot configure OpenRouter client: %w", err)
			return
		}
		defaultClient = New(apiKey)
	})
	return defaultClient, defaultErr
}

// ExtractText sends the prompt and any attached images to the model
// and returns the raw response text
func (c *Client) ExtractText(ctx context.Context, config providers.Config) (string, error) {
	content := []map[string]interface{}{
		{
			"type": "text",
			"text": config.Prompt,
		},
	}
	for _, img := range config.Images {
		content = append(content, map[string]interface{}{
			"type": "image_url",
			"image_url": map[string]string{
				"url": img.DataURL(),
			},
		})
	}

	body := map[string]interface{}{
		"model": config.Model,
		"messages": []map[string]interface{}{
			{
				"role":    "user",
				"content": content,
			},
		},
	}
	if config.MaxTokens > 0 {
		body["max_tokens"] = config.MaxTokens
	}
	if config.Temperature > 0 {
		body["temperature"] = config.Temperature
	}

	requestBody, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("received non-200 status code: %d - %s", resp.StatusCode, string(respBody))
	}

	var response struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response body: %w", err)
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenRouter")
	}

	return response.Choices[0].Message.Content, nil
}
