package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// anthropicModel is the hosted text-generation model used for all calls.
const anthropicModel = "claude-3-7-sonnet-20250219"

// AnthropicClient calls the Anthropic messages API.
type AnthropicClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewAnthropicClient creates a client for the hosted text-generation API.
func NewAnthropicClient(apiKey string) *AnthropicClient {
	return &AnthropicClient{
		apiKey:     apiKey,
		apiURL:     "https://api.anthropic.com/v1/messages",
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// NewAnthropicClientWithURL creates a client against a custom endpoint.
// Used by tests to point at a fake server.
func NewAnthropicClientWithURL(apiKey, apiURL string) *AnthropicClient {
	c := NewAnthropicClient(apiKey)
	c.apiURL = apiURL
	return c
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature"`
	System      string             `json:"system,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
	Stream      bool               `json:"stream,omitempty"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// CreateMessage runs one blocking completion and returns the response text.
func (c *AnthropicClient) CreateMessage(ctx context.Context, system, prompt string, maxTokens int, temperature float64) (string, error) {
	reqBody := anthropicRequest{
		Model:       anthropicModel,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		System:      system,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
	}

	resp, err := c.send(ctx, &reqBody)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text-generation API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result anthropicResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Content) == 0 {
		return "", fmt.Errorf("no content in API response")
	}
	return result.Content[0].Text, nil
}

// StreamMessage runs one streaming completion, invoking emit for every text
// delta as it arrives. This is a pass-through relay: one stream per call,
// no buffering beyond the transport's.
func (c *AnthropicClient) StreamMessage(ctx context.Context, system, prompt string, maxTokens int, temperature float64, emit func(text string) error) error {
	reqBody := anthropicRequest{
		Model:       anthropicModel,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		System:      system,
		Messages:    []anthropicMessage{{Role: "user", Content: prompt}},
		Stream:      true,
	}

	resp, err := c.send(ctx, &reqBody)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("text-generation API returned status %d: %s", resp.StatusCode, string(body))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		var event struct {
			Type  string `json:"type"`
			Delta struct {
				Type string `json:"type"`
				Text string `json:"text"`
			} `json:"delta"`
		}
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event); err != nil {
			continue
		}

		if event.Type == "content_block_delta" && event.Delta.Type == "text_delta" {
			if err := emit(event.Delta.Text); err != nil {
				return err
			}
		}
		if event.Type == "message_stop" {
			break
		}
	}
	return scanner.Err()
}

func (c *AnthropicClient) send(ctx context.Context, reqBody *anthropicRequest) (*http.Response, error) {
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call text-generation API: %w", err)
	}
	return resp, nil
}
