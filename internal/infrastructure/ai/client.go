package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Completer produces assistant replies for chat turns and CV rewriting
type Completer interface {
	Complete(ctx context.Context, system string, messages []Message) (string, error)
}

// Message is one turn of a conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client calls a chat-completions style API
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient creates a completion client with a bounded request timeout
func NewClient(baseURL, apiKey, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type completionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Complete sends the conversation and returns the assistant reply text
func (c *Client) Complete(ctx context.Context, system string, messages []Message) (string, error) {
	payload := completionRequest{Model: c.model}
	if system != "" {
		payload.Messages = append(payload.Messages, Message{Role: "system", Content: system})
	}
	payload.Messages = append(payload.Messages, messages...)

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion service returned status %d", resp.StatusCode)
	}

	var result completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("completion response malformed: %w", err)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("completion response has no choices")
	}

	return result.Choices[0].Message.Content, nil
}
