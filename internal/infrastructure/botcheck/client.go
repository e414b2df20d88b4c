package botcheck

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Checker classifies a phone number as operated by a human or a bot
type Checker interface {
	IsHuman(ctx context.Context, phone string) (bool, error)
}

// Client calls the external bot-detection heuristic over HTTP
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a bot-check client with a bounded request timeout
func NewClient(url, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		url:        url,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type checkRequest struct {
	Phone string `json:"phone"`
}

type checkResponse struct {
	Human bool `json:"human"`
}

// IsHuman posts the normalized phone to the heuristic service. Transport
// failures are returned as errors; the login flow treats any error as a
// hard failure of the attempt.
func (c *Client) IsHuman(ctx context.Context, phone string) (bool, error) {
	body, err := json.Marshal(checkRequest{Phone: phone})
	if err != nil {
		return false, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("bot check request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("bot check returned status %d", resp.StatusCode)
	}

	var result checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("bot check response malformed: %w", err)
	}

	return result.Human, nil
}
