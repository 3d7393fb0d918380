// Package summarizer wraps the external text summarization API. The
// service degrades gracefully when no endpoint is configured.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	ErrNotConfigured = errors.New("summarizer not configured")
	ErrUnavailable   = errors.New("summarizer unavailable")
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type summarizeRequest struct {
	Prompt string `json:"prompt"`
	Text   string `json:"text"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
}

// Summarize asks the configured endpoint to condense the text into a
// single short sentence.
func (c *Client) Summarize(ctx context.Context, text string) (string, error) {
	if c.baseURL == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(summarizeRequest{
		Prompt: "Summarize the following text into a single concise sentence.",
		Text:   text,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summarizer failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	var parsed summarizeResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	return parsed.Summary, nil
}
