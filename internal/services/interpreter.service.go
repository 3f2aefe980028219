package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrInterpreterNotConfigured is returned when the assistant endpoints
// are invoked without an API key. Startup deliberately tolerates the
// missing key; only the calls themselves fail.
var ErrInterpreterNotConfigured = errors.New("assistant api key not configured")

// HTTPInterpreter calls an OpenAI-compatible chat completions endpoint.
type HTTPInterpreter struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewHTTPInterpreter builds the external interpretation client. Base
// URL and model fall back to OpenAI defaults when empty. Timeouts are
// enforced by the caller's context, not the client.
func NewHTTPInterpreter(apiKey, baseURL, model string) *HTTPInterpreter {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &HTTPInterpreter{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{},
	}
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Interpret sends the prompt pair to the completion endpoint and
// returns the first choice's content.
func (h *HTTPInterpreter) Interpret(ctx context.Context, systemPrompt, text string) (string, error) {
	if h.apiKey == "" {
		return "", ErrInterpreterNotConfigured
	}

	payload, err := json.Marshal(chatCompletionRequest{
		Model: h.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encoding interpreter request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building interpreter request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling interpreter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("interpreter returned status %d", resp.StatusCode)
	}

	var parsed chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding interpreter response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("interpreter returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
