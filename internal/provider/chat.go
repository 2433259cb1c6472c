package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const chatSystemPrompt = `You are Jarvish, a helpful AI voice assistant. You can help users with:
- General questions and information
- Casual conversation
- Providing explanations and definitions
- Creative tasks like writing or brainstorming
- Problem-solving assistance

Keep your responses:
- Conversational and friendly
- Helpful and informative
- Concise but complete

User message: `

// Gemini generates free-form conversational replies via the Google
// Generative Language API.
type Gemini struct {
	client *http.Client
	apiKey string
	model  string
}

func NewGemini(apiKey string, timeout time.Duration) *Gemini {
	return &Gemini{client: newHTTPClient(timeout), apiKey: apiKey, model: "gemini-2.5-flash"}
}

func (p *Gemini) Reply(ctx context.Context, message string) (string, error) {
	if p.apiKey == "" {
		return "", ErrNotConfigured
	}

	endpoint := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent", p.model)

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": chatSystemPrompt + message}}},
		},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty completion")
	}

	return body.Candidates[0].Content.Parts[0].Text, nil
}
