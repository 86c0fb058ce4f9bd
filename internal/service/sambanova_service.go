package service

import (
	"context"
	"fmt"

	"github.com/fadilmartias/placement-portal/internal/config"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// SambaNovaService talks to any OpenAI-compatible chat completion endpoint.
type SambaNovaService struct {
	client *resty.Client
	URL    string
	Model  string
}

func NewSambaNovaService(cfg *config.SambaNovaConfig) *SambaNovaService {
	client := resty.New().
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	return &SambaNovaService{client: client, URL: cfg.URL, Model: cfg.Model}
}

func (s *SambaNovaService) Provider() string { return "sambanova" }

func (s *SambaNovaService) GenerateText(ctx context.Context, systemPrompt, prompt string) (string, error) {
	messages := []map[string]string{}
	if systemPrompt != "" {
		messages = append(messages, map[string]string{"role": "system", "content": systemPrompt})
	}
	messages = append(messages, map[string]string{"role": "user", "content": prompt})

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(map[string]any{
			"model":       s.Model,
			"messages":    messages,
			"temperature": 0.2,
			"top_p":       0.95,
		}).
		Post(s.URL)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode(), resp.String())
	}

	content := gjson.Get(resp.String(), "choices.0.message.content")
	if !content.Exists() || content.String() == "" {
		return "", fmt.Errorf("no response from LLM")
	}
	return content.String(), nil
}
