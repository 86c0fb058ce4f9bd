package service

import (
	"context"

	"github.com/fadilmartias/placement-portal/internal/config"
)

// TextGenerator is one synchronous prompt-in, text-out call to an AI backend.
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, prompt string) (string, error)
	Provider() string
}

// NewTextGenerator prefers Gemini, then SambaNova. It returns nil when neither key is set.
func NewTextGenerator(ctx context.Context, gemini *config.GeminiConfig, sambaNova *config.SambaNovaConfig) (TextGenerator, error) {
	if gemini != nil && gemini.APIKey != "" {
		return NewGeminiService(ctx, gemini)
	}
	if sambaNova != nil && sambaNova.APIKey != "" {
		return NewSambaNovaService(sambaNova), nil
	}
	return nil, nil
}
