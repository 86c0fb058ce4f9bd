package config

import (
	"os"
	"sync"
	"time"
)

type GeminiConfig struct {
	APIKey     string
	Model      string
	MaxRetries int
	Timeout    time.Duration
	BaseURL    string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		geminiConfig = &GeminiConfig{
			APIKey:     os.Getenv("GEMINI_API_KEY"),
			Model:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			MaxRetries: getEnvAsInt("GEMINI_MAX_RETRIES", 0),
			Timeout:    getEnvAsDuration("GEMINI_TIMEOUT", 0),
			BaseURL:    os.Getenv("GEMINI_BASE_URL"),
		}
	})
	return geminiConfig
}
