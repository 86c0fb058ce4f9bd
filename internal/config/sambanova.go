package config

import (
	"os"
	"sync"
)

type SambaNovaConfig struct {
	APIKey string
	URL    string
	Model  string
}

var (
	sambaNovaConfig *SambaNovaConfig
	sambaNovaOnce   sync.Once
)

func LoadSambaNovaConfig() *SambaNovaConfig {
	sambaNovaOnce.Do(func() {
		sambaNovaConfig = &SambaNovaConfig{
			APIKey: os.Getenv("SAMBANOVA_API_KEY"),
			URL:    getEnv("SAMBANOVA_API_URL", "https://api.sambanova.ai/v1/chat/completions"),
			Model:  getEnv("SAMBANOVA_MODEL", "Meta-Llama-3.1-8B-Instruct"),
		}
	})
	return sambaNovaConfig
}
