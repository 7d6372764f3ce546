package config

import (
	"time"
)

// AIConfig holds the connection settings for the OpenAI-compatible
// suggestion provider.
type AIConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  getEnvWithDefault("AI_PROVIDER_API_KEY", ""),
		BaseURL: getEnvWithDefault("AI_PROVIDER_BASE_URL", "https://api.openai.com/v1"),
		Timeout: getEnvDurationWithDefault("AI_PROVIDER_TIMEOUT", 30*time.Second),
	}
}
