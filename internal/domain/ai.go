package domain

import (
	"strings"
	"time"
)

// GenerationSettings fixes the model and sampling parameters used for every prompt.
type GenerationSettings struct {
	Model           string
	Temperature     float32
	TopK            float32
	TopP            float32
	MaxOutputTokens int32
}

// DefaultGenerationSettings mirrors the values the writing aids were tuned with.
func DefaultGenerationSettings(model string) GenerationSettings {
	if strings.TrimSpace(model) == "" {
		model = "gemini-2.0-flash"
	}
	return GenerationSettings{
		Model:           model,
		Temperature:     0.5,
		TopK:            30,
		TopP:            0.9,
		MaxOutputTokens: 2000,
	}
}

// RetryPolicy bounds the rate-limit retry loop. Waits grow linearly:
// BaseDelay after the first attempt, 2*BaseDelay after the second, and so on.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// DefaultRetryPolicy allows three attempts spaced five seconds apart.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, BaseDelay: 5 * time.Second}
}

// Wait returns the pause after the given 1-based attempt.
func (p RetryPolicy) Wait(attempt int) time.Duration {
	return p.BaseDelay * time.Duration(attempt)
}
