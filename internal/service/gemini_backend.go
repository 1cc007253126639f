package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"academic-assistant/internal/domain"

	"google.golang.org/genai"
)

// ModelBackend performs single, unretried calls against the model provider.
type ModelBackend interface {
	GenerateContent(ctx context.Context, apiKey, prompt string, settings domain.GenerationSettings) (string, error)
	ListModels(ctx context.Context, apiKey string) error
}

// GeminiBackend talks to the Gemini API with a caller-supplied API key.
type GeminiBackend struct {
	httpClient *http.Client
	baseURL    string
}

// NewGeminiBackend creates a backend whose HTTP calls time out after timeout.
func NewGeminiBackend(timeout time.Duration) *GeminiBackend {
	return &GeminiBackend{
		httpClient: &http.Client{Timeout: timeout},
	}
}

// WithBaseURL points the backend at a different endpoint.
func (b *GeminiBackend) WithBaseURL(baseURL string) *GeminiBackend {
	b.baseURL = baseURL
	return b
}

// The key is read from disk per request, so a client is built per call.
func (b *GeminiBackend) client(ctx context.Context, apiKey string) (*genai.Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: b.httpClient,
	}
	if b.baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: b.baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return client, nil
}

// GenerateContent implements ModelBackend.
func (b *GeminiBackend) GenerateContent(ctx context.Context, apiKey, prompt string, settings domain.GenerationSettings) (string, error) {
	client, err := b.client(ctx, apiKey)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(ctx, settings.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(settings.Temperature),
		TopK:            genai.Ptr(settings.TopK),
		TopP:            genai.Ptr(settings.TopP),
		MaxOutputTokens: settings.MaxOutputTokens,
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// ListModels implements ModelBackend. It is the cheapest authenticated call
// the API offers and is used to check a key before saving it.
func (b *GeminiBackend) ListModels(ctx context.Context, apiKey string) error {
	client, err := b.client(ctx, apiKey)
	if err != nil {
		return err
	}
	if _, err := client.Models.List(ctx, &genai.ListModelsConfig{PageSize: 1}); err != nil {
		return err
	}
	return nil
}
