package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"academic-assistant/internal/domain"
	apperrors "academic-assistant/pkg/errors"

	"google.golang.org/genai"
)

const rateLimitMessage = "Error calling Gemini: API Rate limit exceeded. Coba lagi nanti."

// attemptResult is the outcome of one provider call.
type attemptResult struct {
	text      string
	err       error
	retryable bool
}

// AIService implements domain.Generator on top of a ModelBackend, retrying
// rate-limited calls with linear backoff.
type AIService struct {
	backend  ModelBackend
	settings domain.GenerationSettings
	policy   domain.RetryPolicy
	logger   domain.Logger

	sleep func(ctx context.Context, d time.Duration) error
}

// NewAIService creates the model client.
func NewAIService(
	backend ModelBackend,
	settings domain.GenerationSettings,
	policy domain.RetryPolicy,
	logger domain.Logger,
) *AIService {
	if policy.MaxRetries <= 0 {
		policy.MaxRetries = 1
	}
	return &AIService{
		backend:  backend,
		settings: settings,
		policy:   policy,
		logger:   logger,
		sleep:    sleepContext,
	}
}

// Generate sends prompt to the model. Rate-limit failures are retried up to
// policy.MaxRetries attempts in total; any other failure is returned at once.
func (s *AIService) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	var last attemptResult
	for attempt := 1; attempt <= s.policy.MaxRetries; attempt++ {
		s.logger.Info("Calling Gemini API", "attempt", attempt, "max_attempts", s.policy.MaxRetries, "model", s.settings.Model)

		last = s.attempt(ctx, apiKey, prompt)
		if last.err == nil {
			s.logger.Info("Gemini response received", "chars", len(last.text))
			return last.text, nil
		}
		if !last.retryable {
			s.logger.Error("Gemini call failed", last.err, "attempt", attempt)
			return "", apperrors.NewGenerationError("Error calling Gemini: "+last.err.Error(), last.err)
		}
		if attempt == s.policy.MaxRetries {
			break
		}

		wait := s.policy.Wait(attempt)
		s.logger.Warn("Gemini rate limit hit, retrying", "attempt", attempt, "wait", wait.String())
		if err := s.sleep(ctx, wait); err != nil {
			return "", apperrors.NewGenerationError("Error calling Gemini: "+err.Error(), err)
		}
	}

	s.logger.Error("Gemini rate limit retries exhausted", last.err, "attempts", s.policy.MaxRetries)
	return "", apperrors.NewRateLimitError(rateLimitMessage, last.err)
}

// ValidateKey checks apiKey with a lightweight authenticated call.
func (s *AIService) ValidateKey(ctx context.Context, apiKey string) error {
	return s.backend.ListModels(ctx, apiKey)
}

func (s *AIService) attempt(ctx context.Context, apiKey, prompt string) attemptResult {
	text, err := s.backend.GenerateContent(ctx, apiKey, prompt, s.settings)
	if err != nil {
		return attemptResult{err: err, retryable: isRateLimited(err)}
	}
	if strings.TrimSpace(text) == "" {
		return attemptResult{err: domain.ErrEmptyModelResponse}
	}
	return attemptResult{text: text}
}

// isRateLimited reports whether the provider throttled the request, using
// the structured status carried by the API error.
func isRateLimited(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED"
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code == http.StatusTooManyRequests || apiErrPtr.Status == "RESOURCE_EXHAUSTED"
	}
	return false
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var _ domain.Generator = (*AIService)(nil)
