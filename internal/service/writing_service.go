package service

import (
	"context"
	"strings"

	"academic-assistant/internal/domain"
	apperrors "academic-assistant/pkg/errors"
)

// WritingAidService backs the paraphrase and quote-check endpoints.
type WritingAidService struct {
	credentials domain.CredentialService
	generator   domain.Generator
	logger      domain.Logger
}

// NewWritingAidService creates a writing aid service.
func NewWritingAidService(credentials domain.CredentialService, generator domain.Generator, logger domain.Logger) *WritingAidService {
	return &WritingAidService{
		credentials: credentials,
		generator:   generator,
		logger:      logger,
	}
}

// Paraphrase rewrites req.Text in the requested style.
func (s *WritingAidService) Paraphrase(ctx context.Context, req domain.WritingRequest) (*domain.TextResult, error) {
	apiKey, err := s.credentials.APIKey(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return nil, apperrors.NewValidationError("Teks harus diisi")
	}

	prompt, err := BuildWritingPrompt(req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Generating writing aid", "style_format", req.StyleFormat, "chars", len(req.Text))
	result, err := s.generator.Generate(ctx, apiKey, prompt)
	if err != nil {
		return nil, err
	}
	return &domain.TextResult{Result: result}, nil
}

// CheckQuote asks the model to assess a quote against its stated source.
func (s *WritingAidService) CheckQuote(ctx context.Context, req domain.QuoteCheckRequest) (*domain.TextResult, error) {
	apiKey, err := s.credentials.APIKey(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Quote) == "" || strings.TrimSpace(req.Source) == "" {
		return nil, apperrors.NewValidationError("Kutipan dan sumber harus diisi")
	}

	s.logger.Info("Checking quote", "quote_chars", len(req.Quote))
	result, err := s.generator.Generate(ctx, apiKey, BuildQuoteCheckPrompt(req.Quote, req.Source))
	if err != nil {
		return nil, err
	}
	return &domain.TextResult{Result: result}, nil
}

var (
	_ domain.WritingService    = (*WritingAidService)(nil)
	_ domain.SynthesisService  = (*SynthesisService)(nil)
	_ domain.CredentialService = (*CredentialService)(nil)
)
