package service

import (
	"context"
	"strings"

	"academic-assistant/internal/domain"
	apperrors "academic-assistant/pkg/errors"
)

// DefaultMinExtractedChars is the primary-engine yield below which the fallback engine runs.
const DefaultMinExtractedChars = 100

const extractionFailedMessage = "Tidak bisa extract text dari PDF - kemungkinan file corrupted atau image-based PDF"

// PDFProcessor extracts page-annotated text with a primary engine and a
// fallback engine for documents where the primary one comes up short.
type PDFProcessor struct {
	validator domain.PDFValidator
	primary   domain.PageExtractor
	fallback  domain.PageExtractor
	minChars  int
	logger    domain.Logger
}

// NewPDFProcessor creates a PDF processor. validator may be nil.
func NewPDFProcessor(
	validator domain.PDFValidator,
	primary domain.PageExtractor,
	fallback domain.PageExtractor,
	minChars int,
	logger domain.Logger,
) *PDFProcessor {
	if minChars <= 0 {
		minChars = DefaultMinExtractedChars
	}
	return &PDFProcessor{
		validator: validator,
		primary:   primary,
		fallback:  fallback,
		minChars:  minChars,
		logger:    logger,
	}
}

// ExtractText implements domain.TextExtractor.
//
// Pages from the primary engine are kept in order, skipping empty ones. When
// the accumulated text (headers included) is shorter than minChars, the
// fallback engine re-reads the whole file and its pages are appended, so a
// partially successful primary pass can show up twice.
func (p *PDFProcessor) ExtractText(ctx context.Context, path string) (*domain.ExtractedText, error) {
	if p.validator != nil {
		if err := p.validator.Validate(path); err != nil {
			p.logger.Warn("PDF failed structural validation", "path", path, "error", err)
			return nil, apperrors.NewExtractionError("Error extracting PDF: "+err.Error(), err)
		}
	}

	result := &domain.ExtractedText{}

	p.logger.Debug("Extracting PDF text", "engine", p.primary.Name(), "path", path)
	if err := p.collect(result, p.primary, path); err != nil {
		p.logger.Warn("Primary PDF engine failed", "engine", p.primary.Name(), "error", err)
	}

	if len(strings.TrimSpace(result.Content())) < p.minChars && p.fallback != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p.logger.Info("Extracted text below threshold, trying fallback engine",
			"engine", p.fallback.Name(), "chars", len(result.Content()), "threshold", p.minChars)
		result.UsedFallback = true
		if err := p.collect(result, p.fallback, path); err != nil {
			p.logger.Warn("Fallback PDF engine failed", "engine", p.fallback.Name(), "error", err)
		}
	}

	if result.IsBlank() {
		return nil, apperrors.NewExtractionError(extractionFailedMessage, domain.ErrEmptyExtraction)
	}

	p.logger.Info("PDF text extracted", "chars", len(result.Content()), "pages", len(result.Pages), "fallback", result.UsedFallback)
	return result, nil
}

func (p *PDFProcessor) collect(result *domain.ExtractedText, engine domain.PageExtractor, path string) error {
	pages, err := engine.ExtractPages(path)
	if err != nil {
		return err
	}
	for i, raw := range pages {
		text := sanitizeText(raw)
		if strings.TrimSpace(text) == "" {
			p.logger.Debug("Page yielded no text", "engine", engine.Name(), "page", i+1)
			continue
		}
		result.Append(domain.Page{Number: i + 1, Text: text, Engine: engine.Name()})
	}
	return nil
}

// sanitizeText removes NUL bytes, stray control characters and surrogate
// code points that break JSON encoding of the prompt.
func sanitizeText(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch {
		case r == 0x09 || r == 0x0A || r == 0x0D:
			result.WriteRune(r)
		case r >= 0x20 && r < 0x7F:
			result.WriteRune(r)
		case r >= 0x7F && r <= 0x10FFFF && (r < 0xD800 || r > 0xDFFF):
			if r == 0xFFFD || (r >= 0x7F && r < 0xA0) {
				continue
			}
			result.WriteRune(r)
		}
	}
	return result.String()
}
