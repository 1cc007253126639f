package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"academic-assistant/internal/domain"
	apperrors "academic-assistant/pkg/errors"
)

// DefaultMaxSynthesisFiles caps how many PDFs one synthesis request accepts.
const DefaultMaxSynthesisFiles = 5

// SynthesisService extracts several uploaded PDFs and asks the model for a
// combined literature summary.
type SynthesisService struct {
	credentials domain.CredentialService
	storage     domain.ScratchStorage
	extractor   domain.TextExtractor
	generator   domain.Generator
	maxFiles    int
	logger      domain.Logger
}

// NewSynthesisService creates a synthesis service.
func NewSynthesisService(
	credentials domain.CredentialService,
	storage domain.ScratchStorage,
	extractor domain.TextExtractor,
	generator domain.Generator,
	maxFiles int,
	logger domain.Logger,
) *SynthesisService {
	if maxFiles <= 0 {
		maxFiles = DefaultMaxSynthesisFiles
	}
	return &SynthesisService{
		credentials: credentials,
		storage:     storage,
		extractor:   extractor,
		generator:   generator,
		maxFiles:    maxFiles,
		logger:      logger,
	}
}

// IsPDFFilename reports whether name carries a .pdf extension, ignoring case.
func IsPDFFilename(name string) bool {
	return strings.EqualFold(filepath.Ext(strings.TrimSpace(name)), ".pdf")
}

// Synthesize implements domain.SynthesisService.
//
// The whole batch is validated before any file is touched. A file that
// fails to save or extract is logged and skipped; the request only fails
// when no file contributes text.
func (s *SynthesisService) Synthesize(ctx context.Context, files []domain.UploadedFile) (*domain.SynthesisResult, error) {
	apiKey, err := s.credentials.APIKey(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Synthesis files received", "count", len(files))
	if len(files) == 0 {
		return nil, apperrors.NewValidationError("Pilih minimal 1 PDF", domain.ErrNoFiles.Error())
	}
	if len(files) > s.maxFiles {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Maksimal %d PDF sekaligus", s.maxFiles),
			domain.ErrTooManyFiles.Error(),
		)
	}
	for _, f := range files {
		if f.Filename != "" && !IsPDFFilename(f.Filename) {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("File %s harus PDF", f.Filename),
				domain.ErrUnsupportedFileType.Error(),
			)
		}
	}

	texts := make([]string, 0, len(files))
	for idx, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if f.Filename == "" {
			s.logger.Warn("Skipping upload without filename", "index", idx+1)
			continue
		}

		text, name, err := s.extractOne(ctx, f)
		if err != nil {
			s.logger.Error("Skipping file that could not be processed", err, "index", idx+1, "file", f.Filename)
			continue
		}
		texts = append(texts, "=== "+name+" ===\n"+text)
		s.logger.Info("File processed", "index", idx+1, "file", name, "chars", len(text))
	}

	if len(texts) == 0 {
		return nil, apperrors.NewExtractionError(
			"Tidak ada text yang bisa diextract dari PDF. Cek apakah PDF text-based (bukan image)",
			domain.ErrNoExtractableContent,
		)
	}

	combined := strings.Join(texts, "\n\n")
	s.logger.Info("Synthesis corpus ready", "files_processed", len(texts), "chars", len(combined))

	result, err := s.generator.Generate(ctx, apiKey, BuildSynthesisPrompt(combined))
	if err != nil {
		return nil, err
	}

	return &domain.SynthesisResult{
		Result:         result,
		Status:         "success",
		FilesProcessed: len(texts),
	}, nil
}

// extractOne saves f to scratch storage, extracts it and always releases the
// scratch copy.
func (s *SynthesisService) extractOne(ctx context.Context, f domain.UploadedFile) (string, string, error) {
	scratch, err := s.storage.Save(f.Filename, f.Content)
	if err != nil {
		return "", "", err
	}
	defer func() {
		if err := scratch.Release(); err != nil {
			s.logger.Warn("Failed to remove scratch file", "path", scratch.Path, "error", err)
		}
	}()

	extracted, err := s.extractor.ExtractText(ctx, scratch.Path)
	if err != nil {
		return "", "", err
	}
	content := extracted.Content()
	if strings.TrimSpace(content) == "" {
		return "", "", apperrors.NewExtractionError(extractionFailedMessage, domain.ErrEmptyExtraction)
	}
	return content, scratch.Name, nil
}
