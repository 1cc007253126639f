package domain

import (
	"context"
	"io"
)

// PageExtractor is one PDF text extraction engine.
type PageExtractor interface {
	// Name identifies the engine in logs.
	Name() string
	// ExtractPages returns the text of every page in order. A page that
	// yields nothing is returned as an empty string.
	ExtractPages(path string) ([]string, error)
}

// TextExtractor turns a PDF on disk into page-annotated text.
type TextExtractor interface {
	ExtractText(ctx context.Context, path string) (*ExtractedText, error)
}

// PDFValidator performs a structural check before extraction.
type PDFValidator interface {
	Validate(path string) error
}

// ScratchStorage holds uploaded files for the duration of one request.
type ScratchStorage interface {
	Save(originalName string, r io.Reader) (*ScratchFile, error)
}

// CredentialRepository persists the single API key record.
type CredentialRepository interface {
	Load() (string, error)
	Save(apiKey string) error
}

// CredentialService exposes the API key lifecycle to handlers.
type CredentialService interface {
	Status(ctx context.Context) CredentialStatus
	APIKey(ctx context.Context) (string, error)
	SetAPIKey(ctx context.Context, candidate string) error
}

// Generator sends prompts to the language model provider.
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
	ValidateKey(ctx context.Context, apiKey string) error
}

// SynthesisService combines several uploaded PDFs into one summary.
type SynthesisService interface {
	Synthesize(ctx context.Context, files []UploadedFile) (*SynthesisResult, error)
}

// WritingService provides the single-text writing aids.
type WritingService interface {
	Paraphrase(ctx context.Context, req WritingRequest) (*TextResult, error)
	CheckQuote(ctx context.Context, req QuoteCheckRequest) (*TextResult, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerHost() string
	GetServerPort() string
	GetConfigFilePath() string
	GetUploadPath() string
	GetMaxUploadSize() int64
	GetMaxSynthesisFiles() int
	GetLogLevel() string
	GetGeminiModel() string
	GetLLMMaxRetries() int
	GetLLMRetryDelaySeconds() int
	GetLLMRequestTimeoutSeconds() int
	GetExtractionMinChars() int
}
