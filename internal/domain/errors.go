package domain

import "errors"

// Domain errors
var (
	ErrCredentialNotSet     = errors.New("api key not configured")
	ErrNoFiles              = errors.New("no files uploaded")
	ErrTooManyFiles         = errors.New("too many files")
	ErrUnsupportedFileType  = errors.New("unsupported file type")
	ErrNoExtractableContent = errors.New("no extractable content")
	ErrEmptyExtraction      = errors.New("pdf yielded no text")
	ErrUnknownStyleFormat   = errors.New("unknown style format")
	ErrEmptyModelResponse   = errors.New("empty response from model")
)
