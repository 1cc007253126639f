package domain

import "strings"

// StyleFormat selects which writing-aid prompt to render.
type StyleFormat string

const (
	StyleParaphrase StyleFormat = "paraphrase"
	StyleFormal     StyleFormat = "formal"
	StyleCitation   StyleFormat = "citation"
)

// DefaultCitationStyle is used when a citation request names none.
const DefaultCitationStyle = "APA"

// ParseStyleFormat maps the wire value to a known format. An empty value
// selects paraphrase.
func ParseStyleFormat(s string) (StyleFormat, bool) {
	switch StyleFormat(strings.TrimSpace(s)) {
	case "", StyleParaphrase:
		return StyleParaphrase, true
	case StyleFormal:
		return StyleFormal, true
	case StyleCitation:
		return StyleCitation, true
	default:
		return "", false
	}
}

// WritingRequest is the body of POST /api/paraphrase.
type WritingRequest struct {
	Text          string `json:"text"`
	StyleFormat   string `json:"style_format,omitempty"`
	CitationStyle string `json:"citation_style,omitempty"`
}

// QuoteCheckRequest is the body of POST /api/quote-check.
type QuoteCheckRequest struct {
	Quote  string `json:"quote"`
	Source string `json:"source"`
}

// TextResult wraps plain model output.
type TextResult struct {
	Result string `json:"result"`
}

// SynthesisResult is returned by POST /api/synthesis/upload.
type SynthesisResult struct {
	Result         string `json:"result"`
	Status         string `json:"status"`
	FilesProcessed int    `json:"files_processed"`
}

// CredentialStatus reports whether an API key is stored, never the key itself.
type CredentialStatus struct {
	IsSet bool `json:"is_set"`
}
