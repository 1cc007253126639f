package domain

import (
	"fmt"
	"strings"
)

// Page is the text one engine produced for a single page.
type Page struct {
	Number int    `json:"number"` // 1-based
	Text   string `json:"text"`
	Engine string `json:"engine"`
}

// Header returns the localized page marker placed before the page text.
func (p Page) Header() string {
	return fmt.Sprintf("\n--- Halaman %d ---\n", p.Number)
}

// ExtractedText is the page-annotated result of extracting one PDF.
type ExtractedText struct {
	Pages        []Page `json:"pages"`
	UsedFallback bool   `json:"used_fallback"`
}

// Append adds a non-empty page to the result.
func (e *ExtractedText) Append(page Page) {
	e.Pages = append(e.Pages, page)
}

// Content concatenates every page behind its header.
func (e *ExtractedText) Content() string {
	var sb strings.Builder
	for _, p := range e.Pages {
		sb.WriteString(p.Header())
		sb.WriteString(p.Text)
	}
	return sb.String()
}

// IsBlank reports whether the content is empty after trimming.
func (e *ExtractedText) IsBlank() bool {
	return strings.TrimSpace(e.Content()) == ""
}
