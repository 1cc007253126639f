package service

import (
	"fmt"

	"academic-assistant/internal/domain"

	"github.com/gen2brain/go-fitz"
	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// FitzExtractor is the primary engine, backed by MuPDF.
type FitzExtractor struct{}

// NewFitzExtractor creates the MuPDF-backed engine.
func NewFitzExtractor() *FitzExtractor {
	return &FitzExtractor{}
}

// Name implements domain.PageExtractor.
func (e *FitzExtractor) Name() string { return "fitz" }

// ExtractPages implements domain.PageExtractor. A page that fails to
// extract is returned as "" so one bad page does not sink the document.
func (e *FitzExtractor) ExtractPages(path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	pages := make([]string, doc.NumPage())
	for i := range pages {
		text, err := doc.Text(i)
		if err != nil {
			continue
		}
		pages[i] = text
	}
	return pages, nil
}

// PlainTextExtractor is the fallback engine, a pure-Go content stream reader.
type PlainTextExtractor struct{}

// NewPlainTextExtractor creates the pure-Go fallback engine.
func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// Name implements domain.PageExtractor.
func (e *PlainTextExtractor) Name() string { return "plaintext" }

// ExtractPages implements domain.PageExtractor.
func (e *PlainTextExtractor) ExtractPages(path string) (pages []string, err error) {
	// The parser panics on some malformed xref tables.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	total := r.NumPage()
	pages = make([]string, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		text, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages[i-1] = text
	}
	return pages, nil
}

// PDFCPUValidator checks document structure before any text engine runs.
type PDFCPUValidator struct {
	conf *model.Configuration
}

// NewPDFCPUValidator creates a validator in relaxed mode, which tolerates
// the PDF format violations common in published journals.
func NewPDFCPUValidator() *PDFCPUValidator {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFCPUValidator{conf: conf}
}

// Validate implements domain.PDFValidator.
func (v *PDFCPUValidator) Validate(path string) error {
	if err := api.ValidateFile(path, v.conf); err != nil {
		return fmt.Errorf("invalid PDF: %w", err)
	}
	return nil
}

var (
	_ domain.PageExtractor = (*FitzExtractor)(nil)
	_ domain.PageExtractor = (*PlainTextExtractor)(nil)
	_ domain.PDFValidator  = (*PDFCPUValidator)(nil)
)
