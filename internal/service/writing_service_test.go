package service

import (
	"context"
	"strings"
	"testing"

	"academic-assistant/internal/domain"
	apperrors "academic-assistant/pkg/errors"
)

func newWritingFixture(key string) (*WritingAidService, *MockGenerator) {
	gen := &MockGenerator{result: "hasil"}
	logger := NewMockLogger()
	creds := NewCredentialService(&MockCredentialRepository{key: key}, gen, logger)
	return NewWritingAidService(creds, gen, logger), gen
}

func TestWritingAidService_Paraphrase(t *testing.T) {
	tests := []struct {
		name       string
		req        domain.WritingRequest
		wantPrompt string
	}{
		{
			name:       "default is paraphrase",
			req:        domain.WritingRequest{Text: "kalimat asli"},
			wantPrompt: "Parafrase teks berikut",
		},
		{
			name:       "formal",
			req:        domain.WritingRequest{Text: "kalimat asli", StyleFormat: "formal"},
			wantPrompt: "gaya penulisan formal akademis",
		},
		{
			name:       "citation default style",
			req:        domain.WritingRequest{Text: "kalimat asli", StyleFormat: "citation"},
			wantPrompt: "dalam gaya APA",
		},
		{
			name:       "citation custom style",
			req:        domain.WritingRequest{Text: "kalimat asli", StyleFormat: "citation", CitationStyle: "Harvard"},
			wantPrompt: "daftar pustaka Harvard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, gen := newWritingFixture("key")

			result, err := svc.Paraphrase(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.Result != "hasil" {
				t.Fatalf("unexpected result %q", result.Result)
			}
			if !strings.Contains(gen.prompts[0], tt.wantPrompt) {
				t.Fatalf("expected prompt to contain %q, got %q", tt.wantPrompt, gen.prompts[0])
			}
			if !strings.Contains(gen.prompts[0], `"kalimat asli"`) {
				t.Fatal("expected text to be quoted in the prompt")
			}
		})
	}
}

func TestWritingAidService_ParaphraseValidation(t *testing.T) {
	svc, gen := newWritingFixture("key")

	_, err := svc.Paraphrase(context.Background(), domain.WritingRequest{Text: "  "})
	if apperrors.PublicMessage(err) != "Teks harus diisi" {
		t.Fatalf("unexpected error %v", err)
	}

	_, err = svc.Paraphrase(context.Background(), domain.WritingRequest{Text: "x", StyleFormat: "poetic"})
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Fatalf("expected validation error for unknown style, got %v", err)
	}
	if len(gen.prompts) != 0 {
		t.Fatal("expected model not to be called")
	}
}

func TestWritingAidService_ParaphraseNoCredential(t *testing.T) {
	svc, gen := newWritingFixture("")

	_, err := svc.Paraphrase(context.Background(), domain.WritingRequest{Text: "abc"})
	if !apperrors.IsType(err, apperrors.ErrorTypeCredential) {
		t.Fatalf("expected credential error, got %v", err)
	}
	if len(gen.prompts) != 0 {
		t.Fatal("expected model not to be called")
	}
}

func TestWritingAidService_CheckQuote(t *testing.T) {
	svc, gen := newWritingFixture("key")

	result, err := svc.CheckQuote(context.Background(), domain.QuoteCheckRequest{Quote: "Ilmu adalah cahaya", Source: "Smith (2020)"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Result != "hasil" {
		t.Fatalf("unexpected result %q", result.Result)
	}
	prompt := gen.prompts[0]
	if !strings.Contains(prompt, `KUTIPAN: "Ilmu adalah cahaya"`) || !strings.Contains(prompt, "SUMBER: Smith (2020)") {
		t.Fatalf("unexpected prompt %q", prompt)
	}
}

func TestWritingAidService_CheckQuoteValidation(t *testing.T) {
	tests := []domain.QuoteCheckRequest{
		{Quote: "", Source: "Smith"},
		{Quote: "quote", Source: ""},
		{Quote: " ", Source: " "},
	}

	for _, req := range tests {
		svc, gen := newWritingFixture("key")
		_, err := svc.CheckQuote(context.Background(), req)
		if apperrors.PublicMessage(err) != "Kutipan dan sumber harus diisi" {
			t.Fatalf("unexpected error for %+v: %v", req, err)
		}
		if len(gen.prompts) != 0 {
			t.Fatal("expected model not to be called")
		}
	}
}
