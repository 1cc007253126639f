package domain

import (
	"testing"
	"time"
)

func TestParseStyleFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   StyleFormat
		wantOK bool
	}{
		{in: "", want: StyleParaphrase, wantOK: true},
		{in: "paraphrase", want: StyleParaphrase, wantOK: true},
		{in: "formal", want: StyleFormal, wantOK: true},
		{in: " citation ", want: StyleCitation, wantOK: true},
		{in: "summary", wantOK: false},
		{in: "FORMAL", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseStyleFormat(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRetryPolicy_Wait(t *testing.T) {
	p := RetryPolicy{MaxRetries: 3, BaseDelay: 5 * time.Second}
	if p.Wait(1) != 5*time.Second {
		t.Fatalf("expected 5s after first attempt, got %v", p.Wait(1))
	}
	if p.Wait(2) != 10*time.Second {
		t.Fatalf("expected 10s after second attempt, got %v", p.Wait(2))
	}
}

func TestDefaultGenerationSettings(t *testing.T) {
	s := DefaultGenerationSettings("")
	if s.Model != "gemini-2.0-flash" {
		t.Fatalf("expected default model, got %s", s.Model)
	}
	if s.Temperature != 0.5 || s.TopK != 30 || s.TopP != 0.9 || s.MaxOutputTokens != 2000 {
		t.Fatalf("unexpected sampling settings: %+v", s)
	}
	if DefaultGenerationSettings("gemini-x").Model != "gemini-x" {
		t.Fatalf("expected explicit model to be kept")
	}
}
