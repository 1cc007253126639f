package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "academic-assistant/pkg/errors"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusTeapot, "nope")

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"nope"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteError_EscapesMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusBadRequest, `File "a.txt" harus PDF`)

	if strings.TrimSpace(rr.Body.String()) != `{"error":"File \"a.txt\" harus PDF"}` {
		t.Fatalf("expected quotes to be escaped, got %s", rr.Body.String())
	}
}

func TestWriteAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"validation", apperrors.NewValidationError("Teks harus diisi"), http.StatusBadRequest, `{"error":"Teks harus diisi"}`},
		{"credential", apperrors.NewCredentialError("API Key tidak valid: x", nil), http.StatusBadRequest, `{"error":"API Key tidak valid: x"}`},
		{"rate limit", apperrors.NewRateLimitError("limit", nil), http.StatusInternalServerError, `{"error":"limit"}`},
		{"untyped", errors.New("boom"), http.StatusInternalServerError, `{"error":"boom"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			writeAppError(rr, NewMockHandlerLogger(), tt.err)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
			if strings.TrimSpace(rr.Body.String()) != tt.wantBody {
				t.Fatalf("unexpected body: %s", rr.Body.String())
			}
		})
	}
}
