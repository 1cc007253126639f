package handler

import (
	"net/http"

	"academic-assistant/internal/domain"
)

// WritingHandler handles the paraphrase and quote-check endpoints.
type WritingHandler struct {
	credentials domain.CredentialService
	writing     domain.WritingService
	logger      domain.Logger
}

// NewWritingHandler creates a new writing handler
func NewWritingHandler(credentials domain.CredentialService, writing domain.WritingService, logger domain.Logger) *WritingHandler {
	return &WritingHandler{
		credentials: credentials,
		writing:     writing,
		logger:      logger,
	}
}

// requireAPIKey reports a missing key before the request body is read.
func (h *WritingHandler) requireAPIKey(w http.ResponseWriter, r *http.Request) bool {
	if _, err := h.credentials.APIKey(r.Context()); err != nil {
		writeAppError(w, h.logger, err)
		return false
	}
	return true
}

// Paraphrase handles POST /api/paraphrase.
func (h *WritingHandler) Paraphrase(w http.ResponseWriter, r *http.Request) {
	if !h.requireAPIKey(w, r) {
		return
	}

	var req domain.WritingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.writing.Paraphrase(r.Context(), req)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// QuoteCheck handles POST /api/quote-check.
func (h *WritingHandler) QuoteCheck(w http.ResponseWriter, r *http.Request) {
	if !h.requireAPIKey(w, r) {
		return
	}

	var req domain.QuoteCheckRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.writing.CheckQuote(r.Context(), req)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
