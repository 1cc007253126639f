package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"academic-assistant/internal/domain"
	apperrors "academic-assistant/pkg/errors"
)

const invalidBodyMessage = "Format request tidak valid"

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps err onto its status code and public message. Errors
// outside the taxonomy become a 500 carrying their text.
func writeAppError(w http.ResponseWriter, logger domain.Logger, err error) {
	status := apperrors.GetStatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", err, "status", status)
	} else {
		logger.Warn("Request rejected", "status", status, "error", err)
	}
	writeError(w, status, apperrors.PublicMessage(err))
}

// decodeJSON reads a JSON request body into dst. Oversized bodies are
// reported as 413, anything else unparseable as 400.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, requestTooLargeMessage)
			return false
		}
		writeError(w, http.StatusBadRequest, invalidBodyMessage)
		return false
	}
	return true
}
