package handler

import (
	"net/http"

	"academic-assistant/internal/domain"
)

// ConfigHandler exposes the API key settings.
type ConfigHandler struct {
	credentials domain.CredentialService
	logger      domain.Logger
}

// NewConfigHandler creates a new config handler
func NewConfigHandler(credentials domain.CredentialService, logger domain.Logger) *ConfigHandler {
	return &ConfigHandler{
		credentials: credentials,
		logger:      logger,
	}
}

type setAPIKeyRequest struct {
	APIKey string `json:"api_key"`
}

// GetAPIKeyStatus reports whether a key is configured without revealing it.
func (h *ConfigHandler) GetAPIKeyStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.credentials.Status(r.Context()))
}

// SetAPIKey validates and stores a new key.
func (h *ConfigHandler) SetAPIKey(w http.ResponseWriter, r *http.Request) {
	var req setAPIKeyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.credentials.SetAPIKey(r.Context(), req.APIKey); err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	h.logger.Info("API key updated")
	writeJSON(w, http.StatusOK, map[string]string{"message": "API Key berhasil disimpan"})
}
