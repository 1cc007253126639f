package handler

import (
	"net/http"

	"academic-assistant/internal/domain"
)

// HealthHandler reports liveness and whether an API key is configured.
type HealthHandler struct {
	credentials domain.CredentialService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(credentials domain.CredentialService) *HealthHandler {
	return &HealthHandler{credentials: credentials}
}

type healthResponse struct {
	Status           string `json:"status"`
	APIKeyConfigured bool   `json:"api_key_configured"`
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:           "ok",
		APIKeyConfigured: h.credentials.Status(r.Context()).IsSet,
	})
}
