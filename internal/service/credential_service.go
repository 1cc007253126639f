package service

import (
	"context"
	"strings"

	"academic-assistant/internal/domain"
	apperrors "academic-assistant/pkg/errors"
)

// CredentialService manages the single persisted API key.
type CredentialService struct {
	repo      domain.CredentialRepository
	generator domain.Generator
	logger    domain.Logger
}

// NewCredentialService creates a credential service that validates keys through generator.
func NewCredentialService(repo domain.CredentialRepository, generator domain.Generator, logger domain.Logger) *CredentialService {
	return &CredentialService{
		repo:      repo,
		generator: generator,
		logger:    logger,
	}
}

// Status reports whether a key is stored. An unreadable record counts as unset.
func (s *CredentialService) Status(ctx context.Context) domain.CredentialStatus {
	key, err := s.repo.Load()
	if err != nil {
		s.logger.Error("Failed to load API key", err)
		return domain.CredentialStatus{IsSet: false}
	}
	return domain.CredentialStatus{IsSet: strings.TrimSpace(key) != ""}
}

// APIKey returns the stored key or a credential error when none is configured.
func (s *CredentialService) APIKey(ctx context.Context) (string, error) {
	key, err := s.repo.Load()
	if err != nil {
		s.logger.Error("Failed to load API key", err)
		key = ""
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", apperrors.NewCredentialError("API Key belum dikonfigurasi. Setup dulu di menu Settings", domain.ErrCredentialNotSet)
	}
	return key, nil
}

// SetAPIKey validates candidate against the provider and persists it on success.
func (s *CredentialService) SetAPIKey(ctx context.Context, candidate string) error {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" {
		return apperrors.NewValidationError("API Key tidak boleh kosong")
	}

	if err := s.generator.ValidateKey(ctx, candidate); err != nil {
		s.logger.Warn("API key rejected by provider", "error", err)
		return apperrors.NewCredentialError("API Key tidak valid: "+err.Error(), err)
	}

	if err := s.repo.Save(candidate); err != nil {
		s.logger.Error("Failed to save API key", err)
		return apperrors.NewPersistenceError("Gagal menyimpan API Key", err)
	}
	return nil
}
