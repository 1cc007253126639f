package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"academic-assistant/internal/domain"
)

// credentialRecord is the on-disk shape of the config file.
type credentialRecord struct {
	APIKey string `json:"api_key"`
}

// FileCredentialRepository stores the API key as a single JSON record on disk.
type FileCredentialRepository struct {
	path   string
	logger domain.Logger
}

// NewFileCredentialRepository creates a repository backed by path.
func NewFileCredentialRepository(path string, logger domain.Logger) *FileCredentialRepository {
	return &FileCredentialRepository{
		path:   path,
		logger: logger,
	}
}

// Load returns the stored key, or "" when no file exists yet.
func (r *FileCredentialRepository) Load() (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read config file: %w", err)
	}

	var record credentialRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return "", fmt.Errorf("failed to parse config file: %w", err)
	}
	return record.APIKey, nil
}

// Save overwrites the record with apiKey. The write goes to a temporary
// file in the same directory which is then renamed over the target, so a
// failed write leaves the previous key intact.
func (r *FileCredentialRepository) Save(apiKey string) error {
	data, err := json.Marshal(credentialRecord{APIKey: apiKey})
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp config file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write config file: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to set config file permissions: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close config file: %w", err)
	}
	if err := os.Rename(tmpPath, r.path); err != nil {
		return fmt.Errorf("failed to replace config file: %w", err)
	}

	r.logger.Info("API key saved", "path", r.path)
	return nil
}
