package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"academic-assistant/internal/domain"

	"github.com/google/uuid"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SanitizeFilename strips directory components and characters that are not
// safe in a file name, the way upload frameworks normalize client names.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.TrimSpace(name))
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.Trim(name, "._")
	if name == "" {
		return "document.pdf"
	}
	return name
}

// LocalScratchStorage writes uploads into a directory under unique names.
type LocalScratchStorage struct {
	dir    string
	logger domain.Logger
}

// NewLocalScratchStorage creates scratch storage rooted at dir.
func NewLocalScratchStorage(dir string, logger domain.Logger) *LocalScratchStorage {
	return &LocalScratchStorage{
		dir:    dir,
		logger: logger,
	}
}

// EnsureDir creates the scratch directory when it does not exist.
func (s *LocalScratchStorage) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	return nil
}

// Save copies r to <dir>/<uuid>-<sanitized name>. Two requests uploading the
// same file name never share a path.
func (s *LocalScratchStorage) Save(originalName string, r io.Reader) (*domain.ScratchFile, error) {
	if err := s.EnsureDir(); err != nil {
		return nil, err
	}

	name := SanitizeFilename(originalName)
	path := filepath.Join(s.dir, uuid.NewString()+"-"+name)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}

	size, err := io.Copy(f, r)
	closeErr := f.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write scratch file: %w", err)
	}

	s.logger.Debug("Saved scratch file", "file", name, "path", path, "bytes", size)
	return &domain.ScratchFile{
		Name: name,
		Path: path,
		Size: size,
	}, nil
}
