package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"academic-assistant/internal/domain"
)

// Mock logger
type MockLogger struct {
	mu       sync.Mutex
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) record(line string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, line)
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.record("INFO: " + msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	if err == nil {
		m.record("ERROR: " + msg)
		return
	}
	m.record("ERROR: " + msg + " - " + err.Error())
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.record("DEBUG: " + msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.record("WARN: " + msg)
}

func (m *MockLogger) contains(substr string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, line := range m.messages {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// Mock page extractor
type MockPageExtractor struct {
	name  string
	pages []string
	err   error
	calls int
}

func (m *MockPageExtractor) Name() string { return m.name }

func (m *MockPageExtractor) ExtractPages(path string) ([]string, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.pages, nil
}

// Mock validator
type MockValidator struct {
	err error
}

func (m *MockValidator) Validate(path string) error { return m.err }

// Mock model backend
type MockBackend struct {
	mu        sync.Mutex
	responses []backendResponse
	calls     int
	prompts   []string
	keys      []string
	listErr   error
}

type backendResponse struct {
	text string
	err  error
}

func (m *MockBackend) GenerateContent(ctx context.Context, apiKey, prompt string, settings domain.GenerationSettings) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	m.prompts = append(m.prompts, prompt)
	m.keys = append(m.keys, apiKey)
	if len(m.responses) == 0 {
		return "generated", nil
	}
	resp := m.responses[0]
	if len(m.responses) > 1 {
		m.responses = m.responses[1:]
	}
	return resp.text, resp.err
}

func (m *MockBackend) ListModels(ctx context.Context, apiKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, apiKey)
	return m.listErr
}

// Mock generator
type MockGenerator struct {
	mu          sync.Mutex
	result      string
	err         error
	validateErr error
	prompts     []string
	validated   []string
}

func (m *MockGenerator) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	if m.result == "" {
		return "generated", nil
	}
	return m.result, nil
}

func (m *MockGenerator) ValidateKey(ctx context.Context, apiKey string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validated = append(m.validated, apiKey)
	return m.validateErr
}

// Mock credential repository
type MockCredentialRepository struct {
	key     string
	loadErr error
	saveErr error
	saves   int
}

func (m *MockCredentialRepository) Load() (string, error) {
	if m.loadErr != nil {
		return "", m.loadErr
	}
	return m.key, nil
}

func (m *MockCredentialRepository) Save(apiKey string) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.key = apiKey
	return nil
}

// Mock text extractor keyed by the content written to scratch storage.
type MockTextExtractor struct {
	mu    sync.Mutex
	calls int
	fail  map[string]bool
}

func (m *MockTextExtractor) ExtractText(ctx context.Context, path string) (*domain.ExtractedText, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	for marker := range m.fail {
		if strings.Contains(path, marker) {
			return nil, errors.New("extraction failed")
		}
	}
	result := &domain.ExtractedText{}
	result.Append(domain.Page{Number: 1, Text: "text of " + path, Engine: "mock"})
	return result, nil
}

// Mock scratch storage that keeps nothing on disk.
type MockScratchStorage struct {
	mu    sync.Mutex
	saved []string
	err   error
}

func (m *MockScratchStorage) Save(originalName string, r io.Reader) (*domain.ScratchFile, error) {
	if m.err != nil {
		return nil, m.err
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.saved = append(m.saved, originalName)
	m.mu.Unlock()
	return &domain.ScratchFile{Name: originalName, Path: "/nonexistent/" + originalName}, nil
}

// recordingSleep captures backoff waits without sleeping.
type recordingSleep struct {
	waits []time.Duration
}

func (r *recordingSleep) sleep(ctx context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)
	return ctx.Err()
}
