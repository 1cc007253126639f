package handler

import (
	"context"
	"io"

	"academic-assistant/internal/domain"
	apperrors "academic-assistant/pkg/errors"
)

type mockCredentialService struct {
	key     string
	setErr  error
	setKeys []string
}

func (m *mockCredentialService) Status(ctx context.Context) domain.CredentialStatus {
	return domain.CredentialStatus{IsSet: m.key != ""}
}

func (m *mockCredentialService) APIKey(ctx context.Context) (string, error) {
	if m.key == "" {
		return "", apperrors.NewCredentialError("API Key belum dikonfigurasi. Setup dulu di menu Settings", domain.ErrCredentialNotSet)
	}
	return m.key, nil
}

func (m *mockCredentialService) SetAPIKey(ctx context.Context, candidate string) error {
	m.setKeys = append(m.setKeys, candidate)
	if m.setErr != nil {
		return m.setErr
	}
	m.key = candidate
	return nil
}

type uploadedCopy struct {
	name    string
	content string
}

type mockSynthesisService struct {
	result   *domain.SynthesisResult
	err      error
	called   bool
	received []uploadedCopy
}

func (m *mockSynthesisService) Synthesize(ctx context.Context, files []domain.UploadedFile) (*domain.SynthesisResult, error) {
	m.called = true
	for _, f := range files {
		data, err := io.ReadAll(f.Content)
		if err != nil {
			return nil, err
		}
		m.received = append(m.received, uploadedCopy{name: f.Filename, content: string(data)})
	}
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.SynthesisResult{Result: "ringkasan", Status: "success", FilesProcessed: len(files)}, nil
}

type mockWritingService struct {
	err        error
	lastWrite  domain.WritingRequest
	lastQuote  domain.QuoteCheckRequest
	paraCalls  int
	quoteCalls int
}

func (m *mockWritingService) Paraphrase(ctx context.Context, req domain.WritingRequest) (*domain.TextResult, error) {
	m.paraCalls++
	m.lastWrite = req
	if m.err != nil {
		return nil, m.err
	}
	return &domain.TextResult{Result: "parafrase"}, nil
}

func (m *mockWritingService) CheckQuote(ctx context.Context, req domain.QuoteCheckRequest) (*domain.TextResult, error) {
	m.quoteCalls++
	m.lastQuote = req
	if m.err != nil {
		return nil, m.err
	}
	return &domain.TextResult{Result: "analisis"}, nil
}

type testServer struct {
	creds     *mockCredentialService
	synthesis *mockSynthesisService
	writing   *mockWritingService
}

func newTestHandlers(key string) (Handlers, *testServer) {
	ts := &testServer{
		creds:     &mockCredentialService{key: key},
		synthesis: &mockSynthesisService{},
		writing:   &mockWritingService{},
	}
	logger := NewMockHandlerLogger()
	return Handlers{
		Config:    NewConfigHandler(ts.creds, logger),
		Synthesis: NewSynthesisHandler(ts.creds, ts.synthesis, logger),
		Writing:   NewWritingHandler(ts.creds, ts.writing, logger),
		Health:    NewHealthHandler(ts.creds),
	}, ts
}
