package config

import (
	"time"

	"academic-assistant/internal/domain"
	"academic-assistant/internal/repository"
	"academic-assistant/internal/service"
	"academic-assistant/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	ScratchStorage    *service.LocalScratchStorage
	CredentialService domain.CredentialService
	Generator         domain.Generator
	TextExtractor     domain.TextExtractor
	SynthesisService  domain.SynthesisService
	WritingService    domain.WritingService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	cfg := NewConfig()
	appLogger := logger.NewLogger(cfg.GetLogLevel())
	return NewContainerWith(cfg, appLogger, service.NewGeminiBackend(
		time.Duration(cfg.GetLLMRequestTimeoutSeconds())*time.Second,
	))
}

// NewContainerWith wires the services around an explicit config, logger and
// model backend.
func NewContainerWith(cfg domain.Config, appLogger domain.Logger, backend service.ModelBackend) *Container {
	// Repositories
	credentialRepo := repository.NewFileCredentialRepository(cfg.GetConfigFilePath(), appLogger)

	// Model client
	generator := service.NewAIService(
		backend,
		domain.DefaultGenerationSettings(cfg.GetGeminiModel()),
		domain.RetryPolicy{
			MaxRetries: cfg.GetLLMMaxRetries(),
			BaseDelay:  time.Duration(cfg.GetLLMRetryDelaySeconds()) * time.Second,
		},
		appLogger,
	)

	credentials := service.NewCredentialService(credentialRepo, generator, appLogger)

	// PDF pipeline
	storage := service.NewLocalScratchStorage(cfg.GetUploadPath(), appLogger)
	extractor := service.NewPDFProcessor(
		service.NewPDFCPUValidator(),
		service.NewFitzExtractor(),
		service.NewPlainTextExtractor(),
		cfg.GetExtractionMinChars(),
		appLogger,
	)

	return &Container{
		Config:            cfg,
		Logger:            appLogger,
		ScratchStorage:    storage,
		CredentialService: credentials,
		Generator:         generator,
		TextExtractor:     extractor,
		SynthesisService: service.NewSynthesisService(
			credentials, storage, extractor, generator, cfg.GetMaxSynthesisFiles(), appLogger,
		),
		WritingService: service.NewWritingAidService(credentials, generator, appLogger),
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}
