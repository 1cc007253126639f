package config

import (
	"os"
	"strconv"

	"academic-assistant/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerHost               string
	ServerPort               string
	ConfigFilePath           string
	UploadPath               string
	MaxUploadSize            int64
	MaxSynthesisFiles        int
	LogLevel                 string
	GeminiModel              string
	LLMMaxRetries            int
	LLMRetryDelaySeconds     int
	LLMRequestTimeoutSeconds int
	ExtractionMinChars       int
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		ServerHost: getEnvOrDefault("HOST", "localhost"),
		// PORT wins over SERVER_PORT so PaaS-provided ports are honored.
		ServerPort:               getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "5000")),
		ConfigFilePath:           getEnvOrDefault("CONFIG_FILE", "config.json"),
		UploadPath:               getEnvOrDefault("UPLOAD_PATH", "uploads"),
		MaxUploadSize:            getEnvInt64OrDefault("MAX_UPLOAD_SIZE", 50*1024*1024), // 50MB default
		MaxSynthesisFiles:        getEnvIntOrDefault("MAX_SYNTHESIS_FILES", 5),
		LogLevel:                 getEnvOrDefault("LOG_LEVEL", "info"),
		GeminiModel:              getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		LLMMaxRetries:            getEnvIntOrDefault("LLM_MAX_RETRIES", 3),
		LLMRetryDelaySeconds:     getEnvIntOrDefault("LLM_RETRY_DELAY_SECONDS", 5),
		LLMRequestTimeoutSeconds: getEnvIntOrDefault("LLM_REQUEST_TIMEOUT_SECONDS", 120),
		ExtractionMinChars:       getEnvIntOrDefault("EXTRACTION_MIN_CHARS", 100),
	}
}

// GetServerHost returns the interface the server binds to
func (c *AppConfig) GetServerHost() string {
	return c.ServerHost
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetConfigFilePath returns the path of the persisted API key record
func (c *AppConfig) GetConfigFilePath() string {
	return c.ConfigFilePath
}

// GetUploadPath returns the scratch directory for uploads
func (c *AppConfig) GetUploadPath() string {
	return c.UploadPath
}

// GetMaxUploadSize returns the request body ceiling in bytes
func (c *AppConfig) GetMaxUploadSize() int64 {
	return c.MaxUploadSize
}

// GetMaxSynthesisFiles returns how many PDFs one synthesis call accepts
func (c *AppConfig) GetMaxSynthesisFiles() int {
	return c.MaxSynthesisFiles
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

// GetGeminiModel returns the generation model identifier
func (c *AppConfig) GetGeminiModel() string {
	return c.GeminiModel
}

// GetLLMMaxRetries returns the total attempts allowed on rate limiting
func (c *AppConfig) GetLLMMaxRetries() int {
	return c.LLMMaxRetries
}

// GetLLMRetryDelaySeconds returns the base delay of the linear backoff
func (c *AppConfig) GetLLMRetryDelaySeconds() int {
	return c.LLMRetryDelaySeconds
}

// GetLLMRequestTimeoutSeconds returns the per-attempt HTTP timeout
func (c *AppConfig) GetLLMRequestTimeoutSeconds() int {
	return c.LLMRequestTimeoutSeconds
}

// GetExtractionMinChars returns the primary-engine yield below which the fallback engine runs
func (c *AppConfig) GetExtractionMinChars() int {
	return c.ExtractionMinChars
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}
