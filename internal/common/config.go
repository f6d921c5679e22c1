package common

import (
	"os"
	"strconv"
	"time"

	"github.com/opennacc/declaration-extractor/constants"
)

// Config holds all application configuration. It is constructed once at
// startup and passed by reference; nothing reads ambient state after that.
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Enum     EnumConfig
	LLM      LLMConfig
	Extract  ExtractConfig
	Retry    RetryConfig
	Pipeline PipelineConfig
	Export   ExportConfig
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Driver           string // "postgres" or "sqlite"
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	GRPCAddr string
}

// EnumConfig locates the enum vocabulary CSVs.
type EnumConfig struct {
	Dir string
}

// LLMConfig holds reasoning-service configuration.
type LLMConfig struct {
	BaseURL     string
	Model       string
	APIKey      string
	Temperature float32
	Timeout     time.Duration
	MaxTokens   int
}

// ExtractConfig holds extraction behavior.
type ExtractConfig struct {
	Mode                constants.ExtractionMode
	ConfidenceThreshold float64
	MaxSourceChars      int // source text truncation bound per request
}

// RetryConfig bounds retries against the reasoning service.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

// PipelineConfig bounds concurrency.
type PipelineConfig struct {
	MaxConcurrentCalls int // single rate-limiting point against the service
	Workers            int // documents processed in parallel
	QueueSize          int
	DocumentTimeout    time.Duration
}

// ExportConfig holds output-generation configuration.
type ExportConfig struct {
	OutputDir string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:           getEnv("DB_DRIVER", "postgres"),
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Enum: EnumConfig{
			Dir: getEnv("ENUM_DIR", "./enum_type"),
		},
		LLM: LLMConfig{
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.1),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
			MaxTokens:   getEnvAsInt("OPENAI_MAX_TOKENS", 16000),
		},
		Extract: ExtractConfig{
			Mode:                constants.ExtractionMode(getEnv("EXTRACTION_MODE", string(constants.ModePerPage))),
			ConfidenceThreshold: getEnvAsFloat64("CONFIDENCE_THRESHOLD", 0.75),
			MaxSourceChars:      getEnvAsInt("MAX_SOURCE_CHARS", 100000),
		},
		Retry: RetryConfig{
			MaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
			BaseDelay:   getEnvAsDuration("RETRY_BASE_DELAY", 500*time.Millisecond),
			MaxDelay:    getEnvAsDuration("RETRY_MAX_DELAY", 10*time.Second),
			Jitter:      getEnvAsBool("RETRY_JITTER", true),
		},
		Pipeline: PipelineConfig{
			MaxConcurrentCalls: getEnvAsInt("MAX_CONCURRENT_CALLS", 5),
			Workers:            getEnvAsInt("PIPELINE_WORKERS", 4),
			QueueSize:          getEnvAsInt("PIPELINE_QUEUE_SIZE", 256),
			DocumentTimeout:    getEnvAsDuration("DOCUMENT_TIMEOUT", 5*time.Minute),
		},
		Export: ExportConfig{
			OutputDir: getEnv("OUTPUT_DIR", "./output"),
		},
	}
}

// Validate validates the loaded configuration.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrInvalidInput)
	}
	if c.Enum.Dir == "" {
		return NewAppError("CONFIG_ERROR", "ENUM_DIR is required", ErrInvalidInput)
	}
	if c.Extract.Mode != constants.ModeCombined && c.Extract.Mode != constants.ModePerPage {
		return NewAppError("CONFIG_ERROR", "EXTRACTION_MODE must be combined or per_page", ErrInvalidInput)
	}
	if c.Extract.ConfidenceThreshold < 0 || c.Extract.ConfidenceThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "CONFIDENCE_THRESHOLD must be in [0,1]", ErrInvalidInput)
	}
	if c.Retry.MaxAttempts < 1 {
		return NewAppError("CONFIG_ERROR", "RETRY_MAX_ATTEMPTS must be >= 1", ErrInvalidInput)
	}
	if c.Pipeline.MaxConcurrentCalls < 1 {
		return NewAppError("CONFIG_ERROR", "MAX_CONCURRENT_CALLS must be >= 1", ErrInvalidInput)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
