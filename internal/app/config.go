package app

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvDebug        = "TRAVELEASE_DEBUG"
	EnvStoragePath  = "TRAVELEASE_STORAGE_PATH"
	EnvImageTimeout = "TRAVELEASE_IMAGE_TIMEOUT"
	EnvLogDir       = "TRAVELEASE_LOG_DIR"
)

// DefaultImageTimeout bounds a single place photo download.
const DefaultImageTimeout = 10 * time.Second

// Config holds application-wide configuration.
type Config struct {
	// Debug enables debug logging and additional diagnostics
	Debug bool

	// StoragePath is the directory where itineraries are stored
	StoragePath string

	// LogDir overrides the platform log directory
	LogDir string

	// ImageTimeout bounds each place photo download
	ImageTimeout time.Duration
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:        false,
		StoragePath:  "", // Will use DefaultStoragePath() from storage package
		ImageTimeout: DefaultImageTimeout,
	}
}

// ConfigFromEnv creates a configuration from environment variables. A .env
// file in the working directory is loaded first if present; variables
// already set in the environment take precedence over it. Invalid values
// are ignored and leave the default in place.
func ConfigFromEnv() *Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if debugStr := os.Getenv(EnvDebug); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		}
	}

	if storagePath := os.Getenv(EnvStoragePath); storagePath != "" {
		cfg.StoragePath = storagePath
	}

	if logDir := os.Getenv(EnvLogDir); logDir != "" {
		cfg.LogDir = logDir
	}

	if timeoutStr := os.Getenv(EnvImageTimeout); timeoutStr != "" {
		if timeout, err := time.ParseDuration(timeoutStr); err == nil && timeout > 0 {
			cfg.ImageTimeout = timeout
		}
	}

	return cfg
}
