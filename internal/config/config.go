// Package config holds the portal's runtime configuration and the role
// policy tables shared by the directory and moderation services.
package config

import "os"

// Config is the process-wide runtime configuration, read from the
// environment once at startup.
type Config struct {
	// Port the HTTP server listens on.
	Port string
	// DataDir holds the six sqlite partition files.
	DataDir string
	// UploadDir holds uploaded media, served back under /uploads.
	UploadDir string
	// RedisAddr enables the approved-faults cache when non-empty.
	RedisAddr string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		Port:      getenv("PORT", "5000"),
		DataDir:   getenv("DATA_DIR", "./data"),
		UploadDir: getenv("UPLOAD_DIR", "./uploads"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		LogLevel:  getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
