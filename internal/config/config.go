package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server settings. Values come from the environment,
// with an optional .env file for local development.
type Config struct {
	// ListenAddr is the address the API server binds to.
	ListenAddr string
	// MaxUploadMB caps the size of uploaded statement PDFs.
	MaxUploadMB int
}

// Load reads configuration from the environment. Missing values fall
// back to defaults; a missing .env file is not an error.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:  ":8080",
		MaxUploadMB: 32,
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("MAX_UPLOAD_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxUploadMB = n
		}
	}
	return cfg
}
