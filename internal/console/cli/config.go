package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string
	SessionDir string
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func LoadConfig() Config {
	// Missing .env is fine, the defaults below cover local use.
	_ = godotenv.Load()

	return Config{
		APIBaseURL: getEnv("JOBBOARD_API_URL", "http://localhost:8080"),
		SessionDir: getEnv("JOBBOARD_SESSION_DIR", defaultSessionDir()),
	}
}

func defaultSessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".jobboard"
	}
	return filepath.Join(home, ".jobboard")
}

func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("JOBBOARD_API_URL is required")
	}
	if c.SessionDir == "" {
		return fmt.Errorf("JOBBOARD_SESSION_DIR is required")
	}
	return nil
}
