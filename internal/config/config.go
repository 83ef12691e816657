package config

import (
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	// Preferences
	ProgressSize int

	// Paths
	ConfigDir    string
	ProgressFile string
	QuestionsDir string

	// AI fallback
	GeminiAPIKey string
	GeminiModel  string
}

// NewConfig creates a new configuration with defaults
func NewConfig() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(homeDir, ".kubedrill")

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, err
	}

	questionsDir := os.Getenv("KUBEDRILL_QUESTIONS")
	if questionsDir == "" {
		questionsDir = filepath.Join(configDir, "questions")
	}

	return &Config{
		ProgressSize: 1000,
		ConfigDir:    configDir,
		ProgressFile: filepath.Join(configDir, "progress.json"),
		QuestionsDir: questionsDir,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("KUBEDRILL_MODEL"),
	}, nil
}
