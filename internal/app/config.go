package app

import (
	"os"
	"strings"

	"notes-app/internal/logger"
	"notes-app/internal/settings"
)

const (
	AppName    = "Notes App"
	AppID      = "com.notesapp.editor"
	AppVersion = "1.0.0"
)

type Config struct {
	AppID        string
	LogLevel     logger.LogLevel
	JSONLogs     bool
	SettingsPath string
}

func DefaultConfig() Config {
	return Config{
		AppID:        AppID,
		LogLevel:     logger.InfoLevel,
		SettingsPath: settings.DefaultPath(),
	}
}

// ConfigFromEnv reads LOG_LEVEL, DEBUG, NOTES_LOG_JSON and NOTES_SETTINGS.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = logger.ParseLevel(level)
	} else if os.Getenv("DEBUG") == "1" {
		cfg.LogLevel = logger.DebugLevel
	}

	if strings.EqualFold(os.Getenv("NOTES_LOG_JSON"), "true") {
		cfg.JSONLogs = true
	}

	if path := os.Getenv("NOTES_SETTINGS"); path != "" {
		cfg.SettingsPath = path
	}

	return cfg
}
