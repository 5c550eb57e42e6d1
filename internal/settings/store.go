package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"notes-app/internal/logger"
)

const (
	FileName  = ".notes_app_settings.json"
	fileMode  = 0o644
	component = "SettingsStore"
)

// DefaultPath is the per-user settings file in the home directory. When no
// home directory is known the user config directory is used, then the
// working directory.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, FileName)
	}
	if dir, err := os.UserConfigDir(); err == nil && dir != "" {
		return filepath.Join(dir, FileName)
	}
	return FileName
}

// Store reads and writes the settings file.
type Store struct {
	path   string
	logger logger.Logger
}

func NewStore(path string, log logger.Logger) *Store {
	if path == "" {
		path = DefaultPath()
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Store{path: path, logger: log}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the persisted settings. A missing file yields the defaults
// silently; an unreadable or malformed one yields the defaults and one
// warning. Load never fails.
func (s *Store) Load() Settings {
	settings, err := s.read()
	if err == nil {
		s.logger.Debug(component, "settings loaded", map[string]interface{}{
			"path":      s.path,
			"dark_mode": settings.DarkMode,
		})
		return settings
	}

	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug(component, "no settings file, using defaults", map[string]interface{}{
			"path": s.path,
		})
		return Default()
	}

	s.logger.Warning(component, "failed to load settings, using defaults", map[string]interface{}{
		"path":  s.path,
		"error": err.Error(),
	})
	return Default()
}

func (s *Store) read() (Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Settings{}, err
		}
		return Settings{}, &ParseError{Path: s.path, Err: err}
	}

	settings := Default()
	if err := json.Unmarshal(data, &settings); err != nil {
		return Settings{}, &ParseError{Path: s.path, Err: err}
	}
	return settings, nil
}

// Save rewrites the whole settings file.
func (s *Store) Save(settings Settings) error {
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return &WriteError{Path: s.path, Err: fmt.Errorf("failed to encode settings: %w", err)}
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, fileMode); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	s.logger.Debug(component, "settings saved", map[string]interface{}{
		"path":      s.path,
		"dark_mode": settings.DarkMode,
	})
	return nil
}
