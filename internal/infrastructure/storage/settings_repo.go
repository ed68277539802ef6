package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"idnt/internal/domain/models"
	"idnt/internal/domain/ports"
)

// SettingsFileName is the store kept beside the executable.
const SettingsFileName = "settings.json"

// FileSettingsRepository implements ports.SettingsRepository over a
// single JSON file. Loading merges the file over the compiled defaults,
// so a missing file, an older file without newer keys, or a corrupt file
// all still produce something the tool can start with.
type FileSettingsRepository struct {
	mu       sync.Mutex
	filePath string
	log      ports.Logger
}

// NewFileSettingsRepository creates a repository persisting to filePath.
func NewFileSettingsRepository(filePath string, log ports.Logger) ports.SettingsRepository {
	return &FileSettingsRepository{filePath: filePath, log: log}
}

// Load reads the stored settings merged over DefaultSettings. It never
// fails; problems are logged and degrade to the defaults.
func (r *FileSettingsRepository) Load() models.Settings {
	r.mu.Lock()
	defer r.mu.Unlock()

	settings := models.DefaultSettings()

	data, err := os.ReadFile(r.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			r.log.Warn("Settings file unreadable, using defaults: %v", err)
		}
		return settings
	}

	// Unmarshal on top of the defaults: keys absent from the file keep
	// their default values.
	if err := json.Unmarshal(data, &settings); err != nil {
		r.log.Warn("Settings file unparsable, using defaults: %v", err)
		return models.DefaultSettings()
	}

	return settings
}

// Save writes the settings as pretty-printed JSON, creating the parent
// directory when needed.
func (r *FileSettingsRepository) Save(settings models.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(r.filePath), 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}

	if err := os.WriteFile(r.filePath, data, 0644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}
