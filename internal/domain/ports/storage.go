package ports

import "idnt/internal/domain/models"

// SettingsRepository persists user preferences between runs.
// The implementation lives in the infrastructure layer.
type SettingsRepository interface {
	// Load reads the stored settings. It never fails: a missing,
	// unreadable or partial store yields the defaults (merged over
	// field by field), so startup cannot be blocked by a bad file.
	Load() models.Settings

	// Save writes the settings to the store
	Save(settings models.Settings) error
}
