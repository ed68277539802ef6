// Package config layers optional environment overrides on top of the
// stored settings. Everything here is best effort: the tool must come up
// from a bare double-click with no environment at all.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"idnt/internal/domain/models"
	"idnt/internal/domain/ports"
)

// envOverrides are the recognized environment knobs. They exist for
// scripted runs and for pointing a session at another table directory
// without touching settings.json.
type envOverrides struct {
	DataDir       string `env:"IDNT_DATA_DIR"`
	TableEncoding string `env:"IDNT_TABLE_ENCODING"`
	LogLevel      string `env:"IDNT_LOG_LEVEL"`
}

// Apply returns settings with any environment overrides applied. A .env
// file in the working directory is honored when present.
func Apply(settings models.Settings, log ports.Logger) models.Settings {
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded .env file")
	}

	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		log.Warn("Environment overrides ignored: %v", err)
		return settings
	}

	if overrides.DataDir != "" {
		settings.DataDir = overrides.DataDir
	}
	if overrides.TableEncoding != "" {
		settings.TableEncoding = overrides.TableEncoding
	}
	if overrides.LogLevel != "" {
		settings.LogLevel = overrides.LogLevel
	}

	return settings
}
