package app

import (
	"path/filepath"
	"sync"

	"idnt/internal/domain/models"
	"idnt/internal/domain/ports"
	"idnt/internal/infrastructure/labelprint"
	"idnt/internal/infrastructure/source"
	"idnt/internal/service/tables"
)

// App carries the state with application lifetime: the settings store,
// the settings currently in effect and the label printer built from
// them. The settings dialog swaps printer and settings at runtime, so
// access is guarded.
type App struct {
	Repo ports.SettingsRepository

	// OnApply, when set, runs after new settings are installed. Wired
	// up in main to retune the logger level.
	OnApply func(models.Settings)

	log ports.Logger

	mu       sync.RWMutex
	settings models.Settings
	printer  ports.LabelPrinter
}

// NewApp creates the application state and installs the initial
// settings (already layered with any environment overrides).
func NewApp(repo ports.SettingsRepository, settings models.Settings, log ports.Logger) *App {
	a := &App{Repo: repo, log: log}
	a.Apply(settings)
	return a
}

// Current returns the settings in effect (thread safe).
func (a *App) Current() models.Settings {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.settings
}

// Apply installs new settings and rebuilds the label printer bound to
// them (thread safe).
func (a *App) Apply(settings models.Settings) {
	a.mu.Lock()
	a.settings = settings
	a.printer = labelprint.NewSerialLabelPrinter(settings.PrinterPort, settings.PrinterBaud, a.log)
	a.mu.Unlock()

	if a.OnApply != nil {
		a.OnApply(settings)
	}
}

// SetPrinter installs the active label printer (thread safe).
func (a *App) SetPrinter(p ports.LabelPrinter) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.printer = p
}

// Printer returns the active label printer (thread safe).
func (a *App) Printer() ports.LabelPrinter {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.printer
}

// NewTableService builds the reference table source chain for the
// current settings: CSV files first, then the workbook, then the
// built-in defaults.
func (a *App) NewTableService() *tables.TableService {
	s := a.Current()
	return tables.NewTableService(a.log,
		source.NewCSVSource(s.DataDir, s.TableEncoding, a.log),
		source.NewWorkbookSource(filepath.Join(s.DataDir, source.WorkbookFileName), a.log),
	)
}
