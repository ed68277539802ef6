//go:build windows

package main

import (
	"idnt/internal/app"
	"idnt/internal/config"
	"idnt/internal/domain/models"
	"idnt/internal/domain/ports"
	"idnt/internal/infrastructure/logger"
	"idnt/internal/infrastructure/storage"
	"idnt/internal/service/naming"
	"idnt/internal/ui"
	"idnt/internal/ui/controller"
	"idnt/internal/ui/viewmodel"
)

func main() {
	// 1. Initialize logger (infrastructure)
	var log ports.Logger
	zlog, zerr := logger.NewZapLogger("info")
	if zerr != nil {
		log = logger.NewStdLogger("IDNT: ")
		log.Warn("Structured logger unavailable, falling back to stderr: %v", zerr)
	} else {
		log = zlog
	}
	log.Info("Application starting")

	// 2. Load settings and apply environment overrides
	repo := storage.NewFileSettingsRepository(storage.SettingsFileName, log)
	settings := config.Apply(repo.Load(), log)
	if zerr == nil {
		zlog.SetLevel(settings.LogLevel)
	}

	// 3. Create the application core (owns settings and the printer)
	a := app.NewApp(repo, settings, log)
	if zerr == nil {
		a.OnApply = func(s models.Settings) {
			zlog.SetLevel(s.LogLevel)
		}
	}

	// 4. Create the naming service, view model and controller
	namingSvc := naming.NewNamingService()
	mainVM := viewmodel.NewMainViewModel()
	mainCtrl := controller.NewMainController(mainVM, namingSvc, a, log)

	// 5. Run the GUI application
	log.Info("Initialization complete, starting GUI")
	if err := ui.Run(mainCtrl); err != nil {
		log.Fatal("GUI error: %v", err)
	}
}
