package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"idnt/internal/config"
	"idnt/internal/domain/models"
	"idnt/internal/domain/ports"
	"idnt/internal/infrastructure/logger"
	"idnt/internal/infrastructure/source"
	"idnt/internal/infrastructure/storage"
	"idnt/internal/service/naming"
	"idnt/internal/service/tables"
)

// Scripting entry point: composes one device name from flags and prints
// it to stdout. Labels are resolved against the same tables the GUI
// uses, so both tools agree on the codes.
func main() {
	os.Exit(run())
}

func run() int {
	// 1. Flags
	var (
		flagEntity     string
		flagDepartment string
		flagDivision   string
		flagType       string
		flagYear       string
		flagTechID     string
		flagSegments   bool
		flagVerbose    bool
	)
	flag.StringVar(&flagEntity, "entity", "", "entity label or code")
	flag.StringVar(&flagDepartment, "department", "", "department label or code")
	flag.StringVar(&flagDivision, "division", "", "division label or code")
	flag.StringVar(&flagType, "type", "", "device type label or code")
	flag.StringVar(&flagYear, "year", "", "deployment year, e.g. 2026")
	flag.StringVar(&flagTechID, "techid", "", "technician ID, appended verbatim")
	flag.BoolVar(&flagSegments, "segments", false, "print the segment breakdown to stderr")
	flag.BoolVar(&flagVerbose, "v", false, "log table loading to stderr")
	flag.Parse()

	var log ports.Logger = logger.NewNopLogger()
	if flagVerbose {
		log = logger.NewStdLogger("idnt: ")
	}

	// 2. Settings and environment overrides
	repo := storage.NewFileSettingsRepository(storage.SettingsFileName, log)
	settings := config.Apply(repo.Load(), log)

	// 3. Reference tables
	svc := tables.NewTableService(log,
		source.NewCSVSource(settings.DataDir, settings.TableEncoding, log),
		source.NewWorkbookSource(filepath.Join(settings.DataDir, source.WorkbookFileName), log),
	)
	loaded := svc.LoadAll()

	// 4. Compose and print
	sel := models.Selection{
		Entity:       loaded[models.CategoryEntity].Resolve(flagEntity),
		Department:   loaded[models.CategoryDepartment].Resolve(flagDepartment),
		Division:     loaded[models.CategoryDivision].Resolve(flagDivision),
		Type:         loaded[models.CategoryType].Resolve(flagType),
		DeployedYear: flagYear,
		TechID:       flagTechID,
	}
	composed := naming.NewNamingService().Compose(sel)

	if flagSegments {
		for _, segment := range composed.Segments {
			fmt.Fprintf(os.Stderr, "%-12s %s\n", segment.Name+":", segment.Value)
		}
	}

	if _, err := fmt.Fprintln(os.Stdout, composed.Name); err != nil {
		return 1
	}
	return 0
}
