package ports

import "idnt/internal/domain/models"

// TableSource supplies reference tables from one kind of backing store
// (CSV files, a workbook, compiled-in defaults). Sources are tried in
// priority order; an error or an empty table means "ask the next source".
type TableSource interface {
	// Name identifies the source in logs, e.g. "csv" or "workbook"
	Name() string

	// Load reads the table for one category. A nil error with an empty
	// table is valid and treated the same as a failure by the caller.
	Load(category models.Category) (models.CodeTable, error)
}
