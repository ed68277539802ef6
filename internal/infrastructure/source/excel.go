package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"idnt/internal/domain/models"
	"idnt/internal/domain/ports"
)

// WorkbookFileName is the workbook looked for in the data directory.
const WorkbookFileName = "codes.xlsx"

// WorkbookSource reads reference tables from a single Excel workbook
// with one sheet per category, named after the category title. The cell
// contract matches the CSV files: header row, then label and code in the
// first two columns. Lets an organization maintain all four tables in
// one file.
type WorkbookSource struct {
	path string
	log  ports.Logger
}

// NewWorkbookSource creates a WorkbookSource for the workbook at path.
func NewWorkbookSource(path string, log ports.Logger) *WorkbookSource {
	return &WorkbookSource{path: path, log: log}
}

// Name identifies the source in logs.
func (s *WorkbookSource) Name() string { return "workbook" }

// Load reads the category's sheet. A missing workbook or missing sheet
// is an error for the caller to downgrade.
func (s *WorkbookSource) Load(category models.Category) (models.CodeTable, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	sheet := category.Title()
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("sheet %q in %s: %w", sheet, s.path, err)
	}

	origin := fmt.Sprintf("%s!%s", s.path, sheet)
	return entriesFromRows(rows, origin, s.log), nil
}
