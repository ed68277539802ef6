package controller

import (
	"fmt"
	"os"
	"strings"

	"idnt/internal/app"
	"idnt/internal/domain/models"
	"idnt/internal/domain/ports"
	"idnt/internal/service/naming"
	"idnt/internal/ui/viewmodel"
	"idnt/pkg/qrlabel"
)

// MainController drives the naming screen: it feeds user input into the
// composer, keeps the view model current and talks to the application
// services for everything beyond pure composition.
type MainController struct {
	vm       *viewmodel.MainViewModel
	naming   *naming.NamingService
	app      *app.App
	log      ports.Logger
	onUpdate func()
}

// NewMainController creates a MainController with its dependencies.
func NewMainController(vm *viewmodel.MainViewModel, namingSvc *naming.NamingService, a *app.App, log ports.Logger) *MainController {
	return &MainController{
		vm:     vm,
		naming: namingSvc,
		app:    a,
		log:    log,
	}
}

// Initialize seeds the inputs from the configured defaults and loads the
// reference tables (call from the view once the window exists).
func (c *MainController) Initialize() {
	settings := c.app.Current()
	c.vm.Selection.DeployedYear = settings.DefaultYear
	c.vm.Selection.TechID = settings.DefaultTechID
	c.vm.PrintEnabled = settings.PrinterPort != ""

	c.ReloadTables()
}

// ReloadTables re-runs the source chain for every category and starts
// the table columns over at their first entries.
func (c *MainController) ReloadTables() {
	c.vm.Tables = c.app.NewTableService().LoadAll()
	c.vm.TablesGen++

	c.vm.Selection.Entity = firstCode(c.vm.Tables[models.CategoryEntity])
	c.vm.Selection.Department = firstCode(c.vm.Tables[models.CategoryDepartment])
	c.vm.Selection.Division = firstCode(c.vm.Tables[models.CategoryDivision])
	c.vm.Selection.Type = firstCode(c.vm.Tables[models.CategoryType])

	c.Recompose()
}

// SetCode records the code picked in a table column. An empty code means
// the column is unselected and contributes nothing.
func (c *MainController) SetCode(category models.Category, code string) {
	switch category {
	case models.CategoryEntity:
		c.vm.Selection.Entity = code
	case models.CategoryDepartment:
		c.vm.Selection.Department = code
	case models.CategoryDivision:
		c.vm.Selection.Division = code
	case models.CategoryType:
		c.vm.Selection.Type = code
	}
	c.Recompose()
}

// SetYear records the deployed-year text as typed.
func (c *MainController) SetYear(text string) {
	c.vm.Selection.DeployedYear = text
	c.Recompose()
}

// SetTechID records the technician ID text as typed.
func (c *MainController) SetTechID(text string) {
	c.vm.Selection.TechID = text
	c.Recompose()
}

// SetActiveColumn highlights the column the user is working in.
func (c *MainController) SetActiveColumn(column int) {
	if c.vm.ActiveColumn == column {
		return
	}
	c.vm.ActiveColumn = column
	c.notifyUpdate()
}

// Recompose rebuilds the device name from the current selection.
func (c *MainController) Recompose() {
	c.vm.Composed = c.naming.Compose(c.vm.Selection)
	c.notifyUpdate()
}

// SaveQR renders the composed name as a QR PNG at path, appending the
// .png extension when missing.
func (c *MainController) SaveQR(path string) error {
	png, err := qrlabel.Generate(c.vm.Composed.Name, c.app.Current().QRSize)
	if err != nil {
		return err
	}

	if !strings.HasSuffix(strings.ToLower(path), ".png") {
		path += ".png"
	}
	if err := os.WriteFile(path, png, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	c.log.Info("QR label saved to %s", path)
	return nil
}

// PrintLabel feeds the composed name to the configured label printer.
func (c *MainController) PrintLabel() error {
	return c.app.Printer().Print(c.vm.Composed.Name)
}

// CurrentSettings returns the settings in effect, for the dialog.
func (c *MainController) CurrentSettings() models.Settings {
	return c.app.Current()
}

// PrinterPorts lists the system serial ports, for the dialog.
func (c *MainController) PrinterPorts() []string {
	return c.app.Printer().Ports()
}

// SaveSettings persists new settings and re-wires everything bound to
// them: the printer, the print button and the table sources.
func (c *MainController) SaveSettings(settings models.Settings) error {
	if err := c.app.Repo.Save(settings); err != nil {
		return err
	}

	c.app.Apply(settings)
	c.vm.PrintEnabled = settings.PrinterPort != ""

	// The data directory or encoding may have changed.
	c.ReloadTables()
	return nil
}

// ViewModel returns the view model of the naming screen.
func (c *MainController) ViewModel() *viewmodel.MainViewModel {
	return c.vm
}

// SetOnUpdate installs the callback that repaints the UI.
func (c *MainController) SetOnUpdate(callback func()) {
	c.onUpdate = callback
}

// notifyUpdate runs the repaint callback when one is installed.
func (c *MainController) notifyUpdate() {
	if c.onUpdate != nil {
		c.onUpdate()
	}
}

func firstCode(table models.CodeTable) string {
	if len(table) == 0 {
		return ""
	}
	return table[0].Code
}
