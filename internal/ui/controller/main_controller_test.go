package controller

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idnt/internal/app"
	"idnt/internal/domain/models"
	"idnt/internal/infrastructure/labelprint"
	"idnt/internal/infrastructure/logger"
	"idnt/internal/infrastructure/storage"
	"idnt/internal/service/naming"
	"idnt/internal/ui/viewmodel"
	"idnt/pkg/qrlabel"
)

type fakePrinter struct {
	printFunc func(name string) error
	ports     []string
}

func (p *fakePrinter) Print(name string) error { return p.printFunc(name) }
func (p *fakePrinter) Ports() []string         { return p.ports }

// newTestController wires a controller against dir: settings live there
// and the table sources look there, so an empty dir means built-ins.
func newTestController(t *testing.T, dir string) (*MainController, *viewmodel.MainViewModel, *app.App) {
	t.Helper()

	log := logger.NewNopLogger()

	settings := models.DefaultSettings()
	settings.DataDir = dir

	repo := storage.NewFileSettingsRepository(filepath.Join(dir, storage.SettingsFileName), log)
	a := app.NewApp(repo, settings, log)

	vm := viewmodel.NewMainViewModel()
	ctrl := NewMainController(vm, naming.NewNamingService(), a, log)
	return ctrl, vm, a
}

func TestInitializeComposesFromDefaults(t *testing.T) {
	ctrl, vm, _ := newTestController(t, t.TempDir())

	var updates int
	ctrl.SetOnUpdate(func() { updates++ })

	ctrl.Initialize()

	assert.Equal(t, "2026", vm.Selection.DeployedYear)
	assert.Equal(t, "00A7", vm.Selection.TechID)
	assert.Equal(t, "LKBCADMWK600A7", vm.Composed.Name)
	assert.Equal(t, 1, vm.TablesGen)
	assert.False(t, vm.PrintEnabled)
	assert.Positive(t, updates)
}

func TestSetCodeRecomposes(t *testing.T) {
	ctrl, vm, _ := newTestController(t, t.TempDir())
	ctrl.Initialize()

	ctrl.SetCode(models.CategoryDepartment, "PW")

	assert.Equal(t, "LPWADMWK600A7", vm.Composed.Name)
}

func TestEmptyCodeLeavesNoGap(t *testing.T) {
	ctrl, vm, _ := newTestController(t, t.TempDir())
	ctrl.Initialize()

	ctrl.SetCode(models.CategoryDepartment, "")

	assert.Equal(t, "LADMWK600A7", vm.Composed.Name)
}

func TestNonNumericYearDropsDigit(t *testing.T) {
	ctrl, vm, _ := newTestController(t, t.TempDir())
	ctrl.Initialize()

	ctrl.SetYear("abc")

	assert.Equal(t, "LKBCADMWK00A7", vm.Composed.Name)
}

func TestReloadTablesPicksUpCSV(t *testing.T) {
	dir := t.TempDir()
	ctrl, vm, _ := newTestController(t, dir)
	ctrl.Initialize()

	content := "Label,Code\nContoso,Z\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "entity.csv"), []byte(content), 0644))

	ctrl.ReloadTables()

	assert.Equal(t, "Z", vm.Selection.Entity)
	assert.Equal(t, "ZKBCADMWK600A7", vm.Composed.Name)
	assert.Equal(t, 2, vm.TablesGen)
}

func TestSetActiveColumnNotifiesOnChange(t *testing.T) {
	ctrl, vm, _ := newTestController(t, t.TempDir())

	var updates int
	ctrl.SetOnUpdate(func() { updates++ })

	ctrl.SetActiveColumn(2)
	assert.Equal(t, 2, vm.ActiveColumn)
	assert.Equal(t, 1, updates)

	// Same column again is not a change.
	ctrl.SetActiveColumn(2)
	assert.Equal(t, 1, updates)
}

func TestSaveSettingsAppliesAndPersists(t *testing.T) {
	ctrl, vm, a := newTestController(t, t.TempDir())
	ctrl.Initialize()

	next := ctrl.CurrentSettings()
	next.PrinterPort = "COM5"
	next.DefaultTechID = "11B2"
	require.NoError(t, ctrl.SaveSettings(next))

	assert.True(t, vm.PrintEnabled)
	assert.Equal(t, "COM5", a.Current().PrinterPort)

	reloaded := a.Repo.Load()
	assert.Equal(t, "COM5", reloaded.PrinterPort)
	assert.Equal(t, "11B2", reloaded.DefaultTechID)

	next.PrinterPort = ""
	require.NoError(t, ctrl.SaveSettings(next))
	assert.False(t, vm.PrintEnabled)
}

func TestPrintLabelWithoutPort(t *testing.T) {
	ctrl, _, _ := newTestController(t, t.TempDir())
	ctrl.Initialize()

	err := ctrl.PrintLabel()

	require.Error(t, err)
	assert.ErrorIs(t, err, labelprint.ErrNoPort)
}

func TestPrintLabelSendsComposedName(t *testing.T) {
	ctrl, vm, a := newTestController(t, t.TempDir())
	ctrl.Initialize()

	var printed string
	a.SetPrinter(&fakePrinter{
		printFunc: func(name string) error {
			printed = name
			return nil
		},
	})

	require.NoError(t, ctrl.PrintLabel())
	assert.Equal(t, vm.Composed.Name, printed)
}

func TestSaveQRAddsExtension(t *testing.T) {
	dir := t.TempDir()
	ctrl, _, _ := newTestController(t, dir)
	ctrl.Initialize()

	require.NoError(t, ctrl.SaveQR(filepath.Join(dir, "label")))

	_, err := os.Stat(filepath.Join(dir, "label.png"))
	require.NoError(t, err)
}

func TestSaveQRKeepsExtension(t *testing.T) {
	dir := t.TempDir()
	ctrl, _, _ := newTestController(t, dir)
	ctrl.Initialize()

	require.NoError(t, ctrl.SaveQR(filepath.Join(dir, "label.PNG")))

	_, err := os.Stat(filepath.Join(dir, "label.PNG"))
	require.NoError(t, err)
}

func TestSaveQRRejectsEmptyName(t *testing.T) {
	dir := t.TempDir()
	ctrl, _, _ := newTestController(t, dir)

	err := ctrl.SaveQR(filepath.Join(dir, "label"))

	assert.ErrorIs(t, err, qrlabel.ErrEmptyName)
}
