//go:build windows

package view

import (
	"fmt"
	"os/exec"

	"idnt/internal/domain/models"
	"idnt/internal/ui/controller"
	"idnt/internal/ui/view/dialogs"
	"idnt/internal/ui/viewmodel"

	"github.com/lxn/walk"
	d "github.com/lxn/walk/declarative"
)

const (
	appName     = "IDNT"
	appVersion  = "0.2.0"
	authorEmail = "billy@slack.net"
	projectURL  = "https://github.com/D1A881/idnt"
)

var columnTitles = [6]string{"Entity", "Department", "Division", "Type", "Deployed", "TechID"}

// comboItem is one dropdown row. Exported fields so walk can bind
// DisplayMember/BindingMember through reflection.
type comboItem struct {
	Display string
	Code    string
}

// MainWindowView renders the naming screen and forwards user events to
// the controller. It keeps no state of its own beyond the widgets and
// the combo models currently shown.
type MainWindowView struct {
	mw         *walk.MainWindow
	ctrl       *controller.MainController
	combos     [4]*walk.ComboBox
	yearEdit   *walk.LineEdit
	techEdit   *walk.LineEdit
	codeLabels [6]*walk.Label
	nameLabel  *walk.Label
	copyBtn    *walk.PushButton
	printBtn   *walk.PushButton
	emailLabel *walk.Label
	comboItems [4][]*comboItem
	shownGen   int
}

// NewMainWindowView creates a MainWindowView for the given controller.
func NewMainWindowView(ctrl *controller.MainController) *MainWindowView {
	return &MainWindowView{ctrl: ctrl}
}

// Create builds the main window and loads the initial data into it.
func (w *MainWindowView) Create() error {
	w.ctrl.SetOnUpdate(w.updateUI)

	err := d.MainWindow{
		AssignTo: &w.mw,
		Title:    appName + " " + appVersion,
		Size:     d.Size{Width: 780, Height: 330},
		MinSize:  d.Size{Width: 780, Height: 330},
		MaxSize:  d.Size{Width: 780, Height: 330},
		Layout:   d.VBox{Margins: d.Margins{Left: 8, Top: 8, Right: 8, Bottom: 8}, Spacing: 6},
		Children: []d.Widget{
			// --- Name parts: one column per segment ---
			d.Composite{
				Layout: d.Grid{Columns: 6, Spacing: 6},
				Children: []d.Widget{
					d.Label{Text: columnTitles[0], Font: d.Font{Bold: true}},
					d.Label{Text: columnTitles[1], Font: d.Font{Bold: true}},
					d.Label{Text: columnTitles[2], Font: d.Font{Bold: true}},
					d.Label{Text: columnTitles[3], Font: d.Font{Bold: true}},
					d.Label{Text: columnTitles[4], Font: d.Font{Bold: true}},
					d.Label{Text: columnTitles[5], Font: d.Font{Bold: true}},

					w.tableCombo(0),
					w.tableCombo(1),
					w.tableCombo(2),
					w.tableCombo(3),
					d.LineEdit{
						AssignTo:      &w.yearEdit,
						MinSize:       d.Size{Width: 70},
						OnTextChanged: w.onYearChanged,
					},
					d.LineEdit{
						AssignTo:      &w.techEdit,
						MinSize:       d.Size{Width: 70},
						OnTextChanged: w.onTechIDChanged,
					},

					w.codeLabel(0),
					w.codeLabel(1),
					w.codeLabel(2),
					w.codeLabel(3),
					w.codeLabel(4),
					w.codeLabel(5),
				},
			},
			// --- Composed device name ---
			d.GroupBox{
				Title:  "Device name",
				Layout: d.HBox{Margins: d.Margins{Left: 8, Top: 4, Right: 8, Bottom: 4}, Spacing: 10},
				Children: []d.Widget{
					d.Label{
						AssignTo:      &w.nameLabel,
						Text:          "",
						Font:          d.Font{Family: "Arial", PointSize: 24, Bold: true},
						TextAlignment: d.AlignCenter,
						MinSize:       d.Size{Width: 520},
					},
					d.PushButton{
						AssignTo:  &w.copyBtn,
						Text:      "Copy",
						MinSize:   d.Size{Width: 90},
						OnClicked: w.onCopy,
					},
				},
			},
			// --- Actions ---
			d.Composite{
				Layout: d.HBox{MarginsZero: true, Spacing: 6},
				Children: []d.Widget{
					d.PushButton{Text: "Save QR...", OnClicked: w.onSaveQR},
					d.PushButton{
						AssignTo:  &w.printBtn,
						Text:      "Print label",
						Visible:   false, // shown once a printer port is configured
						OnClicked: w.onPrint,
					},
					d.HSpacer{},
					d.PushButton{Text: "Reload tables", OnClicked: w.ctrl.ReloadTables},
					d.PushButton{Text: "Settings...", OnClicked: w.onSettings},
				},
			},
			// --- Footer ---
			d.Composite{
				Layout: d.HBox{MarginsZero: true, Spacing: 0},
				Children: []d.Widget{
					d.Label{Text: "©2026 by "},
					d.Label{
						AssignTo:    &w.emailLabel,
						Text:        authorEmail,
						TextColor:   walk.RGB(0, 0, 255),
						ToolTipText: projectURL,
					},
					d.HSpacer{},
				},
			},
		},
	}.Create()

	if err != nil {
		return err
	}

	// Enter in the last field copies the name.
	w.techEdit.KeyDown().Attach(func(key walk.Key) {
		if key == walk.KeyReturn {
			w.onCopy()
		}
	})

	w.emailLabel.MouseDown().Attach(func(x, y int, button walk.MouseButton) {
		w.openProjectPage()
	})

	w.ctrl.Initialize()
	return nil
}

// Run starts the window message loop.
func (w *MainWindowView) Run() {
	w.mw.Run()
}

// tableCombo builds the dropdown for one table column. The model is
// installed later by updateUI, once the tables are loaded.
func (w *MainWindowView) tableCombo(column int) d.ComboBox {
	return d.ComboBox{
		AssignTo:      &w.combos[column],
		BindingMember: "Code",
		DisplayMember: "Display",
		MinSize:       d.Size{Width: 120},
		OnCurrentIndexChanged: func() {
			w.onComboChanged(column)
		},
	}
}

// codeLabel builds the big code readout under one column.
func (w *MainWindowView) codeLabel(column int) d.Label {
	return d.Label{
		AssignTo:      &w.codeLabels[column],
		Text:          "",
		Font:          d.Font{Family: "Arial", PointSize: 18, Bold: true},
		TextAlignment: d.AlignCenter,
		MinSize:       d.Size{Width: 110},
	}
}

// updateUI redraws the window from the view model.
func (w *MainWindowView) updateUI() {
	w.mw.Synchronize(func() {
		vm := w.ctrl.ViewModel()

		// Rebind the dropdowns only when the tables actually changed,
		// otherwise every keystroke would reset the selections.
		if vm.TablesGen != w.shownGen {
			w.shownGen = vm.TablesGen
			w.rebindTables(vm)
		}

		for i := range w.codeLabels {
			w.codeLabels[i].SetText(vm.CodeAt(i))
			if vm.ActiveColumn == i {
				w.codeLabels[i].SetTextColor(walk.RGB(255, 0, 0))
			} else {
				w.codeLabels[i].SetTextColor(walk.RGB(0, 0, 0))
			}
		}

		w.nameLabel.SetText(vm.Composed.Name)
		w.printBtn.SetVisible(vm.PrintEnabled)

		if vm.Composed.Name != "" {
			w.mw.SetTitle(fmt.Sprintf("%s %s -> %s", appName, appVersion, vm.Composed.Name))
		} else {
			w.mw.SetTitle(appName + " " + appVersion)
		}
	})
}

// rebindTables swaps in the freshly loaded tables and starts every
// column over at its first real entry, past the empty one.
func (w *MainWindowView) rebindTables(vm *viewmodel.MainViewModel) {
	for i, category := range models.Categories() {
		items := comboItemsFor(vm.Tables[category])
		w.comboItems[i] = items
		w.combos[i].SetModel(items)
		if len(items) > 1 {
			w.combos[i].SetCurrentIndex(1)
		}
	}

	w.yearEdit.SetText(vm.Selection.DeployedYear)
	w.techEdit.SetText(vm.Selection.TechID)
}

func (w *MainWindowView) onComboChanged(column int) {
	code := ""
	if idx := w.combos[column].CurrentIndex(); idx >= 0 && idx < len(w.comboItems[column]) {
		code = w.comboItems[column][idx].Code
	}

	w.ctrl.SetActiveColumn(column)
	w.ctrl.SetCode(models.Categories()[column], code)
}

func (w *MainWindowView) onYearChanged() {
	w.ctrl.SetActiveColumn(4)
	w.ctrl.SetYear(w.yearEdit.Text())
}

func (w *MainWindowView) onTechIDChanged() {
	w.ctrl.SetActiveColumn(5)
	w.ctrl.SetTechID(w.techEdit.Text())
}

// onCopy puts the composed name on the clipboard.
func (w *MainWindowView) onCopy() {
	name := w.ctrl.ViewModel().Composed.Name

	if err := walk.Clipboard().SetText(name); err != nil {
		walk.MsgBox(w.mw, "Error", err.Error(), walk.MsgBoxIconError)
		return
	}
	walk.MsgBox(w.mw, appName, fmt.Sprintf("Copied '%s' to clipboard!", name), walk.MsgBoxIconInformation)
}

// onSaveQR asks for a target file and saves the name as a QR PNG.
func (w *MainWindowView) onSaveQR() {
	name := w.ctrl.ViewModel().Composed.Name
	if name == "" {
		walk.MsgBox(w.mw, appName, "Compose a device name first.", walk.MsgBoxIconWarning)
		return
	}

	dlg := new(walk.FileDialog)
	dlg.Title = "Save QR label"
	dlg.Filter = "PNG Images (*.png)|*.png|All Files (*.*)|*.*"
	dlg.FilePath = name + ".png"

	if ok, err := dlg.ShowSave(w.mw); err != nil {
		walk.MsgBox(w.mw, "Error", err.Error(), walk.MsgBoxIconError)
		return
	} else if !ok {
		return
	}

	if err := w.ctrl.SaveQR(dlg.FilePath); err != nil {
		walk.MsgBox(w.mw, "Error", err.Error(), walk.MsgBoxIconError)
	}
}

func (w *MainWindowView) onPrint() {
	if err := w.ctrl.PrintLabel(); err != nil {
		walk.MsgBox(w.mw, "Error", err.Error(), walk.MsgBoxIconError)
	}
}

func (w *MainWindowView) onSettings() {
	settings, ok := dialogs.RunSettingsDialog(w.mw, w.ctrl.CurrentSettings(), w.ctrl.PrinterPorts())
	if !ok {
		return
	}

	if err := w.ctrl.SaveSettings(settings); err != nil {
		walk.MsgBox(w.mw, "Error", err.Error(), walk.MsgBoxIconError)
	}
}

// openProjectPage opens the project page in the default browser.
func (w *MainWindowView) openProjectPage() {
	_ = exec.Command("rundll32", "url.dll,FileProtocolHandler", projectURL).Start()
}

func comboItemsFor(table models.CodeTable) []*comboItem {
	// The first, empty item stands for "no selection".
	items := make([]*comboItem, 0, len(table)+1)
	items = append(items, &comboItem{})

	for _, entry := range table {
		items = append(items, &comboItem{Display: entry.Display(), Code: entry.Code})
	}
	return items
}
