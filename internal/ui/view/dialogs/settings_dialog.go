//go:build windows

package dialogs

import (
	"strings"

	"idnt/internal/domain/models"

	"github.com/lxn/walk"
	d "github.com/lxn/walk/declarative"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// RunSettingsDialog opens the settings dialog pre-filled with current
// and returns the edited settings. The second result is false when the
// user cancelled.
func RunSettingsDialog(owner walk.Form, current models.Settings, ports []string) (models.Settings, bool) {
	var dlg *walk.Dialog
	var acceptPB, cancelPB *walk.PushButton

	var dataDirEdit, encodingEdit, yearEdit, techEdit *walk.LineEdit
	var portCombo, levelCombo *walk.ComboBox
	var baudEdit, qrSizeEdit *walk.NumberEdit

	// Result is read inside the OK handler, while the widgets are alive.
	result := current

	err := d.Dialog{
		AssignTo:      &dlg,
		Title:         "Settings",
		MinSize:       d.Size{Width: 420, Height: 430},
		MaxSize:       d.Size{Width: 420, Height: 430},
		FixedSize:     true,
		Layout:        d.VBox{},
		DefaultButton: &acceptPB,
		CancelButton:  &cancelPB,
		Children: []d.Widget{
			d.GroupBox{
				Title:  "Reference tables",
				Layout: d.Grid{Columns: 2, Margins: d.Margins{Left: 8, Top: 8, Right: 8, Bottom: 8}, Spacing: 5},
				Children: []d.Widget{
					d.Label{Text: "Tables folder:"},
					d.LineEdit{AssignTo: &dataDirEdit, Text: current.DataDir},
					d.Label{Text: "CSV encoding:"},
					d.LineEdit{AssignTo: &encodingEdit, Text: current.TableEncoding, ToolTipText: "IANA charset label, e.g. utf-8 or windows-1251"},
				},
			},
			d.GroupBox{
				Title:  "Label printer",
				Layout: d.Grid{Columns: 2, Margins: d.Margins{Left: 8, Top: 8, Right: 8, Bottom: 8}, Spacing: 5},
				Children: []d.Widget{
					d.Label{Text: "Serial port:"},
					d.ComboBox{
						AssignTo:    &portCombo,
						Editable:    true,
						Model:       ports,
						ToolTipText: "Leave empty to hide the print button",
					},
					d.Label{Text: "Baud rate:"},
					d.NumberEdit{AssignTo: &baudEdit, Value: float64(current.PrinterBaud), Decimals: 0},
				},
			},
			d.GroupBox{
				Title:  "Application",
				Layout: d.Grid{Columns: 2, Margins: d.Margins{Left: 8, Top: 8, Right: 8, Bottom: 8}, Spacing: 5},
				Children: []d.Widget{
					d.Label{Text: "Default year:"},
					d.LineEdit{AssignTo: &yearEdit, Text: current.DefaultYear},
					d.Label{Text: "Default tech ID:"},
					d.LineEdit{AssignTo: &techEdit, Text: current.DefaultTechID},
					d.Label{Text: "QR size, px:"},
					d.NumberEdit{AssignTo: &qrSizeEdit, Value: float64(current.QRSize), Decimals: 0},
					d.Label{Text: "Log level:"},
					d.ComboBox{AssignTo: &levelCombo, Model: logLevels},
				},
			},
			d.Composite{
				Layout: d.HBox{Margins: d.Margins{Top: 5}},
				Children: []d.Widget{
					d.HSpacer{},
					d.PushButton{
						AssignTo: &acceptPB,
						Text:     "OK",
						OnClicked: func() {
							result.DataDir = strings.TrimSpace(dataDirEdit.Text())
							result.TableEncoding = strings.TrimSpace(encodingEdit.Text())
							result.DefaultYear = strings.TrimSpace(yearEdit.Text())
							result.DefaultTechID = strings.TrimSpace(techEdit.Text())
							result.PrinterPort = strings.TrimSpace(portCombo.Text())
							result.PrinterBaud = int(baudEdit.Value())
							result.QRSize = int(qrSizeEdit.Value())
							if idx := levelCombo.CurrentIndex(); idx >= 0 && idx < len(logLevels) {
								result.LogLevel = logLevels[idx]
							}

							dlg.Close(walk.DlgCmdOK)
						},
					},
					d.PushButton{
						AssignTo: &cancelPB,
						Text:     "Cancel",
						OnClicked: func() {
							dlg.Close(walk.DlgCmdCancel)
						},
					},
				},
			},
		},
	}.Create(owner)

	if err != nil {
		walk.MsgBox(owner, "Error", err.Error(), walk.MsgBoxIconError)
		return current, false
	}

	portCombo.SetText(current.PrinterPort)
	levelCombo.SetCurrentIndex(levelIndex(current.LogLevel))

	if dlg.Run() == walk.DlgCmdOK {
		return result, true
	}

	return current, false
}

func levelIndex(level string) int {
	for i, l := range logLevels {
		if l == level {
			return i
		}
	}
	return 1 // info
}
