//go:build windows

package view

import (
	"idnt/internal/ui/controller"
)

// Run creates the main window and enters the message loop.
func Run(mainController *controller.MainController) error {
	mw := NewMainWindowView(mainController)

	if err := mw.Create(); err != nil {
		return err
	}

	mw.Run()
	return nil
}
