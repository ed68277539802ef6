//go:build windows

package ui

import (
	"idnt/internal/ui/controller"
	"idnt/internal/ui/view"
)

// Run starts the graphical application for the given controller.
func Run(mainCtrl *controller.MainController) error {
	return view.Run(mainCtrl)
}
