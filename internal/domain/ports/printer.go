package ports

// LabelPrinter feeds a composed name to a label device. Calls are
// synchronous fire-and-forget: the caller shows the error and moves on,
// nothing is queued or retried.
type LabelPrinter interface {
	// Print sends one name to the device
	Print(name string) error

	// Ports lists candidate device ports for the settings dialog
	Ports() []string
}
