package viewmodel

import "idnt/internal/domain/models"

// MainViewModel holds the state of the naming screen: the loaded
// reference tables, the six live inputs and the last composition.
type MainViewModel struct {
	// Loaded reference tables, keyed by category
	Tables map[models.Category]models.CodeTable

	// TablesGen increments on every (re)load, so the view knows when
	// to rebind the dropdown models
	TablesGen int

	// The six live inputs
	Selection models.Selection

	// Last composition result
	Composed models.ComposedName

	// Column the user is working in (0..5 left to right), -1 = none.
	// Drives the red highlight on the code labels.
	ActiveColumn int

	// Label printing available (a printer port is configured)
	PrintEnabled bool
}

// NewMainViewModel creates a MainViewModel with nothing loaded yet.
func NewMainViewModel() *MainViewModel {
	return &MainViewModel{
		Tables:       map[models.Category]models.CodeTable{},
		ActiveColumn: -1,
	}
}

// CodeAt returns the characters column contributes to the name, for the
// per-column code labels. Columns follow segment order.
func (vm *MainViewModel) CodeAt(column int) string {
	if column < 0 || column >= len(vm.Composed.Segments) {
		return ""
	}
	return vm.Composed.Segments[column].Value
}
