package models

// Selection carries the six live inputs a device name is composed from.
// The four table-backed fields hold codes (empty when nothing is picked);
// DeployedYear and TechID hold raw text exactly as typed.
type Selection struct {
	Entity       string
	Department   string
	Division     string
	Type         string
	DeployedYear string
	TechID       string
}

// Segment is one slot of a composed name.
type Segment struct {
	Name  string // column heading, e.g. "Department"
	Value string // characters this slot contributed, possibly empty
}

// ComposedName is the outcome of one composition pass: the final name plus
// the per-slot breakdown in composition order.
type ComposedName struct {
	Name     string
	Segments []Segment
}
