package models

import "strings"

// Category identifies one of the reference tables a device name draws from.
type Category string

const (
	CategoryEntity     Category = "entity"
	CategoryDepartment Category = "department"
	CategoryDivision   Category = "division"
	CategoryType       Category = "type"
)

// Categories returns all categories in composition order.
func Categories() []Category {
	return []Category{CategoryEntity, CategoryDepartment, CategoryDivision, CategoryType}
}

// Title returns the heading used for UI columns and workbook sheet names.
func (c Category) Title() string {
	switch c {
	case CategoryEntity:
		return "Entity"
	case CategoryDepartment:
		return "Department"
	case CategoryDivision:
		return "Division"
	case CategoryType:
		return "Type"
	}
	return string(c)
}

// FileName returns the CSV file name the category is loaded from,
// e.g. "department.csv".
func (c Category) FileName() string {
	return string(c) + ".csv"
}

// CodeEntry is one reference table row: a human-readable label and the
// short code that becomes part of the device name.
type CodeEntry struct {
	Label string // e.g. "Public Works"
	Code  string // e.g. "PW"
}

// Display renders the entry the way dropdowns show it, e.g. "Public Works - PW".
func (e CodeEntry) Display() string {
	return e.Label + " - " + e.Code
}

// CodeTable is an ordered reference table for one category.
type CodeTable []CodeEntry

// Resolve maps a label to its code, case-insensitively. Anything that is
// not a known label is returned unchanged, so callers may pass codes
// directly.
func (t CodeTable) Resolve(s string) string {
	for _, e := range t {
		if strings.EqualFold(e.Label, s) {
			return e.Code
		}
	}
	return s
}
