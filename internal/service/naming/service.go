package naming

import (
	"strconv"
	"strings"

	"idnt/internal/domain/models"
)

// NamingService composes device names from the current selection.
// Composition is pure string assembly: no validation, no I/O, no failure
// mode. Callers re-run it on every input event.
type NamingService struct{}

// NewNamingService creates a NamingService.
func NewNamingService() *NamingService {
	return &NamingService{}
}

// Compose builds the device name. Slots are concatenated in fixed order
// with no separators; an empty slot contributes nothing, so the remaining
// parts close up instead of leaving a placeholder.
func (s *NamingService) Compose(sel models.Selection) models.ComposedName {
	segments := []models.Segment{
		{Name: models.CategoryEntity.Title(), Value: sel.Entity},
		{Name: models.CategoryDepartment.Title(), Value: sel.Department},
		{Name: models.CategoryDivision.Title(), Value: sel.Division},
		{Name: models.CategoryType.Title(), Value: sel.Type},
		{Name: "Year", Value: yearDigit(sel.DeployedYear)},
		{Name: "Tech ID", Value: sel.TechID},
	}

	var b strings.Builder
	for _, seg := range segments {
		b.WriteString(seg.Value)
	}

	return models.ComposedName{Name: b.String(), Segments: segments}
}

// yearDigit reduces the deployed year to one decimal digit: the year
// modulo 10, normalized to 0..9 so negative input cannot produce a minus
// sign. Text that does not parse as an integer contributes nothing.
func yearDigit(raw string) string {
	year, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return ""
	}
	return strconv.Itoa(((year % 10) + 10) % 10)
}
