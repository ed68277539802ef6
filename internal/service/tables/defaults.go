package tables

import "idnt/internal/domain/models"

// builtin returns the compiled-in fallback table for a category. The
// values mirror the sample CSVs shipped with the tool; organizations are
// expected to drop in their own files rather than rebuild.
func builtin(category models.Category) models.CodeTable {
	switch category {
	case models.CategoryEntity:
		return models.CodeTable{
			{Label: "County", Code: "L"},
			{Label: "City", Code: "C"},
			{Label: "State", Code: "S"},
		}
	case models.CategoryDepartment:
		return models.CodeTable{
			{Label: "Keebler Cemetery", Code: "KBC"},
			{Label: "Public Works", Code: "PW"},
			{Label: "Finance", Code: "FIN"},
		}
	case models.CategoryDivision:
		return models.CodeTable{
			{Label: "Administration", Code: "ADM"},
			{Label: "Operations", Code: "OPS"},
			{Label: "Support", Code: "SUP"},
		}
	case models.CategoryType:
		return models.CodeTable{
			{Label: "Workstation", Code: "WK"},
			{Label: "Laptop", Code: "LT"},
			{Label: "Server", Code: "SV"},
			{Label: "Printer", Code: "PR"},
		}
	}
	return nil
}
