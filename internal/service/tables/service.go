package tables

import (
	"strings"

	"idnt/internal/domain/models"
	"idnt/internal/domain/ports"
)

// TableService resolves the reference tables the composer draws from.
// Every category walks the configured source chain independently and the
// first source that yields at least one entry wins, so a broken file for
// one category never affects the others. The chain always ends in the
// built-in defaults, which is why Load has no error to return.
type TableService struct {
	sources []ports.TableSource
	log     ports.Logger
}

// NewTableService creates a TableService over the given sources, tried in
// argument order before the built-in defaults.
func NewTableService(log ports.Logger, sources ...ports.TableSource) *TableService {
	return &TableService{
		sources: sources,
		log:     log,
	}
}

// Load resolves the table for one category. The result is never empty.
func (s *TableService) Load(category models.Category) models.CodeTable {
	for _, src := range s.sources {
		table, err := src.Load(category)
		if err != nil {
			s.log.Warn("Source %s failed for %s, trying next: %v", src.Name(), category, err)
			continue
		}
		if len(table) == 0 {
			s.log.Debug("Source %s has no %s entries, trying next", src.Name(), category)
			continue
		}
		s.log.Info("Loaded %d %s entries from %s", len(table), category, src.Name())
		return s.dedupe(category, table)
	}

	s.log.Info("Using built-in %s table", category)
	return builtin(category)
}

// LoadAll resolves every category, keyed by category.
func (s *TableService) LoadAll() map[models.Category]models.CodeTable {
	all := make(map[models.Category]models.CodeTable, len(models.Categories()))
	for _, category := range models.Categories() {
		all[category] = s.Load(category)
	}
	return all
}

// dedupe keeps the first occurrence of each label. Duplicate labels would
// make a dropdown pick ambiguous, so later ones are dropped with a warning.
func (s *TableService) dedupe(category models.Category, in models.CodeTable) models.CodeTable {
	seen := make(map[string]struct{}, len(in))
	out := make(models.CodeTable, 0, len(in))
	for _, e := range in {
		key := strings.ToLower(e.Label)
		if _, dup := seen[key]; dup {
			s.log.Warn("Duplicate %s label %q dropped", category, e.Label)
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}
