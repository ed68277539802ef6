package tables

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idnt/internal/domain/models"
	"idnt/internal/infrastructure/logger"
)

// fakeSource lets each test script source behavior per category.
type fakeSource struct {
	name string
	load func(models.Category) (models.CodeTable, error)
}

func (f fakeSource) Name() string { return f.name }

func (f fakeSource) Load(c models.Category) (models.CodeTable, error) {
	return f.load(c)
}

func staticSource(name string, table models.CodeTable) fakeSource {
	return fakeSource{
		name: name,
		load: func(models.Category) (models.CodeTable, error) { return table, nil },
	}
}

func TestLoadPrefersFirstSourceWithEntries(t *testing.T) {
	first := models.CodeTable{{Label: "Alpha", Code: "A"}}
	second := models.CodeTable{{Label: "Beta", Code: "B"}}

	svc := NewTableService(logger.NewNopLogger(),
		staticSource("first", first),
		staticSource("second", second),
	)

	got := svc.Load(models.CategoryEntity)
	require.Equal(t, first, got, "earlier source must win")
}

func TestLoadSkipsBrokenAndEmptySources(t *testing.T) {
	tests := []struct {
		name string
		src  fakeSource
	}{
		{
			name: "source error",
			src: fakeSource{name: "broken", load: func(models.Category) (models.CodeTable, error) {
				return nil, errors.New("file unreadable")
			}},
		},
		{
			name: "no entries",
			src:  staticSource("empty", nil),
		},
	}

	fallback := models.CodeTable{{Label: "Gamma", Code: "G"}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTableService(logger.NewNopLogger(), tt.src, staticSource("good", fallback))
			got := svc.Load(models.CategoryDepartment)
			assert.Equal(t, fallback, got)
		})
	}
}

func TestLoadFallsBackToBuiltins(t *testing.T) {
	svc := NewTableService(logger.NewNopLogger(), fakeSource{
		name: "broken",
		load: func(models.Category) (models.CodeTable, error) {
			return nil, errors.New("no such file")
		},
	})

	for _, category := range models.Categories() {
		got := svc.Load(category)
		require.NotEmpty(t, got, "category %s must never come back empty", category)
		assert.Equal(t, builtin(category), got)
	}
}

// A source that only breaks for one category must not disturb the others.
func TestLoadIsolatesCategories(t *testing.T) {
	entity := models.CodeTable{{Label: "County", Code: "L"}}
	svc := NewTableService(logger.NewNopLogger(), fakeSource{
		name: "selective",
		load: func(c models.Category) (models.CodeTable, error) {
			if c == models.CategoryDivision {
				return nil, errors.New("division file corrupt")
			}
			return entity, nil
		},
	})

	assert.Equal(t, entity, svc.Load(models.CategoryEntity))
	assert.Equal(t, builtin(models.CategoryDivision), svc.Load(models.CategoryDivision))
}

func TestLoadDropsDuplicateLabels(t *testing.T) {
	svc := NewTableService(logger.NewNopLogger(), staticSource("dup", models.CodeTable{
		{Label: "Finance", Code: "FIN"},
		{Label: "Operations", Code: "OPS"},
		{Label: "finance", Code: "F2"},
	}))

	got := svc.Load(models.CategoryDepartment)
	require.Equal(t, models.CodeTable{
		{Label: "Finance", Code: "FIN"},
		{Label: "Operations", Code: "OPS"},
	}, got, "later duplicates are dropped case-insensitively")
}

func TestLoadAllCoversEveryCategory(t *testing.T) {
	svc := NewTableService(logger.NewNopLogger())

	all := svc.LoadAll()
	require.Len(t, all, len(models.Categories()))
	for _, category := range models.Categories() {
		assert.NotEmpty(t, all[category])
	}
}
