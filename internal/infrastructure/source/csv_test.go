package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"idnt/internal/domain/models"
	"idnt/internal/infrastructure/logger"
)

func writeFile(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0644))
}

func TestCSVSourceLoadsTable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "department.csv", []byte(
		"Label,Code\n"+
			"Public Works,PW\n"+
			"  Finance  ,  FIN  \n"+
			"Parks,PRK,extra,cells\n"))

	src := NewCSVSource(dir, "", logger.NewNopLogger())
	got, err := src.Load(models.CategoryDepartment)

	require.NoError(t, err)
	assert.Equal(t, models.CodeTable{
		{Label: "Public Works", Code: "PW"},
		{Label: "Finance", Code: "FIN"},
		{Label: "Parks", Code: "PRK"},
	}, got, "cells are trimmed and extra columns ignored")
}

func TestCSVSourceMissingFile(t *testing.T) {
	src := NewCSVSource(t.TempDir(), "", logger.NewNopLogger())

	got, err := src.Load(models.CategoryEntity)
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestCSVSourceSkipsBadRows(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "type.csv", []byte(
		"Label,Code\n"+
			"Workstation,WK\n"+
			"only-one-cell\n"+
			",SV\n"+
			"Printer,\n"+
			"Laptop,LT\n"))

	src := NewCSVSource(dir, "", logger.NewNopLogger())
	got, err := src.Load(models.CategoryType)

	require.NoError(t, err)
	assert.Equal(t, models.CodeTable{
		{Label: "Workstation", Code: "WK"},
		{Label: "Laptop", Code: "LT"},
	}, got)
}

// The first row is the header and never becomes an entry, even when it
// looks like data.
func TestCSVSourceAlwaysSkipsFirstRow(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "entity.csv", []byte(
		"County,L\n"+
			"City,C\n"))

	src := NewCSVSource(dir, "", logger.NewNopLogger())
	got, err := src.Load(models.CategoryEntity)

	require.NoError(t, err)
	assert.Equal(t, models.CodeTable{{Label: "City", Code: "C"}}, got)
}

func TestCSVSourceUTF8BOM(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "entity.csv", append(append([]byte{}, utf8BOM...), []byte(
		"Label,Code\n"+
			"County,L\n")...))

	src := NewCSVSource(dir, "", logger.NewNopLogger())
	got, err := src.Load(models.CategoryEntity)

	require.NoError(t, err)
	assert.Equal(t, models.CodeTable{{Label: "County", Code: "L"}}, got)
}

func TestCSVSourceWindows1251(t *testing.T) {
	raw := "Label,Code\nБухгалтерия,FIN\n"
	encoded, _, err := transform.Bytes(charmap.Windows1251.NewEncoder(), []byte(raw))
	require.NoError(t, err)

	dir := t.TempDir()
	writeFile(t, dir, "department.csv", encoded)

	src := NewCSVSource(dir, "windows-1251", logger.NewNopLogger())
	got, err := src.Load(models.CategoryDepartment)

	require.NoError(t, err)
	assert.Equal(t, models.CodeTable{{Label: "Бухгалтерия", Code: "FIN"}}, got)
}

func TestCSVSourceUnknownEncoding(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "entity.csv", []byte("Label,Code\nCounty,L\n"))

	src := NewCSVSource(dir, "no-such-encoding", logger.NewNopLogger())
	_, err := src.Load(models.CategoryEntity)
	require.Error(t, err)
}
