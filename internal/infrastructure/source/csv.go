package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"idnt/internal/domain/models"
	"idnt/internal/domain/ports"
)

// CSVSource reads one "<category>.csv" file per category from a
// directory, typically the one the executable sits in. The expected
// layout is a Label,Code header followed by one entry per row.
type CSVSource struct {
	dir      string
	encoding string // IANA label, empty = UTF-8
	log      ports.Logger
}

// NewCSVSource creates a CSVSource over dir, decoding files with the
// given encoding label.
func NewCSVSource(dir, encoding string, log ports.Logger) *CSVSource {
	return &CSVSource{dir: dir, encoding: encoding, log: log}
}

// Name identifies the source in logs.
func (s *CSVSource) Name() string { return "csv" }

// Load reads the category's file. A missing or unreadable file is an
// error for the caller to downgrade; malformed lines inside an otherwise
// readable file are skipped one by one.
func (s *CSVSource) Load(category models.Category) (models.CodeTable, error) {
	path := filepath.Join(s.dir, category.FileName())

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	text, err := decodeText(data, s.encoding)
	if err != nil {
		return nil, fmt.Errorf("decode %s as %q: %w", path, s.encoding, err)
	}

	r := csv.NewReader(text)
	r.FieldsPerRecord = -1 // row width is checked per row, not per file

	var rows [][]string
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			s.log.Warn("Skipping malformed line in %s: %v", path, err)
			continue
		}
		rows = append(rows, record)
	}

	return entriesFromRows(rows, path, s.log), nil
}
