// Package source provides the file-backed reference table sources: CSV
// files and an Excel workbook, both sharing one row contract. Sources
// report failures to the caller, which decides whether to move down the
// chain; they never abort on a single bad row.
package source

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html/charset"

	"idnt/internal/domain/models"
	"idnt/internal/domain/ports"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decodeText converts raw file bytes to UTF-8 according to an IANA
// encoding label ("windows-1251", "koi8-r", ...). An empty label means
// UTF-8. A leading UTF-8 BOM is dropped either way, so files saved from
// Excel or Notepad load cleanly.
func decodeText(data []byte, label string) (io.Reader, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if label == "" {
		label = "utf-8"
	}
	return charset.NewReaderLabel(label, bytes.NewReader(data))
}

// entriesFromRows applies the shared table contract to raw rows: the
// first row is the header and is always skipped, whatever it says; a data
// row needs a non-empty label and code in its first two cells, extra
// cells are ignored. Bad rows are logged and skipped, never fatal.
func entriesFromRows(rows [][]string, origin string, log ports.Logger) models.CodeTable {
	if len(rows) < 2 {
		return nil
	}

	table := make(models.CodeTable, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, counting the header

		if len(row) < 2 {
			log.Warn("Skipping %s row %d: want label and code, got %d cell(s)", origin, rowNum, len(row))
			continue
		}

		label := strings.TrimSpace(row[0])
		code := strings.TrimSpace(row[1])
		if label == "" || code == "" {
			log.Warn("Skipping %s row %d: empty label or code", origin, rowNum)
			continue
		}

		table = append(table, models.CodeEntry{Label: label, Code: code})
	}
	return table
}
