package countyimport

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// utf8BOM is stripped before parsing; Windows exports often carry one.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// sourceFile is a parsed county export: a case-insensitive header index
// over raw string rows. Different export vintages use different header
// casing for the same column, so all lookups go through the normalized
// index.
type sourceFile struct {
	columns map[string]int
	rows    [][]string
}

func normalizeHeader(name string) string {
	return strings.ToLower(strings.TrimSpace(strings.Trim(strings.TrimSpace(name), `"`)))
}

// parseSource parses decoded CSV bytes. Quoting in county files is
// inconsistent, so the reader runs with LazyQuotes and without a fixed
// field count; short rows read as missing cells.
func parseSource(data []byte) (*sourceFile, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("file has no header row")
		}
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[normalizeHeader(name)] = i
	}

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(rows)+2, err)
		}
		rows = append(rows, row)
	}

	return &sourceFile{columns: columns, rows: rows}, nil
}

// cell returns the raw value of the named column in a row, or "" when
// the column is absent or the row is short.
func (f *sourceFile) cell(row []string, column string) string {
	idx, ok := f.columns[normalizeHeader(column)]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
