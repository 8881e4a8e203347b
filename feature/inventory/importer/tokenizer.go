package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned for files that are neither delimited text nor a workbook.
var ErrUnsupportedFormat = errors.New("unsupported import format")

const utf8BOM = "\uFEFF"

// ReadDelimited reads comma separated text. Quotes follow the usual rules ("" is a
// literal quote inside a quoted cell); rows may have different lengths.
func ReadDelimited(r io.Reader) ([][]string, error) {
	return readDelimited(r, ',')
}

func readDelimited(r io.Reader, comma rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = false

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read delimited text: %w", err)
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}
	return rows, nil
}

// ParseLine splits a single comma separated line into cells.
func ParseLine(line string) []string {
	cr := csv.NewReader(strings.NewReader(line))
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	cells, err := cr.Read()
	if err != nil {
		return []string{line}
	}
	return cells
}

// Supported reports whether ReadRows accepts the file name.
func Supported(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt", ".tsv", ".xlsx", ".xlsm":
		return true
	}
	return false
}

// ReadRows reads a file into rows, choosing the reader from the file extension.
func ReadRows(name string, r io.Reader) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return readDelimited(r, ',')
	case ".tsv":
		return readDelimited(r, '\t')
	case ".xlsx", ".xlsm":
		return ReadSpreadsheet(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(name))
	}
}
