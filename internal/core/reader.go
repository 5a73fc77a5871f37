package core

// reader.go reads the archive sheet export.
//
// Exports from spreadsheet tools often start with a UTF-8 byte order mark and
// occasionally carry stray bytes that are not valid UTF-8. The decoder strips
// the BOM and replaces invalid sequences with U+FFFD so a single bad byte
// cannot abort the whole import.

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Sheet is a parsed CSV export: the header row and the data rows below it.
type Sheet struct {
	Header []string
	Rows   [][]string
}

// NewCSVReader returns a CSV reader over r that tolerates a leading BOM,
// invalid UTF-8, ragged rows and stray quotes inside unquoted fields.
func NewCSVReader(r io.Reader) *csv.Reader {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr
}

// ReadSheet reads the whole export. The first non-blank row is the header.
func ReadSheet(r io.Reader) (*Sheet, error) {
	cr := NewCSVReader(r)

	sheet := &Sheet{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse CSV: %w", err)
		}

		if sheet.Header == nil {
			if isEmptyRow(record) {
				continue
			}
			sheet.Header = record
			continue
		}
		sheet.Rows = append(sheet.Rows, record)
	}

	if sheet.Header == nil {
		return nil, ErrEmptyFile
	}
	return sheet, nil
}

// CleanCell removes common CSV artifacts from a cell value:
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
func CleanCell(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}

	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// isEmptyRow reports whether every cell of the row is blank.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
