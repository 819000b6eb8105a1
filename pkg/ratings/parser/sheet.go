// Package parser provides workbook parsing and score extraction utilities.
package parser

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Row maps a header name to the cell value found under it.
// Values are int64, float64 or string.
type Row map[string]interface{}

// ReadSheet reads a sheet as a header-keyed table.
// The first row is the header; empty header cells and repeated header
// names (after the first occurrence) are ignored.
func ReadSheet(f *excelize.File, sheetName string) ([]Row, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := headerColumns(rows[0])

	result := make([]Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(Row, len(header))
		for colIdx, cellValue := range cells {
			name, ok := header[colIdx]
			if !ok || cellValue == "" {
				continue
			}
			row[name] = parseValue(cellValue)
		}
		result = append(result, row)
	}

	return result, nil
}

// headerColumns maps column index to header name.
func headerColumns(cells []string) map[int]string {
	header := make(map[int]string, len(cells))
	seen := make(map[string]bool, len(cells))
	for colIdx, name := range cells {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		header[colIdx] = name
	}
	return header
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
