// internal/app/features/uploadroster/rosterio/xlsx.go
package rosterio

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads a roster from the first sheet of an XLSX workbook.
func ParseXLSX(r io.Reader) (Result, error) {
	var result Result

	f, err := excelize.OpenReader(r)
	if err != nil {
		return result, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return result, nil // no sheets
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return result, err
	}
	if len(rows) == 0 {
		return result, nil
	}

	cols, isHeader := detectHeader(rows[0])

	var records [][]string
	firstLine := 1
	if isHeader {
		records = rows[1:]
		firstLine = 2
	} else {
		records = rows
	}
	if len(records) > MaxRows {
		return result, ErrTooManyRows
	}

	buildRows(records, firstLine, cols, &result)
	return result, nil
}
