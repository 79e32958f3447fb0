// internal/app/features/uploadroster/rosterio/csv.go
package rosterio

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Parse reads a roster file, dispatching on the filename extension.
func Parse(r io.Reader, filename string) (Result, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ParseCSV(r)
	case ".xlsx":
		return ParseXLSX(r)
	}
	return Result{}, ErrUnsupportedFormat
}

// ParseCSV reads a roster from CSV data.
func ParseCSV(r io.Reader) (Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable fields
	reader.TrimLeadingSpace = true

	var result Result

	first, err := reader.Read()
	if err == io.EOF {
		return result, nil // empty file
	}
	if err != nil {
		return result, err
	}

	// Handle BOM in first cell
	if len(first) > 0 {
		first[0] = strings.TrimPrefix(first[0], "\ufeff")
	}

	cols, isHeader := detectHeader(first)

	var records [][]string
	firstLine := 1
	if isHeader {
		firstLine = 2
	} else {
		records = append(records, first)
	}

	lineNum := 1
	for {
		rec, err := reader.Read()
		lineNum++
		if err == io.EOF {
			break
		}
		if err != nil {
			result.Errors = append(result.Errors, RowError{
				Line:   lineNum,
				Reason: fmt.Sprintf("unreadable row: %s", err.Error()),
			})
			continue
		}
		if len(records) >= MaxRows {
			return result, ErrTooManyRows
		}
		records = append(records, rec)
	}

	buildRows(records, firstLine, cols, &result)
	return result, nil
}
