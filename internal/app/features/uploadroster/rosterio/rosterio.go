// internal/app/features/uploadroster/rosterio/rosterio.go

// Package rosterio parses uploaded roster files (CSV or XLSX) into
// validated rows. Both rosters share the same column layout:
//
//	Full Name, Email Address, Contact Number, Affiliation[, Gender]
//
// A header row is detected by looking for an email-like column name;
// files without a header are read positionally. Rows with problems are
// collected as RowErrors instead of aborting the parse, so the upload
// page can show everything wrong with a file at once.
package rosterio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/coderelay/internhub/internal/app/system/normalize"
)

// MaxRows caps the number of data rows accepted from one file.
const MaxRows = 5000

var (
	// ErrTooManyRows means the file exceeds MaxRows data rows.
	ErrTooManyRows = errors.New("roster file has too many rows")

	// ErrUnsupportedFormat means the file extension is neither .csv nor
	// .xlsx.
	ErrUnsupportedFormat = errors.New("unsupported roster file format")
)

// Row is one validated roster row. Email is normalized; other fields are
// trimmed but otherwise kept as uploaded.
type Row struct {
	Line          int
	FullName      string
	Email         string
	ContactNumber string
	Affiliation   string
	Gender        string
}

// RowError describes why one row was rejected.
type RowError struct {
	Line   int
	Reason string
	Raw    []string
}

// Result holds the rows and errors from parsing one file.
type Result struct {
	Rows   []Row
	Errors []RowError
}

// HasErrors returns true if any row was rejected.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// SupportedExt reports whether the filename has a parseable extension.
func SupportedExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}

// columnIndexes maps the layout's columns to positions in a record.
// A value of -1 means the column is absent.
type columnIndexes struct {
	name    int
	email   int
	contact int
	aff     int
	gender  int
}

// positional is the layout used when no header row is present.
var positional = columnIndexes{name: 0, email: 1, contact: 2, aff: 3, gender: 4}

// detectHeader decides whether rec is a header row and, if so, resolves
// the column positions from it.
func detectHeader(rec []string) (columnIndexes, bool) {
	idx := columnIndexes{name: -1, email: -1, contact: -1, aff: -1, gender: -1}
	isHeader := false
	for i, cell := range rec {
		c := strings.ToLower(strings.TrimSpace(cell))
		switch {
		case strings.Contains(c, "email"):
			idx.email = i
			isHeader = true
		case strings.Contains(c, "name") && idx.name == -1:
			idx.name = i
		case strings.Contains(c, "contact") || strings.Contains(c, "phone"):
			idx.contact = i
		case strings.Contains(c, "affiliation") || strings.Contains(c, "college"):
			idx.aff = i
		case strings.Contains(c, "gender"):
			idx.gender = i
		}
	}
	if !isHeader {
		return positional, false
	}
	return idx, true
}

func cellAt(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func isEmptyRow(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

// buildRows validates raw records against the resolved columns and fills
// the result. seen catches duplicate emails within the file.
func buildRows(records [][]string, firstLine int, cols columnIndexes, result *Result) {
	seen := make(map[string]int)
	for i, rec := range records {
		line := firstLine + i
		if isEmptyRow(rec) {
			continue
		}

		row := Row{
			Line:          line,
			FullName:      cellAt(rec, cols.name),
			Email:         normalize.Email(cellAt(rec, cols.email)),
			ContactNumber: cellAt(rec, cols.contact),
			Affiliation:   normalize.Affiliation(cellAt(rec, cols.aff)),
			Gender:        cellAt(rec, cols.gender),
		}

		var reasons []string
		if row.FullName == "" {
			reasons = append(reasons, "missing full name")
		}
		switch {
		case row.Email == "":
			reasons = append(reasons, "missing email address")
		case !strings.Contains(row.Email, "@"):
			reasons = append(reasons, "invalid email address")
		}
		if row.Affiliation == "" {
			reasons = append(reasons, "missing affiliation")
		}
		if len(reasons) > 0 {
			result.Errors = append(result.Errors, RowError{
				Line:   line,
				Reason: strings.Join(reasons, "; "),
				Raw:    rec,
			})
			continue
		}

		if firstSeen, dup := seen[row.Email]; dup {
			result.Errors = append(result.Errors, RowError{
				Line:   line,
				Reason: fmt.Sprintf("duplicate email (first appears on row %d)", firstSeen),
				Raw:    rec,
			})
			continue
		}
		seen[row.Email] = line

		result.Rows = append(result.Rows, row)
	}
}
