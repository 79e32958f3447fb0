// internal/app/system/status/status.go

// Package status defines the two intern status values and helpers around
// them. An intern with no persisted entry is Active.
package status

import "strings"

const (
	Active   = "active"
	Inactive = "inactive"
)

// Default is the status resolved for interns with no persisted entry.
const Default = Active

// IsValid reports whether s is one of the two allowed values.
func IsValid(s string) bool {
	return s == Active || s == Inactive
}

// Normalize lower-cases and trims s so form input like "Active " matches
// the stored value. Returns "" for anything that is not a valid status.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if !IsValid(s) {
		return ""
	}
	return s
}
