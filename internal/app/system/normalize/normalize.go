// internal/app/system/normalize/normalize.go

// Package normalize holds the small string normalizations used for
// matching roster records. Emails are the identifiers on both rosters and
// must compare case-insensitively; affiliations are matched exactly as
// uploaded, so only surrounding whitespace is removed.
package normalize

import "strings"

// Email trims and lower-cases an email address for use as an identifier.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Affiliation trims surrounding whitespace. The college name itself is
// matched exactly (no folding), per the allocation contract.
func Affiliation(s string) string {
	return strings.TrimSpace(s)
}
