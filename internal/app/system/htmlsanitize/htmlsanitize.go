// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips unsafe markup from operator-supplied HTML
// such as the site footer. The result is safe to render with
// template.HTML.
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

// getPolicy returns the shared sanitization policy: bluemonday's UGC
// policy extended with table elements, since footers commonly carry
// contact tables.
func getPolicy() *bluemonday.Policy {
	once.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption")
		p.AllowAttrs("colspan", "rowspan").OnElements("th", "td")
		policy = p
	})
	return policy
}

// Sanitize returns s with scripts, event handlers, javascript: URLs, and
// other unsafe constructs removed. Plain text and common formatting tags
// pass through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return getPolicy().Sanitize(s)
}
