// internal/domain/models/sitesettings.go
package models

import "time"

// DefaultSiteName is used when no settings document exists yet.
const DefaultSiteName = "InternHub"

// SiteSettings holds the editable site chrome. FooterHTML is sanitized
// before it is stored, so templates may render it as trusted HTML.
type SiteSettings struct {
	ID         string    `bson:"_id" json:"id"` // single document, fixed id "site"
	SiteName   string    `bson:"site_name" json:"site_name"`
	FooterHTML string    `bson:"footer_html" json:"footer_html"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
