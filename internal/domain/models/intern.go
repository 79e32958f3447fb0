// internal/domain/models/intern.go
package models

import "time"

// Intern is one developer intern loaded from a roster.
//
// NOTE:
//   - Email is the identifier; it is stored normalized (trimmed,
//     lower-cased) and compared case-insensitively everywhere.
//   - Ordinal preserves the position of the row in the uploaded roster.
//     The allocator consumes interns in roster order, so the order must
//     survive the round trip through Mongo.
//   - Status is NOT stored on the intern document. It lives in the
//     intern_statuses collection keyed by email, so it survives roster
//     reloads and reassignment.
type Intern struct {
	Email         string `bson:"_id" json:"email"`
	FullName      string `bson:"full_name" json:"full_name"`
	ContactNumber string `bson:"contact_number" json:"contact_number"`
	Affiliation   string `bson:"affiliation" json:"affiliation"`
	Gender        string `bson:"gender,omitempty" json:"gender,omitempty"`
	Ordinal       int    `bson:"ordinal" json:"ordinal"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
