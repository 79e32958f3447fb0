// internal/domain/models/techlead.go
package models

import "time"

// TechLead is one tech lead loaded from a roster. Email is the identifier,
// stored normalized; Ordinal preserves roster order for the allocator.
type TechLead struct {
	Email         string `bson:"_id" json:"email"`
	FullName      string `bson:"full_name" json:"full_name"`
	ContactNumber string `bson:"contact_number" json:"contact_number"`
	Affiliation   string `bson:"affiliation" json:"affiliation"`
	Gender        string `bson:"gender,omitempty" json:"gender,omitempty"`
	Ordinal       int    `bson:"ordinal" json:"ordinal"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
