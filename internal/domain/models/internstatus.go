// internal/domain/models/internstatus.go
package models

import "time"

// InternStatus records an explicit status toggle for one intern, keyed by
// normalized email. Interns with no document are treated as active.
// Status documents outlive roster reloads, so a toggle survives a
// re-upload.
type InternStatus struct {
	Email     string    `bson:"_id" json:"email"`
	Status    string    `bson:"status" json:"status"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
