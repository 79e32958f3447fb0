// internal/app/store/statuses/statusstore.go

// Package statusstore persists intern status toggles, keyed by normalized
// email. The collection is never cleared on roster upload, so a toggle
// made before a re-upload still applies afterwards.
package statusstore

import (
	"context"
	"time"

	"github.com/coderelay/internhub/internal/app/system/normalize"
	"github.com/coderelay/internhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the intern_statuses collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new status store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("intern_statuses")}
}

// Get returns the persisted status for the given email and whether a
// document exists. Callers fall back to the default status when ok is
// false.
func (s *Store) Get(ctx context.Context, email string) (string, bool, error) {
	var doc models.InternStatus
	err := s.c.FindOne(ctx, bson.M{"_id": normalize.Email(email)}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Status, true, nil
}

// Set upserts the status for the given email. Writing the value an
// intern already has is a no-op apart from the timestamp.
func (s *Store) Set(ctx context.Context, email, statusValue string) error {
	update := bson.M{
		"$set": bson.M{
			"status":     statusValue,
			"updated_at": time.Now().UTC(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": normalize.Email(email)}, update, opts)
	return err
}

// LoadAll returns every persisted status keyed by email. Used to build
// dashboard counts in one query instead of one lookup per intern.
func (s *Store) LoadAll(ctx context.Context) (map[string]string, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[string]string)
	for cur.Next(ctx) {
		var doc models.InternStatus
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out[doc.Email] = doc.Status
	}
	return out, cur.Err()
}
