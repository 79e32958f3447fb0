// internal/app/store/rosters/rosterstore.go

// Package rosterstore persists the two uploaded rosters. Each upload
// replaces the matching collection wholesale; roster order is preserved
// through the Ordinal field so the allocation stays deterministic across
// restarts.
package rosterstore

import (
	"context"
	"time"

	"github.com/coderelay/internhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	internsCollection = "interns"
	leadsCollection   = "tech_leads"
)

// Store provides access to the interns and tech_leads collections.
type Store struct {
	interns *mongo.Collection
	leads   *mongo.Collection
}

// New creates a new roster store.
func New(db *mongo.Database) *Store {
	return &Store{
		interns: db.Collection(internsCollection),
		leads:   db.Collection(leadsCollection),
	}
}

// ReplaceInterns drops the current intern roster and inserts the given
// one. Ordinal and CreatedAt are stamped here; callers pass records in
// roster order with normalized emails.
func (s *Store) ReplaceInterns(ctx context.Context, interns []models.Intern) error {
	if _, err := s.interns.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(interns) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(interns))
	for i := range interns {
		interns[i].Ordinal = i
		interns[i].CreatedAt = now
		docs = append(docs, interns[i])
	}
	_, err := s.interns.InsertMany(ctx, docs)
	return err
}

// ReplaceLeads drops the current tech-lead roster and inserts the given
// one.
func (s *Store) ReplaceLeads(ctx context.Context, leads []models.TechLead) error {
	if _, err := s.leads.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(leads) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(leads))
	for i := range leads {
		leads[i].Ordinal = i
		leads[i].CreatedAt = now
		docs = append(docs, leads[i])
	}
	_, err := s.leads.InsertMany(ctx, docs)
	return err
}

// ListInterns returns the intern roster in upload order.
func (s *Store) ListInterns(ctx context.Context) ([]models.Intern, error) {
	opts := options.Find().SetSort(bson.D{{Key: "ordinal", Value: 1}})
	cur, err := s.interns.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Intern
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListLeads returns the tech-lead roster in upload order.
func (s *Store) ListLeads(ctx context.Context) ([]models.TechLead, error) {
	opts := options.Find().SetSort(bson.D{{Key: "ordinal", Value: 1}})
	cur, err := s.leads.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.TechLead
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Counts returns the sizes of both rosters.
func (s *Store) Counts(ctx context.Context) (interns, leads int64, err error) {
	interns, err = s.interns.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, err
	}
	leads, err = s.leads.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, err
	}
	return interns, leads, nil
}
