// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"time"

	"github.com/coderelay/internhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// settingsID is the _id of the single settings document.
const settingsID = "site"

// Store provides access to the site_settings collection. The site has
// exactly one settings document.
type Store struct {
	c *mongo.Collection
}

// New creates a new settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("site_settings")}
}

// Get returns the site settings, or defaults if none have been saved.
func (s *Store) Get(ctx context.Context) (models.SiteSettings, error) {
	var settings models.SiteSettings
	err := s.c.FindOne(ctx, bson.M{"_id": settingsID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		return models.SiteSettings{
			ID:       settingsID,
			SiteName: models.DefaultSiteName,
		}, nil
	}
	if err != nil {
		return models.SiteSettings{}, err
	}
	return settings, nil
}

// Save upserts the site settings. FooterHTML is expected to be sanitized
// by the caller before it reaches the store.
func (s *Store) Save(ctx context.Context, settings models.SiteSettings) error {
	update := bson.M{
		"$set": bson.M{
			"site_name":   settings.SiteName,
			"footer_html": settings.FooterHTML,
			"updated_at":  time.Now().UTC(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, bson.M{"_id": settingsID}, update, opts)
	return err
}
