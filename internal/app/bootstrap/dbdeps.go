// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	rosterstore "github.com/coderelay/internhub/internal/app/store/rosters"
	statusstore "github.com/coderelay/internhub/internal/app/store/statuses"
	"github.com/coderelay/internhub/internal/app/system/assignment"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
// Extend this struct as your app evolves.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	Rosters  *rosterstore.Store
	Statuses *statusstore.Store

	// Assignments holds the in-memory allocation built from the
	// persisted rosters.
	Assignments *assignment.Service
}
