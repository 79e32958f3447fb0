// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	rosterstore "github.com/coderelay/internhub/internal/app/store/rosters"
	statusstore "github.com/coderelay/internhub/internal/app/store/statuses"
	"github.com/coderelay/internhub/internal/app/system/assignment"
	"github.com/coderelay/internhub/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and builds the stores and
// the assignment service around it.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return DBDeps{}, fmt.Errorf("ping MongoDB: %w", err)
	}

	db := client.Database(appCfg.MongoDatabase)
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	rosters := rosterstore.New(db)
	statuses := statusstore.New(db)

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: db,
		Rosters:       rosters,
		Statuses:      statuses,
		Assignments:   assignment.New(rosters, statuses, appCfg.AllocSeed, logger),
	}, nil
}

// EnsureSchema creates the indexes the queries rely on.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.MongoDatabase)
}
