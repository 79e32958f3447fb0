// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// InternHub rebuilds the allocation from the persisted rosters here so
// dashboards work immediately after a restart.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := deps.Assignments.Reload(ctx); err != nil {
		logger.Error("initial allocation failed", zap.Error(err))
		return err
	}
	return nil
}
