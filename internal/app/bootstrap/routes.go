// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/coderelay/internhub/internal/app/features/errors"
	healthfeature "github.com/coderelay/internhub/internal/app/features/health"
	homefeature "github.com/coderelay/internhub/internal/app/features/home"
	leadsfeature "github.com/coderelay/internhub/internal/app/features/leads"
	settingsfeature "github.com/coderelay/internhub/internal/app/features/settings"
	unassignedfeature "github.com/coderelay/internhub/internal/app/features/unassigned"
	uploadrosterfeature "github.com/coderelay/internhub/internal/app/features/uploadroster"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE
// app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. InternHub initializes the
// template engine and mounts the feature routers: the overall dashboard,
// the tech-lead dashboard, roster uploads, the unassigned lists, site
// settings, and health.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Assignments, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Overall dashboard
	homeHandler := homefeature.NewHandler(deps.MongoDatabase, deps.Assignments, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Tech-lead dashboard
	leadsHandler := leadsfeature.NewHandler(deps.MongoDatabase, deps.Assignments, logger)
	r.Mount("/leads", leadsfeature.Routes(leadsHandler))

	// Roster uploads
	uploadHandler := uploadrosterfeature.NewHandler(deps.MongoDatabase, deps.Rosters, deps.Assignments, logger)
	r.Mount("/upload", uploadrosterfeature.Routes(uploadHandler))

	// Unassigned lists and CSV downloads
	unassignedHandler := unassignedfeature.NewHandler(deps.MongoDatabase, deps.Assignments, logger)
	r.Mount("/unassigned", unassignedfeature.Routes(unassignedHandler))

	// Site settings
	settingsHandler := settingsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/settings", settingsfeature.Routes(settingsHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
