// internal/app/features/settings/handler.go

// Package settings lets the operator edit the site chrome: the site name
// and the footer HTML shown on every page. Footer markup is sanitized
// before it is stored.
package settings

import (
	"context"
	"net/http"
	"strings"

	errorspage "github.com/coderelay/internhub/internal/app/features/errors"
	settingsstore "github.com/coderelay/internhub/internal/app/store/settings"
	"github.com/coderelay/internhub/internal/app/system/htmlsanitize"
	"github.com/coderelay/internhub/internal/app/system/timeouts"
	"github.com/coderelay/internhub/internal/app/system/viewdata"
	"github.com/coderelay/internhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler holds dependencies for the settings feature.
type Handler struct {
	DB     *mongo.Database
	Store  *settingsstore.Store
	Log    *zap.Logger
	ErrLog *errorspage.ErrorLogger
}

// NewHandler constructs a settings Handler.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Store:  settingsstore.New(db),
		Log:    logger,
		ErrLog: errorspage.NewErrorLogger(logger),
	}
}

type pageData struct {
	viewdata.BaseVM
	SettingsSiteName string
	FooterSource     string
	Saved            bool
	ErrorMessage     string
}

// Edit handles GET /settings: the edit form with current values.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	current, err := h.Store.Get(ctx)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "settings: loading failed", err,
			"Could not load the site settings. Please try again.", "/")
		return
	}

	data := pageData{
		BaseVM:           viewdata.NewBaseVM(r, h.DB, "Site Settings", "/"),
		SettingsSiteName: current.SiteName,
		FooterSource:     current.FooterHTML,
		Saved:            r.URL.Query().Get("saved") == "1",
	}
	templates.Render(w, r, "settings_edit", data)
}

// Save handles POST /settings: validate, sanitize the footer, persist,
// and redirect back to the form.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		errorspage.RenderBadRequest(w, r, "Could not read the submitted form.", "/settings")
		return
	}

	siteName := strings.TrimSpace(r.PostFormValue("site_name"))
	if siteName == "" {
		siteName = models.DefaultSiteName
	}
	footer := htmlsanitize.Sanitize(r.PostFormValue("footer_html"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	err := h.Store.Save(ctx, models.SiteSettings{
		SiteName:   siteName,
		FooterHTML: footer,
	})
	if err != nil {
		h.ErrLog.LogServerError(w, r, "settings: saving failed", err,
			"Could not save the site settings. Please try again.", "/settings")
		return
	}

	h.Log.Info("site settings updated", zap.String("site_name", siteName))
	http.Redirect(w, r, "/settings?saved=1", http.StatusSeeOther)
}
