// internal/app/features/uploadroster/handler.go

// Package uploadroster serves the roster upload flow: pick a file, see a
// parsed preview with any row errors, then confirm to replace the roster
// and rebuild the allocation.
package uploadroster

import (
	"context"
	"net/http"

	errorspage "github.com/coderelay/internhub/internal/app/features/errors"
	rosterstore "github.com/coderelay/internhub/internal/app/store/rosters"
	"github.com/coderelay/internhub/internal/app/system/assignment"
	"github.com/coderelay/internhub/internal/app/system/timeouts"
	"github.com/coderelay/internhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// maxUploadBytes caps the multipart form size for roster files.
const maxUploadBytes = 10 << 20 // 10 MiB

// Handler holds dependencies for the upload feature.
type Handler struct {
	DB      *mongo.Database
	Rosters *rosterstore.Store
	Service *assignment.Service
	Log     *zap.Logger
	ErrLog  *errorspage.ErrorLogger
}

// NewHandler constructs an uploadroster Handler.
func NewHandler(db *mongo.Database, rosters *rosterstore.Store, svc *assignment.Service, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Rosters: rosters,
		Service: svc,
		Log:     logger,
		ErrLog:  errorspage.NewErrorLogger(logger),
	}
}

// Form handles GET /upload: the two upload forms with current roster
// counts.
func (h *Handler) Form(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	data := h.baseData(ctx, r)
	templates.Render(w, r, "upload_rosters", data)
}

// baseData builds the common view model with current roster counts.
// Count failures degrade to zeros rather than failing the page.
func (h *Handler) baseData(ctx context.Context, r *http.Request) UploadData {
	data := UploadData{
		BaseVM: viewdata.NewBaseVM(r, h.DB, "Upload Rosters", "/"),
	}
	interns, leads, err := h.Rosters.Counts(ctx)
	if err != nil {
		h.Log.Warn("uploadroster: counting rosters failed", zap.Error(err))
		return data
	}
	data.InternCount = interns
	data.LeadCount = leads
	return data
}
