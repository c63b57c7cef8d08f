package quotes

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/modos-studio/quotepilot-backend/api/middleware"
	"github.com/modos-studio/quotepilot-backend/api/responses"
	"github.com/modos-studio/quotepilot-backend/api/validators"
	"github.com/modos-studio/quotepilot-backend/internal/export"
	"github.com/modos-studio/quotepilot-backend/internal/history"
	pkgerrors "github.com/modos-studio/quotepilot-backend/pkg/errors"
	"github.com/modos-studio/quotepilot-backend/pkg/logger"
)

const snapshotTimeout = 10 * time.Second

// nextNumberHeader tells the client which quote number to use next after a
// completed export.
const nextNumberHeader = "X-Next-Quote-No"

const tagDownloaded = "downloaded"

// Export rasterizes the posted document. Only after a successful render is
// the snapshot persisted and the next number advanced; render failures leave
// history untouched.
func Export(exportSvc *export.Service, historySvc *history.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if exportSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "export service unavailable"))
			return
		}

		var body export.Request
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := exportSvc.Export(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		saveSnapshotAsync(r.Context(), historySvc, logg, middleware.UserIDFromContext(r.Context()), history.SaveRequest{
			Document: body.Document,
			Tags:     []string{tagDownloaded},
		})

		w.Header().Set(nextNumberHeader, history.NextNumber(body.Document.QuoteNo))
		responses.WriteBlob(w, result.MimeType, result.Filename, result.Data)
	}
}

// saveSnapshotAsync persists a revision without blocking or failing the
// request. Failures are logged only.
func saveSnapshotAsync(ctx context.Context, svc *history.Service, logg *logger.Logger, userID uuid.UUID, req history.SaveRequest) {
	if svc == nil {
		return
	}
	bg := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(bg, snapshotTimeout)
		defer cancel()
		if _, err := svc.SaveSnapshot(ctx, userID, req); err != nil && logg != nil {
			logg.Error(ctx, "snapshot write failed", err)
		}
	}()
}
