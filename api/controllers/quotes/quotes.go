package quotes

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/modos-studio/quotepilot-backend/api/middleware"
	"github.com/modos-studio/quotepilot-backend/api/responses"
	"github.com/modos-studio/quotepilot-backend/api/validators"
	"github.com/modos-studio/quotepilot-backend/internal/history"
	"github.com/modos-studio/quotepilot-backend/internal/quote"
	pkgerrors "github.com/modos-studio/quotepilot-backend/pkg/errors"
	"github.com/modos-studio/quotepilot-backend/pkg/logger"
)

const dateLayout = "02/01/2006"

// Template serves a fresh working document seeded with today's date and the
// caller's next quote number.
func Template(svc *history.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "history service unavailable"))
			return
		}

		doc, err := svc.Template(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		doc.Date = time.Now().Format(dateLayout)
		quote.Recalculate(&doc)
		responses.WriteSuccess(w, doc)
	}
}

type recalculateRequest struct {
	Document quote.Document `json:"document"`
}

// Recalculate runs the pricing engine over a posted document and returns it
// with all derived values rebuilt and items renumbered.
func Recalculate(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body recalculateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		doc := body.Document.Clone()
		quote.RecalculateRenumber(&doc)
		responses.WriteSuccess(w, doc)
	}
}

type mutateRequest struct {
	Document quote.Document `json:"document"`
	Mutation quote.Mutation `json:"mutation"`
}

// Mutate applies one named editing operator to the posted document.
func Mutate(logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body mutateRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		doc, err := quote.Apply(body.Document, body.Mutation)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid mutation").WithDetails(map[string]string{"error": err.Error()}))
			return
		}
		responses.WriteSuccess(w, doc)
	}
}

// HistoryList returns the caller's saved snapshots, newest first.
func HistoryList(svc *history.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "history service unavailable"))
			return
		}

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 0 {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "limit must be a non-negative integer"))
				return
			}
			limit = parsed
		}

		revisions, err := svc.List(r.Context(), middleware.UserIDFromContext(r.Context()), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, revisions)
	}
}

// HistoryDetail returns one full saved snapshot.
func HistoryDetail(svc *history.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "history service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "revisionId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid revision id"))
			return
		}

		revision, err := svc.Get(r.Context(), middleware.UserIDFromContext(r.Context()), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, revision)
	}
}
