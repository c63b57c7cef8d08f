// Package assistant exposes the AI reconciliation endpoint.
package assistant

import (
	"context"
	"net/http"
	"time"

	"github.com/modos-studio/quotepilot-backend/api/middleware"
	"github.com/modos-studio/quotepilot-backend/api/responses"
	"github.com/modos-studio/quotepilot-backend/api/validators"
	assistantsvc "github.com/modos-studio/quotepilot-backend/internal/assistant"
	"github.com/modos-studio/quotepilot-backend/internal/history"
	pkgerrors "github.com/modos-studio/quotepilot-backend/pkg/errors"
	"github.com/modos-studio/quotepilot-backend/pkg/logger"
	"github.com/modos-studio/quotepilot-backend/pkg/types"
)

const snapshotTimeout = 10 * time.Second

const tagAssistant = "assistant"

// Chat runs one assistant turn over the caller's document. When the model
// replaces the document, a snapshot is written in the background with the
// exchange transcript attached.
func Chat(svc *assistantsvc.Service, historySvc *history.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "assistant service unavailable"))
			return
		}

		var body assistantsvc.ChatRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		resp, err := svc.Chat(r.Context(), userID, body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if resp.UpdatedDocument != nil && historySvc != nil {
			now := time.Now().UnixMilli()
			transcript := types.ChatTranscript{
				{Role: "user", Content: body.Instruction, SentAt: now},
				{Role: "ai", Content: resp.Message, SentAt: now},
			}
			req := history.SaveRequest{
				Document:   *resp.UpdatedDocument,
				Transcript: transcript,
				Tags:       []string{tagAssistant},
			}
			bg := context.WithoutCancel(r.Context())
			go func() {
				ctx, cancel := context.WithTimeout(bg, snapshotTimeout)
				defer cancel()
				if _, err := historySvc.SaveSnapshot(ctx, userID, req); err != nil && logg != nil {
					logg.Error(ctx, "snapshot write failed", err)
				}
			}()
		}

		responses.WriteSuccess(w, resp)
	}
}
