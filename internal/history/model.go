package history

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/modos-studio/quotepilot-backend/internal/quote"
	"github.com/modos-studio/quotepilot-backend/pkg/db/models"
	"github.com/modos-studio/quotepilot-backend/pkg/types"
)

func newRevisionModel(userID uuid.UUID, doc quote.Document, req SaveRequest) *models.Quotation {
	transcript := req.Transcript
	if transcript == nil {
		transcript = types.ChatTranscript{}
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	return &models.Quotation{
		UserID:     userID,
		QuoteNo:    doc.QuoteNo,
		Title:      revisionTitle(doc),
		Document:   types.NewQuoteDocument(doc),
		Transcript: transcript,
		Tags:       pq.StringArray(tags),
	}
}

func newShareModel(userID uuid.UUID, token string, doc quote.Document) *models.QuoteShare {
	return &models.QuoteShare{
		UserID:   userID,
		Token:    token,
		QuoteNo:  doc.QuoteNo,
		Document: types.NewQuoteDocument(doc),
	}
}

func revisionTitle(doc quote.Document) string {
	if title := strings.TrimSpace(doc.ProjectName); title != "" {
		return title
	}
	if title := strings.TrimSpace(doc.QuoteTitle); title != "" {
		return title
	}
	return doc.QuoteNo
}
