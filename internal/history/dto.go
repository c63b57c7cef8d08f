package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/modos-studio/quotepilot-backend/internal/quote"
	"github.com/modos-studio/quotepilot-backend/pkg/types"
)

// SaveRequest captures one document revision to persist.
type SaveRequest struct {
	Document   quote.Document       `json:"document" validate:"required"`
	Transcript types.ChatTranscript `json:"transcript,omitempty"`
	Tags       []string             `json:"tags,omitempty"`
}

// RevisionDTO is the transport shape of a stored revision.
type RevisionDTO struct {
	ID        uuid.UUID      `json:"id"`
	QuoteNo   string         `json:"quoteNo"`
	Title     string         `json:"title"`
	Document  quote.Document `json:"document"`
	Tags      []string       `json:"tags"`
	CreatedAt time.Time      `json:"created_at"`
}

// RevisionSummary omits the document body for history listings.
type RevisionSummary struct {
	ID         uuid.UUID `json:"id"`
	QuoteNo    string    `json:"quoteNo"`
	Title      string    `json:"title"`
	GrandTotal int64     `json:"grandTotal"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"created_at"`
}

// ShareRequest carries the document to freeze into a public snapshot.
type ShareRequest struct {
	Document quote.Document `json:"document" validate:"required"`
}

// ShareDTO describes a minted public snapshot.
type ShareDTO struct {
	Token     string    `json:"token"`
	QuoteNo   string    `json:"quoteNo"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}

// SharedView is the read-only payload served on the public link.
type SharedView struct {
	QuoteNo   string         `json:"quoteNo"`
	Document  quote.Document `json:"document"`
	ViewCount int64          `json:"viewCount"`
	SharedAt  time.Time      `json:"shared_at"`
}
