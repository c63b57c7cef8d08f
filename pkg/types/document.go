package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/modos-studio/quotepilot-backend/internal/quote"
)

// QuoteDocument persists a full quotation document as JSONB.
type QuoteDocument struct {
	quote.Document
}

// NewQuoteDocument wraps a document for storage.
func NewQuoteDocument(d quote.Document) QuoteDocument {
	return QuoteDocument{Document: d}
}

// Value serializes the document to JSON.
func (q QuoteDocument) Value() (driver.Value, error) {
	return json.Marshal(q.Document)
}

// Scan decodes JSONB into the document.
func (q *QuoteDocument) Scan(value interface{}) error {
	if value == nil {
		*q = QuoteDocument{}
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded quote.Document
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	q.Document = decoded
	return nil
}

// ChatMessage is one turn of the assistant transcript attached to a quote.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
	SentAt  int64  `json:"sentAt,omitempty"`
}

// ChatTranscript is a message slice marshaled as JSONB.
type ChatTranscript []ChatMessage

// Value serializes the transcript to JSON.
func (c ChatTranscript) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

// Scan decodes JSONB into the transcript.
func (c *ChatTranscript) Scan(value interface{}) error {
	if value == nil {
		*c = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded ChatTranscript
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*c = decoded
	return nil
}

func asJSON(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported scan type %T", value)
	}
}
