package assistant

import "github.com/modos-studio/quotepilot-backend/internal/quote"

// Attachment is one uploaded file forwarded to the model. Data is base64
// without a data-URL prefix.
type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type" validate:"required"`
	Data     string `json:"data" validate:"required"`
}

// ChatRequest is one assistant turn over the caller's current document.
type ChatRequest struct {
	Instruction   string         `json:"instruction" validate:"required"`
	Document      quote.Document `json:"document"`
	Attachments   []Attachment   `json:"attachments"`
	Model         string         `json:"model"`
	ThinkingLevel string         `json:"thinking_level"`
}

// ChatResponse carries the assistant's message and, when the model chose to
// act rather than propose, the reconciled replacement document.
type ChatResponse struct {
	Message         string          `json:"message"`
	UpdatedDocument *quote.Document `json:"updated_document,omitempty"`
}
