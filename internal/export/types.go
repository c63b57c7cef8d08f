// Package export renders a quotation document to PDF or PNG. Rendering goes
// through an HTML template and headless chrome; when chromium is not
// installed, PDF falls back to a simplified gofpdf layout.
package export

import (
	"errors"

	"github.com/modos-studio/quotepilot-backend/internal/quote"
)

// Format selects the export output.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatPNG Format = "png"
)

// Renderer labels used in logs and metrics.
const (
	rendererChrome = "chrome"
	rendererGofpdf = "gofpdf"
)

// ErrChromeUnavailable reports that no chromium binary could be found.
var ErrChromeUnavailable = errors.New("chromium not installed")

// Request is one export operation over a fully materialized document.
type Request struct {
	Document quote.Document `json:"document"`
	Format   Format         `json:"format" validate:"required,oneof=pdf png"`
}

// Result carries the rendered bytes and download metadata.
type Result struct {
	Data     []byte `json:"-"`
	Filename string `json:"filename"`
	MimeType string `json:"mime_type"`
	Renderer string `json:"-"`
}
