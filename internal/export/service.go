package export

import (
	"context"
	"errors"
	"time"

	"go.uber.org/multierr"

	"github.com/modos-studio/quotepilot-backend/internal/quote"
	"github.com/modos-studio/quotepilot-backend/pkg/config"
	pkgerrors "github.com/modos-studio/quotepilot-backend/pkg/errors"
	"github.com/modos-studio/quotepilot-backend/pkg/logger"
	"github.com/modos-studio/quotepilot-backend/pkg/metrics"
)

// ServiceParams groups dependencies for the export service.
type ServiceParams struct {
	Logger  *logger.Logger
	Metrics *metrics.ExportMetrics
	Config  config.ExportConfig
}

// Service renders documents to PDF and PNG.
type Service struct {
	logg    *logger.Logger
	metrics *metrics.ExportMetrics
	chrome  *chromeRenderer
}

// NewService builds an export service.
func NewService(params ServiceParams) (*Service, error) {
	m := params.Metrics
	if m == nil {
		m = metrics.NewExportMetrics(nil)
	}
	return &Service{
		logg:    params.Logger,
		metrics: m,
		chrome:  &chromeRenderer{cfg: params.Config},
	}, nil
}

// Export rasterizes the posted document. Totals are recalculated before
// rendering so a stale client document cannot print wrong numbers. If
// chromium is missing, PDF degrades to the gofpdf layout and PNG fails.
func (s *Service) Export(ctx context.Context, req Request) (*Result, error) {
	doc := req.Document.Clone()
	quote.Recalculate(&doc)

	html, err := renderHTML(doc)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render template")
	}

	switch req.Format {
	case FormatPDF:
		return s.exportPDF(ctx, doc, html)
	case FormatPNG:
		return s.exportPNG(ctx, html, doc.QuoteNo)
	default:
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "format must be pdf or png")
	}
}

func (s *Service) exportPDF(ctx context.Context, doc quote.Document, html string) (*Result, error) {
	if s.chrome.available() {
		start := time.Now()
		data, err := s.chrome.renderPDF(ctx, html)
		s.metrics.ObserveDuration(string(FormatPDF), rendererChrome, time.Since(start))
		if err == nil {
			s.metrics.IncSuccess(string(FormatPDF), rendererChrome)
			return pdfResult(data, doc.QuoteNo, rendererChrome), nil
		}
		s.metrics.IncFailure(string(FormatPDF), rendererChrome)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "pdf render failed")
	}

	if s.logg != nil {
		s.logg.Warn(ctx, "chromium unavailable, using simplified pdf layout")
	}
	return s.exportPDFFallback(doc, ErrChromeUnavailable)
}

func (s *Service) exportPDFFallback(doc quote.Document, chromeErr error) (*Result, error) {
	start := time.Now()
	data, fallbackErr := renderFallbackPDF(doc)
	s.metrics.ObserveDuration(string(FormatPDF), rendererGofpdf, time.Since(start))
	if fallbackErr != nil {
		s.metrics.IncFailure(string(FormatPDF), rendererGofpdf)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, multierr.Append(chromeErr, fallbackErr), "pdf render failed")
	}
	s.metrics.IncSuccess(string(FormatPDF), rendererGofpdf)
	return pdfResult(data, doc.QuoteNo, rendererGofpdf), nil
}

func (s *Service) exportPNG(ctx context.Context, html, quoteNo string) (*Result, error) {
	start := time.Now()
	data, err := s.chrome.renderPNG(ctx, html)
	s.metrics.ObserveDuration(string(FormatPNG), rendererChrome, time.Since(start))
	if err != nil {
		s.metrics.IncFailure(string(FormatPNG), rendererChrome)
		if errors.Is(err, ErrChromeUnavailable) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "png export needs chromium")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "png render failed")
	}
	s.metrics.IncSuccess(string(FormatPNG), rendererChrome)
	return &Result{
		Data:     data,
		Filename: sanitizeFilename(quoteNo) + ".png",
		MimeType: "image/png",
		Renderer: rendererChrome,
	}, nil
}

func pdfResult(data []byte, quoteNo, renderer string) *Result {
	return &Result{
		Data:     data,
		Filename: sanitizeFilename(quoteNo) + ".pdf",
		MimeType: "application/pdf",
		Renderer: renderer,
	}
}

// sanitizeFilename keeps quote numbers usable as download names.
func sanitizeFilename(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			out = append(out, r)
		case r == ' ':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "quotation"
	}
	if len(out) > 50 {
		out = out[:50]
	}
	return string(out)
}
