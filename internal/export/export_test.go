package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/modos-studio/quotepilot-backend/internal/quote"
	"github.com/modos-studio/quotepilot-backend/pkg/config"
	pkgerrors "github.com/modos-studio/quotepilot-backend/pkg/errors"
)

func exportTestDocument() quote.Document {
	doc := quote.Document{
		QuoteNo:      "QT-2026-007",
		Date:         "20/02/2026",
		CustomerName: "Khách hàng A",
		QuoteTitle:   "BẢNG BÁO GIÁ",
		Subtitle:     "DỊCH VỤ SẢN XUẤT VIDEO",
		CompanyInfo:  quote.CompanyInfo{Name: "CÔNG TY CỔ PHẦN MODOS", TaxID: "0319333677"},
		BankInfo:     quote.BankInfo{BankName: "VCB", AccountNo: "007", AccountName: "MODOS"},
		Groups: []quote.Group{
			{ID: "01", Title: "SẢN XUẤT", Subtitle: "Giai đoạn quay", Items: []quote.Item{
				{No: 1, Description: "Quay phim", Unit: "Gói", Quantity: 2, UnitPrice: 15000000},
			}},
		},
		Notes: []string{"Báo giá có hiệu lực 30 ngày"},
	}
	quote.Recalculate(&doc)
	return doc
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{30000000, "30.000.000"},
		{-12500000, "-12.500.000"},
	}
	for _, tc := range cases {
		if got := formatMoney(tc.in); got != tc.want {
			t.Fatalf("formatMoney(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	doc := exportTestDocument()
	html, err := renderHTML(doc)
	if err != nil {
		t.Fatalf("renderHTML: %v", err)
	}

	for _, want := range []string{
		"QT-2026-007",
		"SẢN XUẤT",
		"Quay phim",
		"30.000.000",
		"33.000.000",
		quote.BrandPrimaryColor,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered html missing %q", want)
		}
	}
}

func TestRenderHTMLForcesBrandColors(t *testing.T) {
	doc := exportTestDocument()
	doc.Style = &quote.Style{PrimaryColor: "#00FF00", FontFamily: "Poppins"}

	html, err := renderHTML(doc)
	if err != nil {
		t.Fatalf("renderHTML: %v", err)
	}
	if strings.Contains(html, "#00FF00") {
		t.Fatalf("off-brand primary color leaked into output")
	}
	if !strings.Contains(html, "Poppins") {
		t.Fatalf("font family was not applied")
	}
}

func TestRenderFallbackPDF(t *testing.T) {
	data, err := renderFallbackPDF(exportTestDocument())
	if err != nil {
		t.Fatalf("renderFallbackPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output is not a pdf")
	}
}

func TestExportPDFFallbackProducesResult(t *testing.T) {
	svc, err := NewService(ServiceParams{Config: config.ExportConfig{}})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	result, err := svc.exportPDFFallback(exportTestDocument(), ErrChromeUnavailable)
	if err != nil {
		t.Fatalf("exportPDFFallback: %v", err)
	}
	if !bytes.HasPrefix(result.Data, []byte("%PDF")) {
		t.Fatalf("output is not a pdf")
	}
	if result.Renderer != rendererGofpdf {
		t.Fatalf("renderer = %q, want %q", result.Renderer, rendererGofpdf)
	}
	if result.Filename != "QT-2026-007.pdf" {
		t.Fatalf("unexpected filename %q", result.Filename)
	}
	if result.MimeType != "application/pdf" {
		t.Fatalf("unexpected mime type %q", result.MimeType)
	}
}

func TestDataURL(t *testing.T) {
	got := dataURL("<p>xin chào</p>")
	if !strings.HasPrefix(got, "data:text/html;charset=utf-8,") {
		t.Fatalf("missing data url prefix: %q", got)
	}
	if strings.ContainsAny(got, " +<>") {
		t.Fatalf("unencoded characters in %q", got)
	}
	if !strings.Contains(got, "%3Cp%3E") {
		t.Fatalf("angle brackets not percent-encoded: %q", got)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"QT-2026-007", "QT-2026-007"},
		{"QT-2026-007_SHARED_abc", "QT-2026-007_SHARED_abc"},
		{"báo giá 01", "bo-gi-01"},
		{"///", "quotation"},
	}
	for _, tc := range cases {
		if got := sanitizeFilename(tc.in); got != tc.want {
			t.Fatalf("sanitizeFilename(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	svc, err := NewService(ServiceParams{Config: config.ExportConfig{}})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	_, err = svc.Export(context.Background(), Request{Document: exportTestDocument(), Format: "docx"})
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
