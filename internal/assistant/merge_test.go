package assistant

import (
	"encoding/json"
	"testing"

	"github.com/modos-studio/quotepilot-backend/internal/quote"
)

func baselineDocument() quote.Document {
	doc := quote.Document{
		QuoteNo:      "QT-2026-005",
		Date:         "10/02/2026",
		CustomerName: "Khách A",
		CompanyName:  "Công ty A",
		ProjectName:  "Dự án A",
		QuoteTitle:   "BẢNG BÁO GIÁ",
		CompanyInfo: quote.CompanyInfo{
			Name:    "CÔNG TY CỔ PHẦN MODOS",
			TaxID:   "0319333677",
			Address: "TP.HCM",
			Email:   "info@modos.space",
			Phone:   "0559 139 749",
		},
		BankInfo: quote.BankInfo{BankName: "VCB", AccountNo: "007", AccountName: "MODOS"},
		Groups: []quote.Group{
			{ID: "01", Title: "SẢN XUẤT", Items: []quote.Item{
				{No: 1, Description: "Quay phim", Unit: "Gói", Quantity: 1, UnitPrice: 10000000},
			}},
		},
		Notes: []string{"Báo giá có hiệu lực 30 ngày"},
		Style: &quote.Style{
			FontFamily:   "Inter",
			BodyFontSize: 12,
			PrimaryColor: quote.BrandPrimaryColor,
		},
	}
	quote.Recalculate(&doc)
	return doc
}

func TestMergeDocumentShallowMergePreservesOmittedFields(t *testing.T) {
	current := baselineDocument()
	raw := json.RawMessage(`{
		"customerName": "Khách B",
		"companyInfo": {"email": "sales@modos.space"}
	}`)

	merged, err := mergeDocument(current, raw)
	if err != nil {
		t.Fatalf("mergeDocument: %v", err)
	}

	if merged.CustomerName != "Khách B" {
		t.Fatalf("customerName = %q", merged.CustomerName)
	}
	if merged.CompanyInfo.Email != "sales@modos.space" {
		t.Fatalf("email = %q", merged.CompanyInfo.Email)
	}
	if merged.CompanyInfo.Name != current.CompanyInfo.Name {
		t.Fatalf("omitted company name changed: %q", merged.CompanyInfo.Name)
	}
	if merged.CompanyInfo.TaxID != current.CompanyInfo.TaxID {
		t.Fatalf("omitted tax id changed: %q", merged.CompanyInfo.TaxID)
	}
	if merged.BankInfo != current.BankInfo {
		t.Fatalf("bank info changed without a patch")
	}
	if len(merged.Notes) != 1 || merged.Notes[0] != current.Notes[0] {
		t.Fatalf("notes changed without a patch: %v", merged.Notes)
	}
}

func TestMergeDocumentRecalculationOverridesModelArithmetic(t *testing.T) {
	current := baselineDocument()
	raw := json.RawMessage(`{
		"groups": [
			{"id": "01", "title": "SẢN XUẤT", "items": [
				{"description": "Quay phim", "unit": "Gói", "quantity": 2, "unitPrice": "15.000.000", "total": 1}
			]},
			{"title": "HẬU KỲ", "items": [
				{"description": "Dựng phim", "unit": "Gói", "quantity": 1, "unitPrice": 5000000.0}
			]}
		],
		"totalQuote": 999,
		"vat": 999,
		"grandTotal": 999
	}`)

	merged, err := mergeDocument(current, raw)
	if err != nil {
		t.Fatalf("mergeDocument: %v", err)
	}

	if len(merged.Groups) != 2 {
		t.Fatalf("groups = %d", len(merged.Groups))
	}
	if got := merged.Groups[0].Items[0].UnitPrice; got != 15000000 {
		t.Fatalf("string price parsed to %d", got)
	}
	if got := merged.Groups[0].Subtotal; got != 30000000 {
		t.Fatalf("subtotal = %d", got)
	}
	if merged.Groups[1].ID == "" {
		t.Fatalf("missing group id was not defaulted")
	}
	if got := merged.TotalQuote; got != 35000000 {
		t.Fatalf("totalQuote = %d", got)
	}
	if got := merged.VAT; got != 3500000 {
		t.Fatalf("vat = %d", got)
	}
	if got := merged.GrandTotal; got != 38500000 {
		t.Fatalf("grandTotal = %d", got)
	}
	if merged.Groups[1].Items[0].No != 2 {
		t.Fatalf("items were not renumbered across groups: %d", merged.Groups[1].Items[0].No)
	}
}

func TestMergeDocumentClampsStyle(t *testing.T) {
	current := baselineDocument()
	raw := json.RawMessage(`{
		"style": {"primaryColor": "#00FF00", "bodyFontSize": 60, "fontFamily": "Poppins"}
	}`)

	merged, err := mergeDocument(current, raw)
	if err != nil {
		t.Fatalf("mergeDocument: %v", err)
	}

	if merged.Style.PrimaryColor != quote.BrandPrimaryColor {
		t.Fatalf("primary color escaped the clamp: %q", merged.Style.PrimaryColor)
	}
	if merged.Style.BodyFontSize != quote.MaxBodyFontSize {
		t.Fatalf("body font size = %d", merged.Style.BodyFontSize)
	}
	if merged.Style.FontFamily != "Poppins" {
		t.Fatalf("fontFamily = %q", merged.Style.FontFamily)
	}
}

func TestMergeDocumentLeavesInputUntouched(t *testing.T) {
	current := baselineDocument()
	raw := json.RawMessage(`{"groups": [], "notes": []}`)

	merged, err := mergeDocument(current, raw)
	if err != nil {
		t.Fatalf("mergeDocument: %v", err)
	}
	if len(merged.Groups) != 0 || merged.GrandTotal != 0 {
		t.Fatalf("wholesale replacement did not apply")
	}
	if len(current.Groups) != 1 || current.GrandTotal == 0 {
		t.Fatalf("input document was mutated")
	}
}

func TestMergeDocumentRejectsMalformedPayload(t *testing.T) {
	if _, err := mergeDocument(baselineDocument(), json.RawMessage(`"just a string"`)); err == nil {
		t.Fatalf("expected error for non-object payload")
	}
}
