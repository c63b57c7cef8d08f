package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/modos-studio/quotepilot-backend/internal/quote"
)

// renderFallbackPDF produces a simplified tabular PDF without chrome. Core
// fonts only, so Vietnamese diacritics are approximated by the cp1252
// translator; layout and custom fonts from the HTML template are dropped.
func renderFallbackPDF(doc quote.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.QuoteTitle+" "+doc.QuoteNo, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(doc.QuoteTitle))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, tr(fmt.Sprintf("So: %s  ·  Ngay: %s", doc.QuoteNo, doc.Date)))
	pdf.Ln(5)
	if doc.ProjectName != "" {
		pdf.Cell(0, 5, tr("Du an: "+doc.ProjectName))
		pdf.Ln(5)
	}
	pdf.Cell(0, 5, tr("Khach hang: "+doc.CustomerName))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.Cell(12, 7, "STT")
	pdf.Cell(93, 7, tr("Hang muc"))
	pdf.Cell(15, 7, tr("DVT"))
	pdf.CellFormat(12, 7, "SL", "", 0, "R", false, 0, "")
	pdf.CellFormat(28, 7, tr("Don gia"), "", 0, "R", false, 0, "")
	pdf.CellFormat(28, 7, tr("Thanh tien"), "", 1, "R", false, 0, "")

	for _, group := range doc.Groups {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(12, 6, group.ID)
		pdf.Cell(176, 6, tr(trimRunes(group.Title, 80)))
		pdf.Ln(6)

		pdf.SetFont("Helvetica", "", 9)
		for _, item := range group.Items {
			pdf.Cell(12, 5, fmt.Sprintf("%d", item.No))
			pdf.Cell(93, 5, tr(trimRunes(item.Description, 58)))
			pdf.Cell(15, 5, tr(item.Unit))
			pdf.CellFormat(12, 5, fmt.Sprintf("%d", item.Quantity), "", 0, "R", false, 0, "")
			pdf.CellFormat(28, 5, formatMoney(item.UnitPrice), "", 0, "R", false, 0, "")
			pdf.CellFormat(28, 5, formatMoney(item.Total), "", 1, "R", false, 0, "")
		}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.Cell(160, 6, tr("Cong nhom "+group.ID))
		pdf.CellFormat(28, 6, formatMoney(group.Subtotal), "", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(160, 6, tr("Tong cong"))
	pdf.CellFormat(28, 6, formatMoney(doc.TotalQuote), "", 1, "R", false, 0, "")
	pdf.Cell(160, 6, "Thue VAT (10%)")
	pdf.CellFormat(28, 6, formatMoney(doc.VAT), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(160, 7, tr("Tong thanh toan"))
	pdf.CellFormat(28, 7, formatMoney(doc.GrandTotal), "", 1, "R", false, 0, "")

	if doc.BankInfo.AccountNo != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Cell(0, 5, tr(fmt.Sprintf("%s · STK: %s · %s", doc.BankInfo.BankName, doc.BankInfo.AccountNo, doc.BankInfo.AccountName)))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("gofpdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func trimRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
