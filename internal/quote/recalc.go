package quote

import "github.com/shopspring/decimal"

// VATRate is the fixed 10% VAT applied to every quotation.
var VATRate = decimal.NewFromFloat(0.10)

// Recalculate restores the arithmetic invariants over the whole document:
// item totals, group subtotals, the pre-tax total, VAT and grand total.
// It never fails; negative or zero quantities and prices pass through
// arithmetically, the editor surface is the validation point.
func Recalculate(d *Document) {
	recalculate(d, false)
}

// RecalculateRenumber does the same and additionally reassigns a running
// 1-based item number across the whole document. Used after assistant
// merges, where the incoming groups may carry stale or missing numbering.
func RecalculateRenumber(d *Document) {
	recalculate(d, true)
}

func recalculate(d *Document, renumber bool) {
	if d == nil {
		return
	}
	var total int64
	no := int64(1)
	for gi := range d.Groups {
		group := &d.Groups[gi]
		var subtotal int64
		for ii := range group.Items {
			item := &group.Items[ii]
			if renumber {
				item.No = no
				no++
			}
			item.Total = item.Quantity * item.UnitPrice
			subtotal += item.Total
		}
		group.Subtotal = subtotal
		total += subtotal
	}
	d.TotalQuote = total
	d.VAT = vatFor(total)
	d.GrandTotal = total + d.VAT
}

func vatFor(total int64) int64 {
	return decimal.NewFromInt(total).Mul(VATRate).Round(0).IntPart()
}
