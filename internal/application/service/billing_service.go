package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sangkips/canteen-pos/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Receipt layout contract. The on-screen preview, the bill modal and the print
// job all consume the exact string RenderReceipt produces, so the banner text
// and column widths must not change.
const (
	receiptBanner    = "      College Canteen Bill"
	receiptSeparator = "----------------------------------------"
	receiptColumns   = "Product           Qty  Pieces  Price"
	// name padded to 16, quantity to 4, total pieces to 7; names longer than
	// 16 are kept whole, matching the register's padEnd behavior.
	receiptItemFormat = "%-16s %-4d %-7d ₹%s\n"
)

// ComputeBill prices a selection. Pure aside from the bill-date capture: no
// I/O, no store access; ID stays zero until the history store assigns one.
//
// Each line total is rounded half-up to 2 places and the grand total is the
// rounded sum of those already-rounded line totals. Summing first and rounding
// once would drift from the register's arithmetic on fractional prices.
func ComputeBill(lines []entity.SelectionLine, paymentMethod string) *entity.Bill {
	items := make([]entity.BillItem, 0, len(lines))
	total := decimal.Zero

	for _, l := range lines {
		lineTotal := round2(l.Product.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		items = append(items, entity.BillItem{
			ProductName:   l.Product.Name,
			Quantity:      l.Quantity,
			PiecesPerUnit: l.Product.PiecesPerUnit,
			PricePerUnit:  l.Product.UnitPrice,
			TotalPrice:    lineTotal,
		})
		total = total.Add(lineTotal)
	}

	return &entity.Bill{
		Date:          time.Now().Format(entity.BillDateLayout),
		TotalAmount:   round2(total),
		PaymentMethod: paymentMethod,
		ItemsCount:    len(items),
		Items:         items,
	}
}

// round2 is monetary half-up rounding to cents.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// RenderReceipt produces the fixed-width till receipt for a computed bill:
// one banner, one line per item in selection order, total and payment lines,
// and the footer.
func RenderReceipt(bill *entity.Bill) string {
	var b strings.Builder

	b.WriteString(receiptBanner + "\n")
	b.WriteString(receiptSeparator + "\n")
	b.WriteString(receiptColumns + "\n")
	b.WriteString(receiptSeparator + "\n")
	for _, it := range bill.Items {
		fmt.Fprintf(&b, receiptItemFormat, it.ProductName, it.Quantity, it.TotalPieces(), it.TotalPrice.StringFixed(2))
	}
	b.WriteString(receiptSeparator + "\n")
	fmt.Fprintf(&b, "Total: ₹%s\n", bill.TotalAmount.StringFixed(2))
	fmt.Fprintf(&b, "Payment: %s\n", bill.PaymentMethod)
	b.WriteString(receiptSeparator + "\n")
	b.WriteString("Thank you!\n")

	return b.String()
}
