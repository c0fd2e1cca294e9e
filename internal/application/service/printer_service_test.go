package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sangkips/canteen-pos/internal/domain/entity"
	"github.com/sangkips/canteen-pos/pkg/printer"
)

func TestPrinterService(t *testing.T) {
	bill := ComputeBill([]entity.SelectionLine{{
		Product:  entity.Product{Name: "Gol Gappa", UnitPrice: decimal.NewFromInt(10), PiecesPerUnit: 5},
		Quantity: 3,
	}}, "Cash")
	bill.ID = 7

	t.Run("status reflects configuration", func(t *testing.T) {
		svc := NewPrinterService(printer.NewNullPrinter(), "none", 32, zap.NewNop())
		st := svc.Status()
		require.False(t, st.Configured)
		require.False(t, st.Connected)
		require.Equal(t, "none", st.Type)
	})

	t.Run("null printer accepts a bill without error", func(t *testing.T) {
		svc := NewPrinterService(printer.NewNullPrinter(), "none", 32, zap.NewNop())
		require.NoError(t, svc.PrintBill(bill))
	})

	t.Run("format contains bill fields in paper-width rendering", func(t *testing.T) {
		out := string(FormatReceipt(bill, 32))
		require.Contains(t, out, "College Canteen")
		require.Contains(t, out, "Bill #7")
		require.Contains(t, out, bill.Date)
		require.Contains(t, out, "Gol Gappa 3x(15 pc)")
		require.Contains(t, out, "Rs 30.00")
		require.Contains(t, out, "Payment")
		require.Contains(t, out, "Thank you!")
	})
}
