package service

import (
	"fmt"

	"github.com/sangkips/canteen-pos/internal/domain/entity"
	"github.com/sangkips/canteen-pos/pkg/printer"
	"go.uber.org/zap"
)

// PrinterService sends finished bills to the configured thermal printer. With
// no printer configured the receipt still reaches the user through the
// on-screen rendering; a printing failure never blocks billing.
type PrinterService struct {
	printer     printer.Printer
	printerType string
	width       int
	logger      *zap.Logger
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, printerType string, width int, logger *zap.Logger) *PrinterService {
	return &PrinterService{
		printer:     p,
		printerType: printerType,
		width:       width,
		logger:      logger,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// Status returns printer connection status.
func (s *PrinterService) Status() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintBill renders a bill for the paper width and sends it to the printer.
func (s *PrinterService) PrintBill(bill *entity.Bill) error {
	data := FormatReceipt(bill, s.width)
	if err := s.printer.Print(data); err != nil {
		s.logger.Warn("printer error", zap.Uint("bill_id", bill.ID), zap.Error(err))
		return fmt.Errorf("failed to print receipt: %w", err)
	}

	s.logger.Info("receipt printed", zap.Uint("bill_id", bill.ID))
	return nil
}

// FormatReceipt converts a bill into ESC/POS bytes. Unlike RenderReceipt this
// rendering follows the paper width, and amounts use "Rs" because ESC/POS
// character tables have no rupee glyph.
func FormatReceipt(bill *entity.Bill, width int) []byte {
	doc := printer.NewDocument(width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text("College Canteen").
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if bill.ID != 0 {
		doc.Text(fmt.Sprintf("Bill #%d", bill.ID))
	}
	doc.Text(bill.Date).
		SetAlign(printer.AlignLeft).
		Separator('-')

	for _, it := range bill.Items {
		doc.ItemLine(it.ProductName, it.Quantity, it.TotalPieces(), "Rs "+it.TotalPrice.StringFixed(2))
	}

	doc.Separator('-').
		KeyValue("Total", "Rs "+bill.TotalAmount.StringFixed(2)).
		KeyValue("Payment", bill.PaymentMethod).
		Separator('-').
		SetAlign(printer.AlignCenter).
		Text("Thank you!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}
