package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sangkips/canteen-pos/internal/domain/entity"
	"github.com/sangkips/canteen-pos/internal/domain/repository"
	"github.com/sangkips/canteen-pos/pkg/apperror"
	"go.uber.org/zap"
)

// BillRecord pairs a persisted bill with the display conveniences the history
// view needs.
type BillRecord struct {
	Bill entity.Bill
	// Summary concatenates the bill's items, in insertion order, as
	// "name (qtyxpieces) - ₹total" joined by commas.
	Summary string
}

// HistoryService owns persisted bills: it stores computed bills, lists past
// ones newest-first, and erases history wholesale. Confirmation before a clear
// is the caller's responsibility.
type HistoryService struct {
	repo   repository.BillRepository
	logger *zap.Logger
}

// NewHistoryService creates a new history service
func NewHistoryService(repo repository.BillRepository, logger *zap.Logger) *HistoryService {
	return &HistoryService{repo: repo, logger: logger}
}

// Persist stores a computed bill and returns the id the store assigned.
func (s *HistoryService) Persist(ctx context.Context, bill *entity.Bill) (uint, error) {
	id, err := s.repo.Save(ctx, bill)
	if err != nil {
		return 0, apperror.NewStoreUnavailableError("failed to save bill", err)
	}

	s.logger.Info("bill persisted",
		zap.Uint("bill_id", id),
		zap.String("total", bill.TotalAmount.StringFixed(2)),
		zap.Int("items", bill.ItemsCount),
	)
	return id, nil
}

// ListAll returns the bill history, newest first.
func (s *HistoryService) ListAll(ctx context.Context) ([]BillRecord, error) {
	bills, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperror.NewStoreUnavailableError("failed to load bill history", err)
	}

	records := make([]BillRecord, 0, len(bills))
	for _, b := range bills {
		records = append(records, BillRecord{Bill: b, Summary: summarizeItems(b.Items)})
	}
	return records, nil
}

// Clear erases all bill headers and line items unconditionally.
func (s *HistoryService) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return apperror.NewStoreUnavailableError("failed to clear bill history", err)
	}

	s.logger.Info("bill history cleared")
	return nil
}

// summarizeItems builds the history view's per-bill item line, e.g.
// "Gol Gappa (3x5) - ₹30,Chaat (1x1) - ₹30". Amounts keep their natural
// decimal form (30, not 30.00) as the history page always showed them.
func summarizeItems(items []entity.BillItem) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, fmt.Sprintf("%s (%dx%d) - ₹%s", it.ProductName, it.Quantity, it.PiecesPerUnit, it.TotalPrice.String()))
	}
	return strings.Join(parts, ",")
}
