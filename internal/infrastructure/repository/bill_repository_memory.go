package repository

import (
	"context"
	"sync"

	"github.com/sangkips/canteen-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/canteen-pos/internal/domain/repository"
)

// memoryBillRepository is the degraded-mode store used when the SQLite file
// cannot be opened or stops accepting writes: bills are still recorded for the
// session but vanish with it.
type memoryBillRepository struct {
	mu         sync.RWMutex
	bills      []entity.Bill // kept in insertion (ascending id) order
	nextID     uint
	nextItemID uint
}

// NewMemoryBillRepository creates an empty in-memory bill repository.
func NewMemoryBillRepository() domainRepo.BillRepository {
	return &memoryBillRepository{nextID: 1, nextItemID: 1}
}

func (r *memoryBillRepository) Save(ctx context.Context, bill *entity.Bill) (uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *bill
	stored.ID = r.nextID
	r.nextID++

	stored.Items = make([]entity.BillItem, len(bill.Items))
	for i, it := range bill.Items {
		it.ID = r.nextItemID
		it.BillID = stored.ID
		r.nextItemID++
		stored.Items[i] = it
	}

	r.bills = append(r.bills, stored)

	bill.ID = stored.ID
	return stored.ID, nil
}

func (r *memoryBillRepository) ListAll(ctx context.Context) ([]entity.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first, with items deep-copied so callers cannot reach stored
	// state.
	out := make([]entity.Bill, 0, len(r.bills))
	for i := len(r.bills) - 1; i >= 0; i-- {
		b := r.bills[i]
		items := make([]entity.BillItem, len(b.Items))
		copy(items, b.Items)
		b.Items = items
		out = append(out, b)
	}
	return out, nil
}

func (r *memoryBillRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Counters are not reset: ids stay unique across a clear, same as the
	// SQLite store's AUTOINCREMENT.
	r.bills = nil
	return nil
}
