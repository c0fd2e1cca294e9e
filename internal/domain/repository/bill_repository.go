package repository

import (
	"context"

	"github.com/sangkips/canteen-pos/internal/domain/entity"
)

// BillRepository defines the interface for bill history persistence.
//
// Implementations must:
//   - assign monotonically increasing ids on Save, never reusing an id, not
//     even after Clear
//   - write a bill's header and line items together or not at all
//   - return bills newest-first from ListAll, with each bill's items in
//     insertion order
type BillRepository interface {
	Save(ctx context.Context, bill *entity.Bill) (uint, error)
	ListAll(ctx context.Context) ([]entity.Bill, error)
	Clear(ctx context.Context) error
}
