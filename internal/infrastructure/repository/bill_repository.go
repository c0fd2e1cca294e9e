package repository

import (
	"context"

	"github.com/sangkips/canteen-pos/internal/domain/entity"
	domainRepo "github.com/sangkips/canteen-pos/internal/domain/repository"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates the SQLite-backed bill repository.
func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Save(ctx context.Context, bill *entity.Bill) (uint, error) {
	// Header and line items land together or not at all.
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(bill).Error
	})
	if err != nil {
		return 0, err
	}
	return bill.ID, nil
}

func (r *billRepository) ListAll(ctx context.Context) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			// Insertion order; item ids are assigned in the order lines were
			// created, which is the order they appeared on the receipt.
			return db.Order("bill_items.id ASC")
		}).
		Order("id DESC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) Clear(ctx context.Context) error {
	// Raw deletes: gorm refuses an unscoped Delete without a where clause,
	// and clearing history is exactly that.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM bill_items").Error; err != nil {
			return err
		}
		return tx.Exec("DELETE FROM bills").Error
	})
}
