package repository

import (
	"context"
	"testing"

	"github.com/sangkips/canteen-pos/internal/config"
	"github.com/sangkips/canteen-pos/internal/infrastructure/database"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openTestStore(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(&config.StoreConfig{Path: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestBillRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("save and list round-trip", func(t *testing.T) {
		repo := NewBillRepository(openTestStore(t))

		bill := sampleBill("Cash")
		id, err := repo.Save(ctx, bill)
		require.NoError(t, err)
		require.Equal(t, uint(1), id)

		bills, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, bills, 1)

		got := bills[0]
		require.Equal(t, uint(1), got.ID)
		require.Equal(t, "28/8/2026, 2:35:07 pm", got.Date)
		require.Equal(t, "Cash", got.PaymentMethod)
		require.Equal(t, 1, got.ItemsCount)
		require.Equal(t, "30.00", got.TotalAmount.StringFixed(2))

		require.Len(t, got.Items, 1)
		require.Equal(t, uint(1), got.Items[0].BillID)
		require.Equal(t, "Gol Gappa", got.Items[0].ProductName)
		require.Equal(t, 3, got.Items[0].Quantity)
		require.Equal(t, 5, got.Items[0].PiecesPerUnit)
		require.Equal(t, "10.00", got.Items[0].PricePerUnit.StringFixed(2))
		require.Equal(t, "30.00", got.Items[0].TotalPrice.StringFixed(2))
	})

	t.Run("list orders bills by id descending", func(t *testing.T) {
		repo := NewBillRepository(openTestStore(t))

		for _, method := range []string{"Cash", "Card", "UPI"} {
			_, err := repo.Save(ctx, sampleBill(method))
			require.NoError(t, err)
		}

		bills, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, bills, 3)
		require.Equal(t, "UPI", bills[0].PaymentMethod)
		require.Equal(t, "Card", bills[1].PaymentMethod)
		require.Equal(t, "Cash", bills[2].PaymentMethod)
	})

	t.Run("clear deletes both tables and ids are never reused", func(t *testing.T) {
		repo := NewBillRepository(openTestStore(t))

		_, err := repo.Save(ctx, sampleBill("Cash"))
		require.NoError(t, err)
		_, err = repo.Save(ctx, sampleBill("Card"))
		require.NoError(t, err)

		require.NoError(t, repo.Clear(ctx))

		bills, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Empty(t, bills)

		// AUTOINCREMENT numbering continues after a clear.
		id, err := repo.Save(ctx, sampleBill("UPI"))
		require.NoError(t, err)
		require.Equal(t, uint(3), id)
	})
}
