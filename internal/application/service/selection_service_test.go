package service

import (
	"errors"
	"testing"

	"github.com/sangkips/canteen-pos/internal/domain/entity"
	"github.com/sangkips/canteen-pos/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testProducts() []entity.Product {
	return []entity.Product{
		{Name: "Gol Gappa", UnitPrice: decimal.NewFromInt(10), PiecesPerUnit: 5},
		{Name: "Chaat", UnitPrice: decimal.NewFromInt(30), PiecesPerUnit: 1},
		{Name: "Vada Pav", UnitPrice: decimal.NewFromInt(15), PiecesPerUnit: 1},
	}
}

func TestBuildSelection(t *testing.T) {
	products := testProducts()

	t.Run("keeps only checked rows in catalog order", func(t *testing.T) {
		raw := []RawSelection{
			{Selected: true, Quantity: "2"},
			{Selected: false, Quantity: "9"},
			{Selected: true, Quantity: "1"},
		}

		lines, err := BuildSelection(products, raw)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		require.Equal(t, "Gol Gappa", lines[0].Product.Name)
		require.Equal(t, 2, lines[0].Quantity)
		require.Equal(t, "Vada Pav", lines[1].Product.Name)
		require.Equal(t, 1, lines[1].Quantity)
	})

	t.Run("empty selection fails validation", func(t *testing.T) {
		raw := []RawSelection{{Selected: false}, {Selected: false}, {Selected: false}}

		_, err := BuildSelection(products, raw)
		require.True(t, errors.Is(err, apperror.ErrEmptySelection))
		require.True(t, apperror.IsValidation(err))
	})

	t.Run("malformed quantities normalize to 1 without error", func(t *testing.T) {
		cases := []struct {
			name string
			in   string
			want int
		}{
			{"non-numeric", "abc", 1},
			{"empty", "", 1},
			{"zero", "0", 1},
			{"negative", "-3", 1},
			{"float", "2.5", 1},
			{"padded", "  4  ", 4},
			{"plain", "7", 7},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				raw := []RawSelection{{Selected: true, Quantity: tc.in}}
				lines, err := BuildSelection(products, raw)
				require.NoError(t, err)
				require.Equal(t, tc.want, lines[0].Quantity)
			})
		}
	})

	t.Run("rows beyond the catalog are ignored", func(t *testing.T) {
		raw := []RawSelection{
			{Selected: true, Quantity: "1"},
			{Selected: false},
			{Selected: false},
			{Selected: true, Quantity: "5"}, // no matching catalog entry
		}

		lines, err := BuildSelection(products, raw)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		require.Equal(t, "Gol Gappa", lines[0].Product.Name)
	})
}
