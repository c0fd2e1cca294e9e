package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	products := Default()
	require.Len(t, products, 19)

	for _, p := range products {
		require.NotEmpty(t, p.Name)
		require.False(t, p.UnitPrice.IsNegative(), "product %q", p.Name)
		require.GreaterOrEqual(t, p.PiecesPerUnit, 1, "product %q", p.Name)
	}

	// Callers get their own copy each time.
	first := Default()
	first[0].Name = "tampered"
	require.Equal(t, "Spring Roll", Default()[0].Name)
}

func TestFilter(t *testing.T) {
	products := Default()

	t.Run("empty query returns everything", func(t *testing.T) {
		require.Len(t, Filter(products, ""), len(products))
		require.Len(t, Filter(products, "   "), len(products))
	})

	t.Run("case-insensitive substring match in catalog order", func(t *testing.T) {
		got := Filter(products, "CHAat")
		require.Len(t, got, 2)
		require.Equal(t, "Chaat", got[0].Name)
		require.Equal(t, "Sweet Corn Chaat", got[1].Name)
	})

	t.Run("no match", func(t *testing.T) {
		require.Empty(t, Filter(products, "pizza"))
	})
}

func TestLoad(t *testing.T) {
	writeCatalog := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("valid file", func(t *testing.T) {
		path := writeCatalog(t, `[
			{"name": "Samosa", "price": 15, "pieces": 2},
			{"name": "Jalebi", "price": 22.5, "pieces": 4}
		]`)

		products, err := Load(path)
		require.NoError(t, err)
		require.Len(t, products, 2)
		require.Equal(t, "Samosa", products[0].Name)
		require.Equal(t, "22.50", products[1].UnitPrice.StringFixed(2))
		require.Equal(t, 4, products[1].PiecesPerUnit)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("invalid entries are rejected", func(t *testing.T) {
		cases := []struct {
			name    string
			content string
		}{
			{"not json", "not json"},
			{"empty list", "[]"},
			{"blank name", `[{"name": "  ", "price": 10, "pieces": 1}]`},
			{"negative price", `[{"name": "Samosa", "price": -1, "pieces": 1}]`},
			{"zero pieces", `[{"name": "Samosa", "price": 10, "pieces": 0}]`},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := Load(writeCatalog(t, tc.content))
				require.Error(t, err)
			})
		}
	})
}
