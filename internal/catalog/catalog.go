// Package catalog holds the canteen's fixed product list.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sangkips/canteen-pos/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Default returns the built-in canteen menu. The slice is freshly allocated on
// every call so callers cannot mutate the catalog under each other.
func Default() []entity.Product {
	return []entity.Product{
		{Name: "Spring Roll", UnitPrice: decimal.NewFromInt(30), PiecesPerUnit: 6},
		{Name: "Chole Kulche", UnitPrice: decimal.NewFromInt(40), PiecesPerUnit: 2},
		{Name: "Cutlet", UnitPrice: decimal.NewFromInt(30), PiecesPerUnit: 2},
		{Name: "Burger", UnitPrice: decimal.NewFromInt(40), PiecesPerUnit: 1},
		{Name: "Dhokla", UnitPrice: decimal.NewFromInt(30), PiecesPerUnit: 6},
		{Name: "Cake, Pastry", UnitPrice: decimal.NewFromInt(30), PiecesPerUnit: 1},
		{Name: "Haldiram Mixture", UnitPrice: decimal.NewFromInt(20), PiecesPerUnit: 1},
		{Name: "Water Bottle", UnitPrice: decimal.NewFromInt(20), PiecesPerUnit: 1},
		{Name: "Chocolate", UnitPrice: decimal.NewFromInt(15), PiecesPerUnit: 1},
		{Name: "Gol Gappa", UnitPrice: decimal.NewFromInt(10), PiecesPerUnit: 5},
		{Name: "Dahi Golgapa", UnitPrice: decimal.NewFromInt(20), PiecesPerUnit: 7},
		{Name: "Chaat", UnitPrice: decimal.NewFromInt(30), PiecesPerUnit: 1},
		{Name: "Sweet Corn Chaat", UnitPrice: decimal.NewFromInt(30), PiecesPerUnit: 1},
		{Name: "Dabeli", UnitPrice: decimal.NewFromInt(30), PiecesPerUnit: 2},
		{Name: "Kachodi", UnitPrice: decimal.NewFromInt(20), PiecesPerUnit: 1},
		{Name: "Bhel", UnitPrice: decimal.NewFromInt(20), PiecesPerUnit: 1},
		{Name: "Vada Pav", UnitPrice: decimal.NewFromInt(15), PiecesPerUnit: 1},
		{Name: "Aloo Patties", UnitPrice: decimal.NewFromInt(20), PiecesPerUnit: 1},
		{Name: "Paneer Patties", UnitPrice: decimal.NewFromInt(20), PiecesPerUnit: 1},
	}
}

// Load reads a catalog override from a JSON file: an array of objects with
// "name", "price" and "pieces" fields, the same shape the default menu would
// serialize to.
func Load(path string) ([]entity.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var products []entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no products", path)
	}

	for i, p := range products {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("catalog file %s: product %d has no name", path, i)
		}
		if p.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("catalog file %s: product %q has a negative price", path, p.Name)
		}
		if p.PiecesPerUnit < 1 {
			return nil, fmt.Errorf("catalog file %s: product %q must have at least 1 piece per unit", path, p.Name)
		}
	}
	return products, nil
}

// Filter returns the products whose names contain the query,
// case-insensitively, preserving catalog order. An empty query returns
// everything.
func Filter(products []entity.Product, query string) []entity.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return products
	}

	matches := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) {
			matches = append(matches, p)
		}
	}
	return matches
}
