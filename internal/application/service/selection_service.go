package service

import (
	"strconv"
	"strings"

	"github.com/sangkips/canteen-pos/internal/domain/entity"
	"github.com/sangkips/canteen-pos/pkg/apperror"
)

// RawSelection mirrors one catalog row of the till UI: the row's checkbox and
// its raw quantity field, positionally aligned with the catalog slice.
type RawSelection struct {
	Selected bool
	Quantity string
}

// BuildSelection collects the checked rows into selection lines.
//
// Lines come out in catalog order; that order is what fixes the line order on
// the receipt. Quantities that fail to parse or come out below 1 are
// normalized to 1 rather than rejected. The only hard failure is an empty
// selection, in which case the caller must not proceed to billing.
func BuildSelection(products []entity.Product, raw []RawSelection) ([]entity.SelectionLine, error) {
	lines := make([]entity.SelectionLine, 0, len(raw))
	for i, r := range raw {
		if i >= len(products) || !r.Selected {
			continue
		}
		lines = append(lines, entity.SelectionLine{
			Product:  products[i],
			Quantity: normalizeQuantity(r.Quantity),
		})
	}

	if len(lines) == 0 {
		return nil, apperror.ErrEmptySelection
	}
	return lines, nil
}

// normalizeQuantity parses a raw quantity field, substituting 1 for anything
// non-numeric or below 1.
func normalizeQuantity(raw string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 1 {
		return 1
	}
	return qty
}
