package entity

import "github.com/shopspring/decimal"

// Product is one fixed catalog entry. The catalog never changes at runtime, so
// products carry no database ids or timestamps; a product is identified by its
// name (and position in the catalog).
type Product struct {
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"price"`
	PiecesPerUnit int             `json:"pieces"`
}

// SelectionLine pairs a catalog product with the quantity chosen at the till.
// Quantity is always >= 1: the selection builder normalizes bad input before a
// line is ever created.
type SelectionLine struct {
	Product  Product
	Quantity int
}
