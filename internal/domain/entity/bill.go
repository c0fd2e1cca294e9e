package entity

import (
	"github.com/shopspring/decimal"
)

// BillDateLayout is the capture-time format printed on every bill, matching
// the register's en-IN locale strings ("28/8/2026, 2:35:07 pm").
const BillDateLayout = "2/1/2006, 3:04:05 pm"

// Bill is the persisted header of a completed sale. A bill is written once by
// the history store and never updated; history is only ever erased wholesale.
// ID stays zero until the store assigns one on save.
type Bill struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Date          string          `gorm:"column:date;size:100;not null" json:"date"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	PaymentMethod string          `gorm:"size:50;not null" json:"payment_method"`
	ItemsCount    int             `gorm:"not null" json:"items_count"`

	// Relationships
	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// TableName returns the table name for the Bill model
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one product/quantity line within a bill. Unit price and pieces
// per unit are copied from the catalog at billing time so history survives
// future menu changes.
type BillItem struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	BillID        uint            `gorm:"not null;index" json:"bill_id"`
	ProductName   string          `gorm:"size:255;not null" json:"product_name"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	PiecesPerUnit int             `gorm:"not null" json:"pieces_per_unit"`
	PricePerUnit  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_per_unit"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
}

// TableName returns the table name for the BillItem model
func (BillItem) TableName() string {
	return "bill_items"
}

// TotalPieces returns the piece count printed on the receipt for this line.
func (bi BillItem) TotalPieces() int {
	return bi.PiecesPerUnit * bi.Quantity
}
