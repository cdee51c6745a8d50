package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Action labels a row of the history ledger.
type Action string

const (
	ActionCreated       Action = "Created"
	ActionUpdated       Action = "Updated"
	ActionSaleSimulated Action = "SaleSimulated"
)

// HistoryEntry records one mutation of a product. Rows are never updated or
// deleted; ProductID is a plain value with no foreign key, so entries survive
// the removal of their product.
type HistoryEntry struct {
	ID             uint64          `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID      uint64          `gorm:"not null;index" json:"product_id"`
	Action         Action          `gorm:"type:varchar(32);not null" json:"action"`
	QuantityBefore int64           `gorm:"not null" json:"quantity_before"`
	QuantityAfter  int64           `gorm:"not null" json:"quantity_after"`
	PriceBefore    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_before"`
	PriceAfter     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price_after"`
	Timestamp      time.Time       `gorm:"not null" json:"timestamp"`
}

func (HistoryEntry) TableName() string { return "history" }
