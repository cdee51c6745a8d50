package models

import (
	"github.com/shopspring/decimal"
)

// Product is a stocked item.
type Product struct {
	ID       uint64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name     string          `gorm:"not null" json:"name"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity int64           `gorm:"not null" json:"quantity"`
}

func (Product) TableName() string { return "products" }
