package inventory

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stockroom/models"
)

// Ledger is the append-only history of product mutations.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

// Append inserts e using tx, so the write commits or rolls back together with
// the mutation it describes.
func (l *Ledger) Append(tx *gorm.DB, e models.HistoryEntry) error {
	e.ID = 0
	if err := tx.Create(&e).Error; err != nil {
		return fmt.Errorf("failed to append %s history for product %d: %w", e.Action, e.ProductID, err)
	}
	return nil
}

// ListFor returns every entry recorded for productID in insertion order. The
// product itself may no longer exist.
func (l *Ledger) ListFor(ctx context.Context, productID uint64) ([]models.HistoryEntry, error) {
	entries := []models.HistoryEntry{}
	if err := l.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch history for product %d: %w", productID, err)
	}
	return entries, nil
}
