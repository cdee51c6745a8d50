// Package inventory implements the product store and its history ledger.
//
// Every mutating operation writes the product row and exactly one history
// entry inside a single transaction.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"stockroom/models"
)

type Store struct {
	db     *gorm.DB
	ledger *Ledger
	now    func() time.Time
	log    *slog.Logger
}

type Option func(*Store)

// WithClock overrides the source of history timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

func NewStore(db *gorm.DB, opts ...Option) *Store {
	s := &Store{
		db:     db,
		ledger: NewLedger(db),
		now:    time.Now,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Ledger() *Ledger { return s.ledger }

// Create validates d, inserts the product and records a Created entry.
func (s *Store) Create(ctx context.Context, d Draft) (models.Product, error) {
	if err := d.Validate(); err != nil {
		return models.Product{}, err
	}

	p := models.Product{Name: d.Name, Price: d.Price, Quantity: d.Quantity}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&p).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}
		return s.ledger.Append(tx, models.HistoryEntry{
			ProductID:      p.ID,
			Action:         models.ActionCreated,
			QuantityBefore: 0,
			QuantityAfter:  p.Quantity,
			PriceBefore:    p.Price,
			PriceAfter:     p.Price,
			Timestamp:      s.timestamp(),
		})
	})
	if err != nil {
		return models.Product{}, err
	}

	s.log.Info("product created", "product_id", p.ID, "name", p.Name, "quantity", p.Quantity)
	return p, nil
}

// List returns all products ordered by id.
func (s *Store) List(ctx context.Context) ([]models.Product, error) {
	products := []models.Product{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

func (s *Store) Get(ctx context.Context, id uint64) (models.Product, error) {
	var p models.Product
	if err := findProduct(s.db.WithContext(ctx), id, &p); err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Update overwrites the product's fields and records an Updated entry with
// the previous and new quantity and price.
func (s *Store) Update(ctx context.Context, id uint64, d Draft) (models.Product, error) {
	var p models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findProduct(tx, id, &p); err != nil {
			return err
		}
		if err := d.Validate(); err != nil {
			return err
		}

		before := p
		p.Name = d.Name
		p.Price = d.Price
		p.Quantity = d.Quantity
		if err := tx.Model(&models.Product{ID: p.ID}).Updates(map[string]interface{}{
			"name":     p.Name,
			"price":    p.Price,
			"quantity": p.Quantity,
		}).Error; err != nil {
			return fmt.Errorf("failed to update product %d: %w", id, err)
		}

		return s.ledger.Append(tx, models.HistoryEntry{
			ProductID:      p.ID,
			Action:         models.ActionUpdated,
			QuantityBefore: before.Quantity,
			QuantityAfter:  p.Quantity,
			PriceBefore:    before.Price,
			PriceAfter:     p.Price,
			Timestamp:      s.timestamp(),
		})
	})
	if err != nil {
		return models.Product{}, err
	}

	s.log.Info("product updated", "product_id", p.ID, "quantity", p.Quantity, "price", p.Price.String())
	return p, nil
}

// Delete removes the product row. Its history is kept.
func (s *Store) Delete(ctx context.Context, id uint64) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}

	s.log.Info("product deleted", "product_id", id)
	return nil
}

// SimulateSale takes quantity units out of stock without touching the price.
// The recorded entry carries the current price as both before and after.
func (s *Store) SimulateSale(ctx context.Context, id uint64, quantity int64) (models.Product, error) {
	if quantity < 0 {
		return models.Product{}, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}

	var p models.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findProduct(tx, id, &p); err != nil {
			return err
		}
		if quantity > p.Quantity {
			return fmt.Errorf("%w: requested %d, available %d", ErrInsufficientStock, quantity, p.Quantity)
		}

		before := p.Quantity
		p.Quantity -= quantity
		if err := tx.Model(&p).Update("quantity", p.Quantity).Error; err != nil {
			return fmt.Errorf("failed to update stock of product %d: %w", id, err)
		}

		return s.ledger.Append(tx, models.HistoryEntry{
			ProductID:      p.ID,
			Action:         models.ActionSaleSimulated,
			QuantityBefore: before,
			QuantityAfter:  p.Quantity,
			PriceBefore:    p.Price,
			PriceAfter:     p.Price,
			Timestamp:      s.timestamp(),
		})
	})
	if err != nil {
		return models.Product{}, err
	}

	s.log.Info("sale simulated", "product_id", p.ID, "sold", quantity, "remaining", p.Quantity)
	return p, nil
}

// History lists the ledger entries of a product, oldest first.
func (s *Store) History(ctx context.Context, id uint64) ([]models.HistoryEntry, error) {
	return s.ledger.ListFor(ctx, id)
}

func (s *Store) timestamp() time.Time {
	return s.now().UTC()
}

func findProduct(db *gorm.DB, id uint64, p *models.Product) error {
	err := db.First(p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch product %d: %w", id, err)
	}
	return nil
}
