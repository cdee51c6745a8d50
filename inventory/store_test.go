package inventory_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/go-extras/go-kit/must"
	"github.com/shopspring/decimal"

	"stockroom/config"
	"stockroom/database"
	"stockroom/inventory"
	"stockroom/models"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newStore(c *qt.C) *inventory.Store {
	c.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	dsn := filepath.Join(c.TempDir(), "stock.db")
	db, err := database.Connect(config.Database{Driver: "sqlite", DSN: dsn}, log)
	c.Assert(err, qt.IsNil)
	c.Cleanup(func() { _ = database.Close(db) })

	return inventory.NewStore(db,
		inventory.WithClock(func() time.Time { return fixedNow }),
		inventory.WithLogger(log),
	)
}

func draft(name, price, quantity string) inventory.Draft {
	return must.Must(inventory.ParseDraft(name, price, quantity))
}

func TestCreateThenList(t *testing.T) {
	c := qt.New(t)
	s := newStore(c)
	ctx := context.Background()

	p, err := s.Create(ctx, draft("Rice", "5.00", "10"))
	c.Assert(err, qt.IsNil)
	c.Assert(p.ID, qt.Not(qt.Equals), uint64(0))

	products, err := s.List(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(products, qt.HasLen, 1)
	c.Assert(products[0].ID, qt.Equals, p.ID)
	c.Assert(products[0].Name, qt.Equals, "Rice")
	c.Assert(products[0].Price.Equal(decimal.RequireFromString("5")), qt.IsTrue)
	c.Assert(products[0].Quantity, qt.Equals, int64(10))
}

func TestCreateAssignsFreshIDsInOrder(t *testing.T) {
	c := qt.New(t)
	s := newStore(c)
	ctx := context.Background()

	a := must.Must(s.Create(ctx, draft("Rice", "5", "10")))
	b := must.Must(s.Create(ctx, draft("Beans", "7.25", "4")))
	c.Assert(b.ID > a.ID, qt.IsTrue)

	products, err := s.List(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(products, qt.HasLen, 2)
	c.Assert(products[0].Name, qt.Equals, "Rice")
	c.Assert(products[1].Name, qt.Equals, "Beans")
	c.Assert(products[1].Price.Equal(decimal.RequireFromString("7.25")), qt.IsTrue)
}

func TestCreateAppendsCreatedEntry(t *testing.T) {
	c := qt.New(t)
	s := newStore(c)
	ctx := context.Background()

	p := must.Must(s.Create(ctx, draft("Rice", "5.50", "10")))

	entries, err := s.History(ctx, p.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 1)

	e := entries[0]
	c.Assert(e.ProductID, qt.Equals, p.ID)
	c.Assert(e.Action, qt.Equals, models.ActionCreated)
	c.Assert(e.QuantityBefore, qt.Equals, int64(0))
	c.Assert(e.QuantityAfter, qt.Equals, int64(10))
	c.Assert(e.PriceBefore.Equal(p.Price), qt.IsTrue)
	c.Assert(e.PriceAfter.Equal(p.Price), qt.IsTrue)
	c.Assert(e.Timestamp.Equal(fixedNow), qt.IsTrue)
}

func TestCreateRejectsInvalidDraft(t *testing.T) {
	c := qt.New(t)
	s := newStore(c)
	ctx := context.Background()

	_, err := s.Create(ctx, inventory.Draft{Name: " ", Price: decimal.NewFromInt(1), Quantity: 1})
	c.Assert(err, qt.ErrorIs, inventory.ErrValidation)

	_, err = s.Create(ctx, inventory.Draft{Name: "Rice", Price: decimal.NewFromInt(-1), Quantity: 1})
	c.Assert(err, qt.ErrorIs, inventory.ErrValidation)

	_, err = s.Create(ctx, inventory.Draft{Name: "Rice", Price: decimal.RequireFromString("5.555"), Quantity: 1})
	c.Assert(err, qt.ErrorIs, inventory.ErrValidation)

	_, err = s.Create(ctx, inventory.Draft{Name: "X", Price: decimal.RequireFromString("123456789012345678.99"), Quantity: 1})
	c.Assert(err, qt.ErrorIs, inventory.ErrValidation)

	products, err := s.List(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(products, qt.HasLen, 0)
}

func TestUpdate(t *testing.T) {
	c := qt.New(t)
	s := newStore(c)
	ctx := context.Background()

	p := must.Must(s.Create(ctx, draft("Rice", "5", "10")))

	updated, err := s.Update(ctx, p.ID, draft("Brown rice", "6.40", "12"))
	c.Assert(err, qt.IsNil)
	c.Assert(updated.ID, qt.Equals, p.ID)

	got, err := s.Get(ctx, p.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(got.Name, qt.Equals, "Brown rice")
	c.Assert(got.Quantity, qt.Equals, int64(12))
	c.Assert(got.Price.Equal(decimal.RequireFromString("6.4")), qt.IsTrue)

	entries := must.Must(s.History(ctx, p.ID))
	c.Assert(entries, qt.HasLen, 2)
	e := entries[1]
	c.Assert(e.Action, qt.Equals, models.ActionUpdated)
	c.Assert(e.QuantityBefore, qt.Equals, int64(10))
	c.Assert(e.QuantityAfter, qt.Equals, int64(12))
	c.Assert(e.PriceBefore.Equal(decimal.NewFromInt(5)), qt.IsTrue)
	c.Assert(e.PriceAfter.Equal(decimal.RequireFromString("6.4")), qt.IsTrue)
}

func TestUpdateMissingProduct(t *testing.T) {
	c := qt.New(t)
	s := newStore(c)
	ctx := context.Background()

	_, err := s.Update(ctx, 42, draft("Rice", "5", "10"))
	c.Assert(err, qt.ErrorIs, inventory.ErrNotFound)

	entries, err := s.History(ctx, 42)
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 0)
}

func TestUpdateInvalidDraftKeepsProduct(t *testing.T) {
	c := qt.New(t)
	s := newStore(c)
	ctx := context.Background()

	p := must.Must(s.Create(ctx, draft("Rice", "5", "10")))

	_, err := s.Update(ctx, p.ID, inventory.Draft{Name: "Rice", Price: decimal.NewFromInt(5), Quantity: -3})
	c.Assert(err, qt.ErrorIs, inventory.ErrValidation)

	got := must.Must(s.Get(ctx, p.ID))
	c.Assert(got.Quantity, qt.Equals, int64(10))
	c.Assert(must.Must(s.History(ctx, p.ID)), qt.HasLen, 1)
}

func TestDelete(t *testing.T) {
	c := qt.New(t)
	s := newStore(c)
	ctx := context.Background()

	p := must.Must(s.Create(ctx, draft("Rice", "5", "10")))
	_ = must.Must(s.SimulateSale(ctx, p.ID, 2))

	c.Assert(s.Delete(ctx, p.ID), qt.IsNil)

	_, err := s.Get(ctx, p.ID)
	c.Assert(err, qt.ErrorIs, inventory.ErrNotFound)
	c.Assert(must.Must(s.List(ctx)), qt.HasLen, 0)

	// history outlives the product
	entries, err := s.History(ctx, p.ID)
	c.Assert(err, qt.IsNil)
	c.Assert(entries, qt.HasLen, 2)

	err = s.Delete(ctx, p.ID)
	c.Assert(err, qt.ErrorIs, inventory.ErrNotFound)
}

func TestSimulateSale(t *testing.T) {
	tests := []struct {
		name  string
		stock string
		sold  int64
		want  int64
	}{
		{name: "partial", stock: "10", sold: 3, want: 7},
		{name: "everything", stock: "4", sold: 4, want: 0},
		{name: "nothing", stock: "4", sold: 0, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := qt.New(t)
			s := newStore(c)
			ctx := context.Background()

			p := must.Must(s.Create(ctx, draft("Rice", "5.00", tt.stock)))

			got, err := s.SimulateSale(ctx, p.ID, tt.sold)
			c.Assert(err, qt.IsNil)
			c.Assert(got.Quantity, qt.Equals, tt.want)
			c.Assert(got.Price.Equal(p.Price), qt.IsTrue)

			stored := must.Must(s.Get(ctx, p.ID))
			c.Assert(stored.Quantity, qt.Equals, tt.want)
			c.Assert(stored.Price.Equal(p.Price), qt.IsTrue)

			entries := must.Must(s.History(ctx, p.ID))
			c.Assert(entries, qt.HasLen, 2)
			e := entries[1]
			c.Assert(e.Action, qt.Equals, models.ActionSaleSimulated)
			c.Assert(e.QuantityBefore, qt.Equals, p.Quantity)
			c.Assert(e.QuantityAfter, qt.Equals, tt.want)
			c.Assert(e.PriceBefore.Equal(e.PriceAfter), qt.IsTrue)
			c.Assert(e.PriceBefore.Equal(p.Price), qt.IsTrue)
		})
	}
}

func TestSimulateSaleErrors(t *testing.T) {
	c := qt.New(t)
	s := newStore(c)
	ctx := context.Background()

	_, err := s.SimulateSale(ctx, 99, 1)
	c.Assert(err, qt.ErrorIs, inventory.ErrNotFound)

	p := must.Must(s.Create(ctx, draft("Rice", "5", "10")))

	_, err = s.SimulateSale(ctx, p.ID, -1)
	c.Assert(err, qt.ErrorIs, inventory.ErrValidation)

	_, err = s.SimulateSale(ctx, p.ID, 11)
	c.Assert(err, qt.ErrorIs, inventory.ErrInsufficientStock)

	c.Assert(must.Must(s.Get(ctx, p.ID)).Quantity, qt.Equals, int64(10))
	c.Assert(must.Must(s.History(ctx, p.ID)), qt.HasLen, 1)
}

func TestRiceScenario(t *testing.T) {
	c := qt.New(t)
	s := newStore(c)
	ctx := context.Background()

	p, err := s.Create(ctx, draft("Rice", "5.00", "10"))
	c.Assert(err, qt.IsNil)
	c.Assert(p.ID, qt.Equals, uint64(1))

	sold, err := s.SimulateSale(ctx, 1, 3)
	c.Assert(err, qt.IsNil)
	c.Assert(sold.Quantity, qt.Equals, int64(7))

	_, err = s.SimulateSale(ctx, 1, 999)
	c.Assert(err, qt.ErrorIs, inventory.ErrInsufficientStock)
	c.Assert(must.Must(s.Get(ctx, 1)).Quantity, qt.Equals, int64(7))

	entries := must.Must(s.History(ctx, 1))
	c.Assert(entries, qt.HasLen, 2)
	c.Assert(entries[0].Action, qt.Equals, models.ActionCreated)
	c.Assert(entries[0].QuantityBefore, qt.Equals, int64(0))
	c.Assert(entries[0].QuantityAfter, qt.Equals, int64(10))
	c.Assert(entries[1].Action, qt.Equals, models.ActionSaleSimulated)
	c.Assert(entries[1].QuantityBefore, qt.Equals, int64(10))
	c.Assert(entries[1].QuantityAfter, qt.Equals, int64(7))
}

func TestHistoryKeepsMutationOrder(t *testing.T) {
	c := qt.New(t)
	s := newStore(c)
	ctx := context.Background()

	p := must.Must(s.Create(ctx, draft("Rice", "5", "20")))
	other := must.Must(s.Create(ctx, draft("Beans", "3", "5")))
	_ = must.Must(s.SimulateSale(ctx, p.ID, 1))
	_ = must.Must(s.Update(ctx, p.ID, draft("Rice", "5.5", "30")))
	_ = must.Must(s.SimulateSale(ctx, other.ID, 5))
	_ = must.Must(s.SimulateSale(ctx, p.ID, 10))

	entries := must.Must(s.History(ctx, p.ID))
	actions := make([]models.Action, 0, len(entries))
	for _, e := range entries {
		actions = append(actions, e.Action)
	}
	c.Assert(actions, qt.DeepEquals, []models.Action{
		models.ActionCreated,
		models.ActionSaleSimulated,
		models.ActionUpdated,
		models.ActionSaleSimulated,
	})
	c.Assert(entries[3].QuantityBefore, qt.Equals, int64(30))
	c.Assert(entries[3].QuantityAfter, qt.Equals, int64(20))
}

func TestMutationRolledBackWhenHistoryFails(t *testing.T) {
	c := qt.New(t)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := database.Connect(config.Database{Driver: "sqlite", DSN: filepath.Join(c.TempDir(), "stock.db")}, log)
	c.Assert(err, qt.IsNil)
	c.Cleanup(func() { _ = database.Close(db) })

	s := inventory.NewStore(db)
	ctx := context.Background()
	p := must.Must(s.Create(ctx, draft("Rice", "5", "10")))

	c.Assert(db.Migrator().DropTable(&models.HistoryEntry{}), qt.IsNil)

	_, err = s.SimulateSale(ctx, p.ID, 3)
	c.Assert(err, qt.IsNotNil)
	c.Assert(must.Must(s.Get(ctx, p.ID)).Quantity, qt.Equals, int64(10))

	_, err = s.Create(ctx, draft("Beans", "3", "5"))
	c.Assert(err, qt.IsNotNil)
	c.Assert(must.Must(s.List(ctx)), qt.HasLen, 1)
}
