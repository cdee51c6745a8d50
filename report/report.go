// Package report builds the stock report: current quantity per product next
// to a derived "quantity sold" figure.
package report

import (
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"stockroom/models"
)

// SoldBaseline is the stock level the sold estimate is measured against.
// QuantitySold is a placeholder, not an aggregate of recorded sales.
const SoldBaseline = 15

var (
	ErrEmpty    = errors.New("no products available for the report")
	ErrOverflow = errors.New("report totals overflow")
)

type Row struct {
	ProductID    uint64 `json:"product_id"`
	Name         string `json:"name"`
	Quantity     int64  `json:"quantity"`
	QuantitySold int64  `json:"quantity_sold"`
}

type Summary struct {
	Rows          []Row `json:"rows"`
	TotalQuantity int64 `json:"total_quantity"`
	TotalSold     int64 `json:"total_sold"`
}

// QuantitySold estimates units sold as max(0, SoldBaseline - quantity).
func QuantitySold(quantity int64) int64 {
	return max(0, SoldBaseline-quantity)
}

// Build derives one row per product, keeping the input order.
func Build(products []models.Product) (Summary, error) {
	if len(products) == 0 {
		return Summary{}, ErrEmpty
	}

	s := Summary{Rows: make([]Row, 0, len(products))}
	for _, p := range products {
		r := Row{
			ProductID:    p.ID,
			Name:         p.Name,
			Quantity:     p.Quantity,
			QuantitySold: QuantitySold(p.Quantity),
		}
		if r.Quantity > math.MaxInt64-s.TotalQuantity || r.QuantitySold > math.MaxInt64-s.TotalSold {
			return Summary{}, fmt.Errorf("%w: at product %d", ErrOverflow, p.ID)
		}
		s.Rows = append(s.Rows, r)
		s.TotalQuantity += r.Quantity
		s.TotalSold += r.QuantitySold
	}
	return s, nil
}

// WriteTable renders the summary as aligned columns.
func (s Summary) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tQUANTITY\tSOLD (EST.)")
	for _, r := range s.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", r.ProductID, r.Name, r.Quantity, r.QuantitySold)
	}
	fmt.Fprintf(tw, "\tTOTAL\t%d\t%d\n", s.TotalQuantity, s.TotalSold)
	return tw.Flush()
}
