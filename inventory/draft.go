package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxPrice is the largest price a decimal(10,2) column holds.
var MaxPrice = decimal.RequireFromString("99999999.99")

// Draft carries the user-editable fields of a product.
type Draft struct {
	Name     string
	Price    decimal.Decimal
	Quantity int64
}

// ParseDraft coerces raw form input into a Draft. Every field is required.
func ParseDraft(name, price, quantity string) (Draft, error) {
	name = strings.TrimSpace(name)
	price = strings.TrimSpace(price)
	quantity = strings.TrimSpace(quantity)

	if name == "" || price == "" || quantity == "" {
		return Draft{}, fmt.Errorf("%w: name, price and quantity are required", ErrValidation)
	}

	p, err := decimal.NewFromString(price)
	if err != nil {
		return Draft{}, fmt.Errorf("%w: price %q is not a number", ErrValidation, price)
	}
	q, err := strconv.ParseInt(quantity, 10, 64)
	if err != nil {
		return Draft{}, fmt.Errorf("%w: quantity %q is not an integer", ErrValidation, quantity)
	}

	d := Draft{Name: name, Price: p, Quantity: q}
	if err := d.Validate(); err != nil {
		return Draft{}, err
	}
	return d, nil
}

func (d Draft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if d.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if !d.Price.Equal(d.Price.Round(2)) {
		return fmt.Errorf("%w: price %s has more than 2 decimal places", ErrValidation, d.Price)
	}
	if d.Price.GreaterThan(MaxPrice) {
		return fmt.Errorf("%w: price %s exceeds %s", ErrValidation, d.Price, MaxPrice.StringFixed(2))
	}
	if d.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	return nil
}

// ParseQuantity coerces the quantity typed into the sale form.
func ParseQuantity(s string) (int64, error) {
	s = strings.TrimSpace(s)
	q, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: quantity %q is not an integer", ErrValidation, s)
	}
	if q < 0 {
		return 0, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	return q, nil
}
