// Package display formats prices for the command-line output.
package display

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"stockroom/config"
)

type Formatter struct {
	printer *message.Printer
	unit    currency.Unit
}

func NewFormatter(cfg config.Display) (*Formatter, error) {
	tag, err := language.Parse(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("invalid display language %q: %w", cfg.Language, err)
	}
	unit, err := currency.ParseISO(cfg.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid display currency %q: %w", cfg.Currency, err)
	}
	return &Formatter{printer: message.NewPrinter(tag), unit: unit}, nil
}

// exactLimit bounds the amounts whose cents survive conversion to float64.
var exactLimit = decimal.New(1, 13)

// Money renders d with the configured currency symbol.
func (f *Formatter) Money(d decimal.Decimal) string {
	d = d.Round(2)
	if d.Abs().GreaterThanOrEqual(exactLimit) {
		return f.printer.Sprint(currency.Symbol(f.unit)) + " " + d.StringFixed(2)
	}
	v, _ := d.Float64()
	return f.printer.Sprint(currency.Symbol(f.unit.Amount(v)))
}
