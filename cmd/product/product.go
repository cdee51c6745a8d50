// Package product contains the subcommands that read and change products:
// add, list, update, remove and sell.
package product

import (
	"fmt"
	"io"
	"text/tabwriter"

	"stockroom/display"
	"stockroom/models"
)

const (
	nameFlag     = "name"
	priceFlag    = "price"
	quantityFlag = "quantity"
	yesFlag      = "yes"
)

func printProduct(w io.Writer, money *display.Formatter, p models.Product) {
	fmt.Fprintf(w, "ID: %d | Name: %s | Price: %s | Quantity: %d\n", p.ID, p.Name, money.Money(p.Price), p.Quantity)
}

func printProducts(w io.Writer, money *display.Formatter, products []models.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tQUANTITY")
	for _, p := range products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", p.ID, p.Name, money.Money(p.Price), p.Quantity)
	}
	return tw.Flush()
}
