package product

import (
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"stockroom/cmd/cmdutil"
	"stockroom/inventory"
)

func NewSellCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		quantityFlag: &cobraflags.StringFlag{
			Name:  quantityFlag,
			Usage: "Units to take out of stock",
		},
	}

	cmd := &cobra.Command{
		Use:   "sell <id>",
		Short: "Simulate a sale by taking units out of stock",
		Long: `Simulate a sale by taking units out of stock.

The price is left unchanged. The sale is not recorded anywhere except the
product history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.ProductID(args[0])
			if err != nil {
				return err
			}
			quantity, err := inventory.ParseQuantity(flags[quantityFlag].GetString())
			if err != nil {
				return err
			}

			env, err := cmdutil.Open(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			p, err := env.Store.SimulateSale(cmd.Context(), id, quantity)
			if err != nil {
				return err
			}
			printProduct(cmd.OutOrStdout(), env.Money, p)
			return nil
		},
	}

	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
