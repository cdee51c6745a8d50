package product

import (
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"stockroom/cmd/cmdutil"
	"stockroom/inventory"
)

func NewUpdateCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		nameFlag: &cobraflags.StringFlag{
			Name:  nameFlag,
			Usage: "New product name",
		},
		priceFlag: &cobraflags.StringFlag{
			Name:  priceFlag,
			Usage: "New unit price",
		},
		quantityFlag: &cobraflags.StringFlag{
			Name:  quantityFlag,
			Usage: "New units in stock",
		},
	}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Overwrite the name, price and quantity of a product",
		Long: `Overwrite the name, price and quantity of a product.

All three fields are required; the previous quantity and price are kept in the
product history.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cmdutil.ProductID(args[0])
			if err != nil {
				return err
			}

			env, err := cmdutil.Open(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			draft, err := inventory.ParseDraft(
				flags[nameFlag].GetString(),
				flags[priceFlag].GetString(),
				flags[quantityFlag].GetString(),
			)
			if err != nil {
				// a stale id is reported before bad input
				if _, getErr := env.Store.Get(cmd.Context(), id); getErr != nil {
					return getErr
				}
				return err
			}

			p, err := env.Store.Update(cmd.Context(), id, draft)
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
