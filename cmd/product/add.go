package product

import (
	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"stockroom/cmd/cmdutil"
	"stockroom/inventory"
)

func NewAddCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		nameFlag: &cobraflags.StringFlag{
			Name:  nameFlag,
			Usage: "Product name",
		},
		priceFlag: &cobraflags.StringFlag{
			Name:  priceFlag,
			Usage: "Unit price, e.g. 5.00",
		},
		quantityFlag: &cobraflags.StringFlag{
			Name:  quantityFlag,
			Usage: "Units in stock",
		},
	}

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add a product",
		Example: `  stockroom add --name Rice --price 5.00 --quantity 10`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := inventory.ParseDraft(
				flags[nameFlag].GetString(),
				flags[priceFlag].GetString(),
				flags[quantityFlag].GetString(),
			)
			if err != nil {
				return err
			}

			env, err := cmdutil.Open(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			p, err := env.Store.Create(cmd.Context(), draft)
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
