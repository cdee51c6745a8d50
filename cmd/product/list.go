package product

import (
	"github.com/spf13/cobra"

	"stockroom/cmd/cmdutil"
)

func NewListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all products",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cmdutil.Open(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			products, err := env.Store.List(cmd.Context())
			if err != nil {
				return err
			}
			return printProducts(cmd.OutOrStdout(), env.Money, products)
		},
	}
}
