// Package cmd assembles the stockroom command tree.
package cmd

import (
	"github.com/spf13/cobra"

	"stockroom/cmd/cmdutil"
	"stockroom/cmd/hashpassword"
	"stockroom/cmd/history"
	"stockroom/cmd/product"
	"stockroom/cmd/report"
	"stockroom/cmd/serve"
)

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "stockroom",
		Short: "Keep track of products, stock and their history",
		Long: `stockroom keeps a small product inventory in a local database.

Every add, update and simulated sale is recorded in the product history.
Settings come from --config, STOCKROOM_* environment variables and defaults.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String(cmdutil.ConfigFlag, "", "Path to a config file (yaml, json or toml)")

	root.AddCommand(
		product.NewAddCommand(),
		product.NewListCommand(),
		product.NewUpdateCommand(),
		product.NewRemoveCommand(),
		product.NewSellCommand(),
		history.NewHistoryCommand(),
		report.NewReportCommand(),
		serve.NewServeCommand(),
		hashpassword.NewHashPasswordCommand(),
	)
	return root
}
