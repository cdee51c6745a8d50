package history

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"stockroom/cmd/cmdutil"
)

func NewHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history <id>",
		Short: "Show the movement history of a product",
		Long: `Show every recorded change of a product, oldest first.

History is kept after a product is removed, so it can still be listed.`,
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

			entries, err := env.Store.History(cmd.Context(), id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "History of product %d:\n", id)
			if len(entries) == 0 {
				fmt.Fprintln(out, "(no entries)")
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "WHEN\tACTION\tQUANTITY\tPRICE")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%d -> %d\t%s -> %s\n",
					e.Timestamp.Local().Format(time.DateTime),
					e.Action,
					e.QuantityBefore, e.QuantityAfter,
					env.Money.Money(e.PriceBefore), env.Money.Money(e.PriceAfter),
				)
			}
			return tw.Flush()
		},
	}
}
