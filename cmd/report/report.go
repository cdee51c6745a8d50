package report

import (
	"encoding/json"
	"fmt"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"stockroom/cmd/cmdutil"
	stockreport "stockroom/report"
)

const formatFlag = "format"

func NewReportCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		formatFlag: &cobraflags.StringFlag{
			Name:  formatFlag,
			Value: "table",
			Usage: "Output format (table, json)",
		},
	}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print current stock next to the estimated quantity sold",
		Long: fmt.Sprintf(`Print current stock next to the estimated quantity sold.

The sold figure is max(0, %d - quantity). It is an estimate for display, not a
sum of recorded sales.`, stockreport.SoldBaseline),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format := flags[formatFlag].GetString()
			if format != "table" && format != "json" {
				return fmt.Errorf("unsupported format %q", format)
			}

			env, err := cmdutil.Open(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			products, err := env.Store.List(cmd.Context())
			if err != nil {
				return err
			}
			summary, err := stockreport.Build(products)
			if err != nil {
				return err
			}

			if format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			return summary.WriteTable(cmd.OutOrStdout())
		},
	}

	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
