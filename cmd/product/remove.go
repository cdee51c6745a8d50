package product

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"stockroom/cmd/cmdutil"
)

func NewRemoveCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		yesFlag: &cobraflags.BoolFlag{
			Name:  yesFlag,
			Usage: "Do not ask for confirmation",
		},
	}

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a product (its history is kept)",
		Args:    cobra.ExactArgs(1),
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

			p, err := env.Store.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			if !flags[yesFlag].GetBool() {
				fmt.Fprintf(cmd.OutOrStdout(), "Remove product %d (%s)? [y/N] ", p.ID, p.Name)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				switch strings.ToLower(strings.TrimSpace(answer)) {
				case "y", "yes":
				default:
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			if err := env.Store.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed product %d.\n", id)
			return nil
		},
	}

	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
