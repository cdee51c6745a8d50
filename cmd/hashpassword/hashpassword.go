package hashpassword

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"stockroom/models"
)

const passwordFlag = "password"

// NewHashPasswordCommand prints a bcrypt hash for auth.password_hash. The
// password is read from --password or, when absent, from the first line of
// standard input.
func NewHashPasswordCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		passwordFlag: &cobraflags.StringFlag{
			Name:  passwordFlag,
			Usage: "Password to hash (read from stdin when empty)",
		},
	}

	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Print the bcrypt hash of the operator password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password := flags[passwordFlag].GetString()
			if password == "" {
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				password = strings.TrimRight(line, "\r\n")
			}
			if password == "" {
				return errors.New("password must not be empty")
			}

			hash, err := models.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
