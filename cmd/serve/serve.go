package serve

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-extras/cobraflags"
	"github.com/spf13/cobra"

	"stockroom/cmd/cmdutil"
	"stockroom/routes"
)

const addrFlag = "addr"

const shutdownTimeout = 5 * time.Second

func NewServeCommand() *cobra.Command {
	flags := map[string]cobraflags.Flag{
		addrFlag: &cobraflags.StringFlag{
			Name:  addrFlag,
			Usage: "Listen address, overrides http.addr",
		},
	}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API for a browser or desktop front end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cmdutil.Open(cmd)
			if err != nil {
				return err
			}
			defer env.Close()

			addr := env.Config.HTTP.Addr
			if v := flags[addrFlag].GetString(); v != "" {
				addr = v
			}

			app := routes.NewApp(env.Store, env.Config, env.Log, cmd.ErrOrStderr())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				env.Log.Info("server listening", "addr", addr, "auth", env.Config.Auth.Enabled)
				errCh <- app.Listen(addr)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				env.Log.Info("shutting down")
				if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
					return err
				}
				if err := <-errCh; err != nil && !errors.Is(err, os.ErrClosed) {
					return err
				}
				return nil
			}
		},
	}

	cobraflags.RegisterMap(cmd, flags)
	return cmd
}
