// Package cmdutil holds the setup shared by every subcommand: configuration,
// logger, database and the product store.
package cmdutil

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"stockroom/config"
	"stockroom/database"
	"stockroom/display"
	"stockroom/inventory"
	"stockroom/logging"
)

// ConfigFlag is the persistent flag naming the config file.
const ConfigFlag = "config"

type Env struct {
	Config config.Config
	Log    *slog.Logger
	Store  *inventory.Store
	Money  *display.Formatter

	db *gorm.DB
}

// Open loads the configuration named by the --config flag and connects to the
// database. Callers must Close the returned Env.
func Open(cmd *cobra.Command) (*Env, error) {
	path, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil {
		return nil, fmt.Errorf("failed to read --%s: %w", ConfigFlag, err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return nil, err
	}
	money, err := display.NewFormatter(cfg.Display)
	if err != nil {
		return nil, err
	}
	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	return &Env{
		Config: cfg,
		Log:    log,
		Store:  inventory.NewStore(db, inventory.WithLogger(log)),
		Money:  money,
		db:     db,
	}, nil
}

func (e *Env) Close() error {
	return database.Close(e.db)
}

// ProductID parses a positional product id argument.
func ProductID(arg string) (uint64, error) {
	id, err := strconv.ParseUint(arg, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: invalid product id %q", inventory.ErrValidation, arg)
	}
	return id, nil
}
