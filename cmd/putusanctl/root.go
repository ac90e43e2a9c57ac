package main

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jengzang/putusan-backend-go/internal/config"
	"github.com/jengzang/putusan-backend-go/internal/database"
	"github.com/jengzang/putusan-backend-go/internal/logging"
)

// app holds what every subcommand needs once the root has run
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	dbPath string
	driver string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "putusanctl",
		Short:         "Manage the putusan database",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.dbPath != "" {
				cfg.DBPath = a.dbPath
			}
			if a.driver != "" {
				cfg.DBDriver = a.driver
			}
			a.cfg = cfg
			a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "database path or DSN (overrides DB_PATH)")
	root.PersistentFlags().StringVar(&a.driver, "driver", "", "database driver: sqlite or postgres (overrides DB_DRIVER)")

	root.AddCommand(
		newMigrateCmd(a),
		newImportCmd(a),
		newSeedUsersCmd(a),
	)
	return root
}

// openStore opens the database and brings the schema up to date
func (a *app) openStore(ctx context.Context) (*sql.DB, database.Dialect, error) {
	db, err := database.Open(ctx, database.Config{
		Driver: a.cfg.DBDriver,
		DSN:    a.cfg.DBPath,
	})
	if err != nil {
		return nil, database.Dialect{}, err
	}

	if err := database.NewMigrationManager(db, a.cfg.DBDriver).RunMigrations(ctx); err != nil {
		db.Close()
		return nil, database.Dialect{}, err
	}
	return db, database.Dialect{Driver: a.cfg.DBDriver}, nil
}
