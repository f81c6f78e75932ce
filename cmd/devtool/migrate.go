package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rama-Divya/Myhero/internal/database"
	"github.com/Rama-Divya/Myhero/internal/domain"
	"github.com/Rama-Divya/Myhero/internal/storage"
)

func newMigrateCmd(dt *devtool) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations to the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			cfg := dt.cfg

			var (
				version int64
				err     error
			)
			switch cfg.StorageDriver {
			case domain.StorageDriverPostgres:
				PrintHeader(out, "Migrating PostgreSQL")
				pool, perr := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
				if perr != nil {
					return perr
				}
				defer pool.Close()
				version, err = database.MigratePool(ctx, pool)

			case domain.StorageDriverSQLite:
				PrintHeader(out, "Migrating SQLite")
				db, oerr := storage.OpenSQLite(cfg.SQLitePath)
				if oerr != nil {
					return oerr
				}
				defer db.Close()
				version, err = database.Migrate(ctx, db, database.DialectSQLite)

			default:
				PrintWarning(out, "STORAGE_DRIVER=%s has no schema, nothing to migrate", cfg.StorageDriver)
				return nil
			}
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			PrintSuccess(out, "Schema at version %d", version)
			return nil
		},
	}
}
