package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

const checkDBTimeout = 5 * time.Second

func newCheckDBCmd(dt *devtool) *cobra.Command {
	return &cobra.Command{
		Use:   "check-db",
		Short: "Check that the configured flag store is reachable and migrated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			PrintHeader(out, "Checking flag store")
			PrintInfo(out, "Driver: %s", dt.cfg.StorageDriver)

			ctx, cancel := context.WithTimeout(cmd.Context(), checkDBTimeout)
			defer cancel()

			store, err := dt.openStore(ctx)
			if err != nil {
				PrintError(out, "Store unavailable")
				return err
			}
			defer closeStore(cmd.ErrOrStderr(), store)

			if err := store.Ping(ctx); err != nil {
				PrintError(out, "Ping failed")
				return err
			}
			PrintSuccess(out, "Flag store is ready")
			return nil
		},
	}
}
