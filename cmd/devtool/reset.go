package main

import (
	"github.com/spf13/cobra"

	"github.com/Rama-Divya/Myhero/internal/handler"
	"github.com/Rama-Divya/Myhero/internal/storage"
)

func newResetCmd(dt *devtool) *cobra.Command {
	var visitor string

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear a visitor's persisted unlock flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := handler.ValidateVisitorID(visitor); err != nil {
				return err
			}

			store, err := dt.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer closeStore(cmd.ErrOrStderr(), store)

			if err := storage.NewFlag(store, visitor, dt.cfg.UnlockFlagKey).Clear(cmd.Context()); err != nil {
				return err
			}
			PrintSuccess(cmd.OutOrStdout(), "Cleared %s for visitor %s", dt.cfg.UnlockFlagKey, visitor)
			return nil
		},
	}
	cmd.Flags().StringVar(&visitor, "visitor", "", "visitor id (the value of the visitor cookie)")
	_ = cmd.MarkFlagRequired("visitor")
	return cmd
}
