package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Rama-Divya/Myhero/internal/handler"
	"github.com/Rama-Divya/Myhero/internal/logger"
	"github.com/Rama-Divya/Myhero/internal/presenter"
	"github.com/Rama-Divya/Myhero/internal/storage"
	"github.com/Rama-Divya/Myhero/internal/unlock"
)

func newStateCmd(dt *devtool) *cobra.Command {
	var (
		visitor string
		dev     bool
	)

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Evaluate a visitor's unlock state the way a page load does",
		Long: `Reconciles the visitor's persisted flag, evaluates the lock and prints the
card view. --dev applies the developer override and persists the unlock,
exactly like opening the page with the override parameter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := handler.ValidateVisitorID(visitor); err != nil {
				return err
			}
			target, err := dt.cfg.UnlockTarget()
			if err != nil {
				return err
			}

			ctx := logger.WithVisitorID(cmd.Context(), visitor)
			store, err := dt.openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore(cmd.ErrOrStderr(), store)

			flag := storage.NewFlag(store, visitor, dt.cfg.UnlockFlagKey)
			now := dt.clock.Now()
			unlock.Reconcile(ctx, target, now, dev, flag)
			state := unlock.Evaluate(ctx, target, now, flag, dev)
			slog.Debug("State evaluated", "visitor_id", visitor, "state", state.String())

			_, view := presenter.View(target, state, true)
			return printJSON(cmd.OutOrStdout(), view)
		},
	}
	cmd.Flags().StringVar(&visitor, "visitor", "", "visitor id (the value of the visitor cookie)")
	cmd.Flags().BoolVar(&dev, "dev", false, "apply the developer override")
	_ = cmd.MarkFlagRequired("visitor")
	return cmd
}
