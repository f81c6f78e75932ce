package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/Rama-Divya/Myhero/internal/bootstrap"
	"github.com/Rama-Divya/Myhero/internal/config"
	"github.com/Rama-Divya/Myhero/internal/storage"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd(clockwork.NewRealClock()).Execute(); err != nil {
		os.Exit(1)
	}
}

// devtool carries what every subcommand needs once config is loaded
type devtool struct {
	clock clockwork.Clock
	cfg   *config.Config
}

func newRootCmd(clock clockwork.Clock) *cobra.Command {
	dt := &devtool{clock: clock}
	var verbose bool

	root := &cobra.Command{
		Use:          "devtool",
		Short:        "Operator tools for the myhero unlock service",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dt.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newTargetCmd(dt),
		newStateCmd(dt),
		newResetCmd(dt),
		newMigrateCmd(dt),
		newCheckDBCmd(dt),
	)
	return root
}

// openStore opens the configured flag store; the caller must close it
func (dt *devtool) openStore(ctx context.Context) (storage.Store, error) {
	store, err := storage.Open(ctx, bootstrap.StorageOptions(dt.cfg))
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", dt.cfg.StorageDriver, err)
	}
	return store, nil
}

func closeStore(w io.Writer, store storage.Store) {
	if err := store.Close(); err != nil {
		PrintWarning(w, "closing store: %v", err)
	}
}
