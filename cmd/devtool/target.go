package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Rama-Divya/Myhero/internal/handler"
	"github.com/Rama-Divya/Myhero/internal/unlock"
)

func newTargetCmd(dt *devtool) *cobra.Command {
	return &cobra.Command{
		Use:   "target",
		Short: "Print the next unlock instant and the time remaining",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := dt.cfg.UnlockTarget()
			if err != nil {
				return err
			}

			now := dt.clock.Now()
			instant := target.Instant(now)
			resp := struct {
				handler.TargetResponse
				Text string `json:"text"`
			}{
				TargetResponse: handler.TargetResponse{
					TargetUTC:   instant.UTC(),
					TargetLocal: instant.Format(time.RFC3339),
					Zone:        target.ZoneName(),
					Note:        target.Note(),
					Now:         now.UTC(),
					RemainingMS: target.Remaining(now).Milliseconds(),
					Elapsed:     target.Elapsed(now),
				},
				Text: unlock.LockText(target.Remaining(now)),
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}
}
