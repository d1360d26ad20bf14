package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/utilkit/pkg/poll"
)

func (a *app) waitCmd() *cobra.Command {
	var interval, timeout time.Duration
	cmd := &cobra.Command{
		Use:   "wait <path>",
		Short: "Wait until a file exists",
		Long:  "Polls for path until it exists, then prints it. Fails when the timeout elapses first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			exists := func() bool {
				_, err := os.Stat(path)
				return err == nil
			}

			f := poll.Delay(cmd.Context(),
				func() { fmt.Fprintln(cmd.OutOrStdout(), path) },
				exists,
				poll.WithConfig(a.cfg.Poll),
				poll.WithConfig(poll.Config{Interval: interval, Timeout: timeout}),
				poll.WithLogger(a.commandLogger(cmd)),
			)

			_, err := f.Await()
			if errors.Is(err, poll.ErrTimeout) {
				return fmt.Errorf("%s did not appear: %w", path, err)
			}
			return err
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "pause between checks (default from UTILKIT_POLL_INTERVAL, else 100ms)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "give up after this long (default from UTILKIT_POLL_TIMEOUT, else 100s)")
	return cmd
}
