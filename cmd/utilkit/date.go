package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/utilkit/pkg/formatter"
)

func (a *app) dateCmd() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "date [layout]",
		Short: "Format a point in time with a token layout",
		Long:  "Renders --at (RFC 3339, default now) with tokens y, M, d, h, m, s, q and S. The layout defaults to " + formatter.DefaultDateLayout + ".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := time.Now()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339Nano, at)
				if err != nil {
					return fmt.Errorf("invalid --at %q: %w", at, err)
				}
				t = parsed
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), formatter.Date(t, firstArg(args)))
			return err
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "time to format, RFC 3339 (default now)")
	return cmd
}
