package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/utilkit/pkg/config"
	"github.com/dmitrymomot/utilkit/pkg/logger"
	"github.com/dmitrymomot/utilkit/pkg/poll"
	"github.com/dmitrymomot/utilkit/pkg/tree"
)

// envPrefix is prepended to every environment variable the CLI reads.
const envPrefix = "UTILKIT_"

// Config is the environment-driven configuration of the CLI.
type Config struct {
	Tree   tree.Config
	Poll   poll.Config
	Logger logger.Config
}

// errInvalid reports a failed check. The verdict has already been printed.
var errInvalid = errors.New("value is invalid")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	if err == nil {
		return
	}
	if !errors.Is(err, errInvalid) {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
	stop()
	os.Exit(1)
}

// app carries state shared by every subcommand.
type app struct {
	format   string
	logLevel string

	cfg Config
	log *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{log: logger.Discard()}

	root := &cobra.Command{
		Use:           "utilkit",
		Short:         "Tree, validation and formatting helpers for flat records",
		Long:          "utilkit converts flat parent-linked records to trees and back, runs field validators, formats dates and waits for files to appear.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(a.format); err != nil {
				return err
			}
			return a.setup(stderr)
		},
		// No Run: prints help by default.
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.format, "format", formatJSON, "output format: json|yaml")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error (default from UTILKIT_LOG_LEVEL, else warn)")

	root.AddCommand(
		a.treeCmd(),
		a.flattenCmd(),
		a.checkCmd(),
		a.dateCmd(),
		a.waitCmd(),
	)
	return root
}

// setup loads the configuration and builds the logger. Logs always go to
// stderr so they never mix with command output.
func (a *app) setup(stderr io.Writer) error {
	if err := config.Load(&a.cfg, config.WithPrefix(envPrefix)); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	lc := a.cfg.Logger
	if a.logLevel != "" {
		lc.Level = a.logLevel
	}
	if lc.Level == "" {
		lc.Level = "warn"
	}

	opts, err := logger.FromConfig(lc)
	if err != nil {
		return err
	}
	a.log = logger.New(append(opts, logger.WithOutput(stderr))...)
	return nil
}

// commandLogger scopes the app logger to cmd.
func (a *app) commandLogger(cmd *cobra.Command) *slog.Logger {
	return a.log.With(logger.Command(cmd.Name()))
}
