// Package main provides the oulipo binary entry point: a small CLI for
// validating French text against constrained-writing rules.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "oulipo"
)

// errViolation signals that the text failed its constraint. The
// violation message has already been printed by then, so main exits
// quietly with status 1.
var errViolation = errors.New("constraint violated")

func main() {
	if err := rootCmd().Execute(); err != nil {
		if errors.Is(err, errViolation) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           appName,
		Short:         "Validate French text against constrained-writing rules",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			})))
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(listCmd(), checkCmd(), batchCmd())
	return cmd
}
