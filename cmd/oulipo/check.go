package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plumekit/oulipo/pkg/constraint"
)

// checkReport is the JSON shape emitted by `check --json`.
type checkReport struct {
	Constraint constraint.Tag    `json:"constraint"`
	Letter     string            `json:"letter"`
	Result     constraint.Result `json:"result"`
}

func checkCmd() *cobra.Command {
	var (
		tag    string
		letter string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a text against a single constraint",
		Long: `Validate a text against a single constraint.

The text is read from the given file, or from stdin when the argument
is omitted or "-". Exits 1 when the text violates the constraint.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, ok := constraint.Lookup(constraint.Tag(tag))
			if !ok {
				return fmt.Errorf("unknown constraint %q", tag)
			}
			l := strings.ToLower(letter)
			if !def.Param.Allows(l) {
				return fmt.Errorf("%q is not a valid option for %s (choose from: %s)",
					letter, def.Tag, strings.Join(def.Param.Options, ", "))
			}

			text, err := readText(cmd, args)
			if err != nil {
				return err
			}
			slog.Debug("text loaded", "bytes", len(text), "constraint", def.Tag, "letter", l)

			res := def.Validate(text, l)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(checkReport{Constraint: def.Tag, Letter: l, Result: res}); err != nil {
					return err
				}
			} else if res.Valid {
				fmt.Fprintln(out, "OK")
			} else {
				fmt.Fprintln(out, res.Message)
			}

			if !res.Valid {
				return errViolation
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&tag, "constraint", "c", "", "constraint tag (see `oulipo list`)")
	cmd.Flags().StringVarP(&letter, "letter", "l", "", "letter parameter for the constraint")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the result as JSON")
	_ = cmd.MarkFlagRequired("constraint")
	_ = cmd.MarkFlagRequired("letter")

	return cmd
}

// readText loads the text to validate from the positional file argument
// or stdin.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}
