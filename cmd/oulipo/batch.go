package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/plumekit/oulipo/pkg/constraint"
)

// batchSuite is the YAML shape consumed by `oulipo batch`.
type batchSuite struct {
	Cases []batchCase `yaml:"cases"`
}

type batchCase struct {
	Name       string `yaml:"name"`
	Constraint string `yaml:"constraint"`
	Letter     string `yaml:"letter"`
	Text       string `yaml:"text"`
}

func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <suite.yaml>",
		Short: "Run a YAML suite of constraint checks",
		Long: `Run a YAML suite of constraint checks.

The suite file holds a list of cases, each naming a constraint tag, a
letter parameter and the text to validate:

    cases:
      - name: premier-essai
        constraint: lipogram
        letter: e
        text: Un grand frisson parcourut son dos.

Exits 1 when any case fails its constraint.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}
			var suite batchSuite
			if err := yaml.Unmarshal(data, &suite); err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			failures := 0
			for i, c := range suite.Cases {
				name := c.Name
				if name == "" {
					name = fmt.Sprintf("case %d", i+1)
				}
				def, ok := constraint.Lookup(constraint.Tag(c.Constraint))
				if !ok {
					return fmt.Errorf("%s: unknown constraint %q", name, c.Constraint)
				}
				letter := strings.ToLower(c.Letter)
				res := def.Validate(c.Text, letter)
				slog.Debug("case evaluated", "name", name, "constraint", def.Tag, "letter", letter, "valid", res.Valid)
				if res.Valid {
					fmt.Fprintf(out, "ok   %s (%s/%s)\n", name, def.Tag, letter)
				} else {
					failures++
					fmt.Fprintf(out, "FAIL %s (%s/%s): %s\n", name, def.Tag, letter, res.Message)
				}
			}

			fmt.Fprintf(out, "\n%d cases, %d failed\n", len(suite.Cases), failures)
			if failures > 0 {
				return errViolation
			}
			return nil
		},
	}
	return cmd
}
